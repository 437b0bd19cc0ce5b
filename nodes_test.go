package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodesOfShape(t *testing.T) {
	s := RegularPolygon(5, 10)
	ns := NodesOf(s)
	assert.Equal(t, 5, ns.Count())
	assert.Equal(t, s.PointList(), ns.Points())
}

func TestNodeSetPlace(t *testing.T) {
	ns := NewNodeSet([]Point{{0, 0}, {10, 0}, {20, 0}})
	dot := RegularPolygon(6, 1)
	ns.Place(dot)

	require.Len(t, ns.Shapes(), 3)
	assert.Equal(t, Ephemeral, dot.State())
	for i, stamp := range ns.Shapes() {
		assert.Equal(t, Concrete, stamp.State())
		assert.True(t, approxPoint(stamp.Centroid(), Pt(float64(i)*10, 0), 1e-9))
	}
}

func TestNodeSetMask(t *testing.T) {
	ns := NewNodeSet([]Point{{0, 0}, {10, 0}, {40, 0}})
	fence := CirclePen(15).Shape()
	ns.Mask(fence)
	assert.Equal(t, 2, ns.Count())
	assert.Equal(t, Ephemeral, fence.State())
}

func TestProximityEdges(t *testing.T) {
	// Evenly spaced line of nodes: the threshold (1.5x the average
	// nearest-neighbor distance) joins adjacent pairs only.
	ns := NewNodeSet([]Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}})
	edges := ns.Edges()
	require.Len(t, edges, 3)
	for _, e := range edges {
		assert.InDelta(t, 10, e[0].Distance(e[1]), 1e-9)
	}
}

func TestProximityEdgesUndirected(t *testing.T) {
	ns := NewNodeSet([]Point{{0, 0}, {10, 0}})
	assert.Len(t, ns.Edges(), 1, "each undirected pair appears once")
}

func TestEdgeShapes(t *testing.T) {
	ns := NewNodeSet([]Point{{0, 0}, {10, 0}, {20, 0}})
	col := ns.EdgeShapes()
	require.Equal(t, 2, col.Len())
	for _, s := range col.Shapes() {
		assert.False(t, s.Closed())
		assert.Equal(t, 2, s.VertexCount())
	}
}

func TestEdgesDegenerate(t *testing.T) {
	assert.Nil(t, NewNodeSet(nil).Edges())
	assert.Nil(t, NewNodeSet([]Point{{1, 1}}).Edges())
}
