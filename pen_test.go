package motif

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPenConstructors(t *testing.T) {
	assert.Equal(t, 6, PolygonPen(6, 10).Shape().VertexCount())
	assert.Equal(t, 64, CirclePen(10).Shape().VertexCount())
	assert.Equal(t, 4, RectanglePen(4, 2).Shape().VertexCount())
}

func TestPenPlacementChain(t *testing.T) {
	p := PolygonPen(6, 10).XY(5, 7).Rotate(math.Pi / 6).ScaleBy(2, 2)
	c := p.Shape().Centroid()
	assert.True(t, approxPoint(c, Pt(5, 7), 1e-9), "centroid-pivot ops keep position, got %v", c)
	assert.InDelta(t, 20, p.Shape().Vertices()[0].Pos.Sub(c).Length(), 1e-9)
}

func TestPenRadius(t *testing.T) {
	p := PolygonPen(5, 10).XY(3, 3)
	p.Color(RGB(0, 1, 0))
	p.Radius(20)

	s := p.Shape()
	assert.Equal(t, 5, s.VertexCount(), "resizing keeps the side count")
	assert.True(t, approxPoint(s.Centroid(), Pt(3, 3), 1e-9), "resizing keeps the position")
	for _, v := range s.Vertices() {
		assert.InDelta(t, 20, v.Pos.Sub(s.Centroid()).Length(), 1e-9)
	}
	_, ok := s.Color()
	assert.True(t, ok, "resizing keeps the color")
}

func TestPenSides(t *testing.T) {
	p := PolygonPen(3, 10).XY(4, 4)
	p.Sides(8)

	s := p.Shape()
	assert.Equal(t, 8, s.VertexCount(), "side count changes")
	assert.True(t, approxPoint(s.Centroid(), Pt(4, 4), 1e-9), "position kept")
	for _, v := range s.Vertices() {
		assert.InDelta(t, 10, v.Pos.Sub(s.Centroid()).Length(), 1e-9, "circumradius kept")
	}
}

func TestPenResizeKeepsArbitraryShape(t *testing.T) {
	star := RegularPolygon(8, 10)
	star.Points().Every(2, 1).Expand(5)
	p := NewPen(star)

	before := p.Shape().PointList()
	p.Radius(20).Sides(6)
	assert.Equal(t, before, p.Shape().PointList(),
		"resizing never rebuilds a shape the pen did not construct")

	r := RectanglePen(4, 2)
	rectBefore := r.Shape().PointList()
	r.Radius(20)
	assert.Equal(t, rectBefore, r.Shape().PointList())
}

func TestPenSize(t *testing.T) {
	p := RectanglePen(4, 2).XY(10, 10)
	p.Size(8, 6)
	bb := p.Shape().BoundingBox()
	assert.InDelta(t, 8, bb.Width(), 1e-9)
	assert.InDelta(t, 6, bb.Height(), 1e-9)
	assert.True(t, approxPoint(bb.Center(), Pt(10, 10), 1e-9))
}

func TestPenOffset(t *testing.T) {
	p := PolygonPen(4, 10)
	grown, err := p.Offset(2)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(grown.Shape().Area()), math.Abs(10.0*10.0))
	assert.Equal(t, Ephemeral, p.Shape().State())
	assert.Equal(t, Concrete, grown.Shape().State())
}

func TestPenExplode(t *testing.T) {
	p := PolygonPen(6, 10)
	pieces := p.Explode()
	assert.Equal(t, 6, pieces.Len())
	assert.Equal(t, Ephemeral, p.Shape().State())
}

func TestPenBBox(t *testing.T) {
	p := PolygonPen(3, 10).XY(5, 5)
	box := p.BBox()
	assert.Equal(t, 4, box.Shape().VertexCount())
	assert.Equal(t, Ephemeral, box.Shape().State(), "helper boundary stays invisible until traced")
	box.Trace()
	assert.Equal(t, Concrete, box.Shape().State())
}

func TestPenShapesContract(t *testing.T) {
	var src ShapeSource = PolygonPen(4, 1)
	assert.Len(t, src.Shapes(), 1)
}
