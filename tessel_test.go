package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tilePoints(t *Tessellation) [][]Point {
	out := make([][]Point, len(t.tiles))
	for i, s := range t.tiles {
		out[i] = s.PointList()
	}
	return out
}

func TestTruchetDeterministic(t *testing.T) {
	bounds := Rect{Max: Pt(40, 40)}
	a, err := Truchet(bounds, 10, 42, TruchetQuarterCircles)
	require.NoError(t, err)
	b, err := Truchet(bounds, 10, 42, TruchetQuarterCircles)
	require.NoError(t, err)

	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, tilePoints(a), tilePoints(b), "same seed reproduces the pattern exactly")
}

func TestTruchetLayout(t *testing.T) {
	bounds := Rect{Max: Pt(40, 40)}
	tess, err := Truchet(bounds, 10, 7, TruchetDiagonal)
	require.NoError(t, err)

	assert.Len(t, tess.Tiles().Shapes(), 16, "one motif shape per 10x10 tile")
	assert.Len(t, tess.Nodes(), 25, "tile corners deduplicated to a 5x5 lattice")
	for _, tile := range tess.Tiles().Shapes() {
		assert.Equal(t, Ephemeral, tile.State(), "tiles are scaffolding until traced")
	}
	assert.NotEmpty(t, tess.Edges())
}

func TestTruchetQuarterCirclesTwoArcsPerTile(t *testing.T) {
	bounds := Rect{Max: Pt(20, 20)}
	tess, err := Truchet(bounds, 10, 1, TruchetQuarterCircles)
	require.NoError(t, err)
	require.Len(t, tess.Tiles().Shapes(), 8)
	for _, arc := range tess.Tiles().Shapes() {
		assert.False(t, arc.Closed())
		assert.Equal(t, 9, arc.VertexCount(), "8 chords per quarter arc")
	}
}

func TestTrihexagonalMix(t *testing.T) {
	tess, err := Trihexagonal(Rect{Max: Pt(60, 60)}, 20)
	require.NoError(t, err)

	hexes, tris := 0, 0
	for _, tile := range tess.Tiles().Shapes() {
		switch tile.VertexCount() {
		case 6:
			hexes++
		case 3:
			tris++
		default:
			t.Fatalf("unexpected tile with %d vertices", tile.VertexCount())
		}
	}
	assert.Greater(t, hexes, 0)
	assert.Greater(t, tris, 0)
	assert.Greater(t, tris, hexes, "gap triangles outnumber hexagons")
}

func TestTrihexagonalNodesUnique(t *testing.T) {
	tess, err := Trihexagonal(Rect{Max: Pt(60, 60)}, 20)
	require.NoError(t, err)
	seen := make(map[dedupKey]bool)
	for _, n := range tess.Nodes() {
		k := pointKey(n)
		assert.False(t, seen[k], "node %v duplicated", n)
		seen[k] = true
	}
}

func TestPenroseDeflation(t *testing.T) {
	bounds := Rect{Max: Pt(100, 100)}
	tess := Penrose(bounds, 4)

	require.NotEmpty(t, tess.Tiles().Shapes())
	for _, tile := range tess.Tiles().Shapes() {
		assert.Equal(t, 3, tile.VertexCount(), "Robinson triangles only")
		assert.True(t, bounds.ContainsPoint(tile.Centroid()), "tiles outside the bounds are culled")
	}
	assert.NotEmpty(t, tess.Edges())
	assert.NotEmpty(t, tess.Nodes())
}

func TestPenroseDeterministic(t *testing.T) {
	bounds := Rect{Max: Pt(100, 100)}
	a := Penrose(bounds, 3)
	b := Penrose(bounds, 3)
	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, tilePoints(a), tilePoints(b))
}

func TestPenroseEdgesUnique(t *testing.T) {
	tess := Penrose(Rect{Max: Pt(80, 80)}, 3)
	seen := make(map[[2]dedupKey]bool)
	for _, e := range tess.Edges() {
		ka, kb := pointKey(e[0]), pointKey(e[1])
		assert.False(t, seen[[2]dedupKey{ka, kb}] || seen[[2]dedupKey{kb, ka}],
			"edge %v duplicated", e)
		seen[[2]dedupKey{ka, kb}] = true
	}
}

func TestCustomTiling(t *testing.T) {
	unit := RegularPolygon(4, 2)
	tess, err := CustomTiling(Rect{Max: Pt(30, 30)}, unit, GridSquare, 10)
	require.NoError(t, err)

	assert.Equal(t, Ephemeral, unit.State(), "unit shape is consumed")
	require.NotEmpty(t, tess.Tiles().Shapes())
	for _, tile := range tess.Tiles().Shapes() {
		assert.Equal(t, 4, tile.VertexCount())
	}
	assert.NotEmpty(t, tess.Nodes())
}

func TestTessellationBadConfig(t *testing.T) {
	_, err := Truchet(Rect{Max: Pt(10, 10)}, 0, 1, TruchetDiagonal)
	assert.ErrorIs(t, err, ErrBadConfig, "nonpositive tile size is rejected at construction")

	_, err = Trihexagonal(Rect{Max: Pt(10, 10)}, -1)
	assert.ErrorIs(t, err, ErrBadConfig)

	_, err = CustomTiling(Rect{Max: Pt(10, 10)}, nil, GridSquare, 5)
	assert.ErrorIs(t, err, ErrBadConfig, "a unit shape is required")

	_, err = CustomTiling(Rect{Max: Pt(10, 10)}, RegularPolygon(3, 1), GridSquare, 0)
	assert.ErrorIs(t, err, ErrBadConfig)
}
