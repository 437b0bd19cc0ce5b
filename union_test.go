package motif

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionOverlappingSquares(t *testing.T) {
	a := rectangleAt(Pt(0, 0), Pt(1, 1))
	b := rectangleAt(Pt(0.5, 0.5), Pt(1.5, 1.5))

	got := Union([]*Shape{a, b})
	require.Len(t, got, 1, "overlapping shapes merge into one boundary")

	assert.InDelta(t, 1.75, math.Abs(got[0].Area()), 1e-9)
	assert.Equal(t, Ephemeral, a.State(), "union consumes its inputs")
	assert.Equal(t, Ephemeral, b.State(), "union consumes its inputs")
	assert.Equal(t, Concrete, got[0].State())

	// The merged boundary is the outline only: no interior vertices.
	for _, v := range got[0].Vertices() {
		p := v.Pos
		inA := p.X > 1e-9 && p.X < 1-1e-9 && p.Y > 1e-9 && p.Y < 1-1e-9
		inB := p.X > 0.5+1e-9 && p.X < 1.5-1e-9 && p.Y > 0.5+1e-9 && p.Y < 1.5-1e-9
		assert.False(t, inA || inB, "vertex %v lies strictly inside an input", p)
	}
}

func TestUnionIdenticalSquares(t *testing.T) {
	a := rectangleAt(Pt(0, 0), Pt(2, 2))
	b := rectangleAt(Pt(0, 0), Pt(2, 2))

	got := Union([]*Shape{a, b})
	require.Len(t, got, 1, "coincident duplicates collapse to a single shape")
	assert.InDelta(t, 4, math.Abs(got[0].Area()), 1e-9)
}

func TestUnionContainment(t *testing.T) {
	outer := rectangleAt(Pt(0, 0), Pt(10, 10))
	inner := rectangleAt(Pt(3, 3), Pt(5, 5))

	got := Union([]*Shape{outer, inner})
	require.Len(t, got, 1)
	assert.InDelta(t, 100, math.Abs(got[0].Area()), 1e-9, "containment keeps the larger boundary")
}

func TestUnionDisjoint(t *testing.T) {
	a := rectangleAt(Pt(0, 0), Pt(1, 1))
	b := rectangleAt(Pt(5, 5), Pt(6, 6))

	got := Union([]*Shape{a, b})
	require.Len(t, got, 2, "disjoint shapes stay separate")
	for _, s := range got {
		assert.Equal(t, Concrete, s.State())
	}
}

func TestUnionChain(t *testing.T) {
	// Three boxes in a row, each overlapping the next: one merged
	// boundary through transitive merging. The third box only touches
	// the first through the second.
	a := rectangleAt(Pt(0, 0), Pt(2, 2))
	b := rectangleAt(Pt(1, 0.5), Pt(3, 1.5))
	c := rectangleAt(Pt(2.5, 0.75), Pt(4, 1.25))

	got := Union([]*Shape{a, b, c})
	require.Len(t, got, 1)
	assert.InDelta(t, 5.5, math.Abs(got[0].Area()), 1e-9)
}

func TestUnionSingle(t *testing.T) {
	a := rectangleAt(Pt(0, 0), Pt(1, 1))
	got := Union([]*Shape{a})
	require.Len(t, got, 1)
	assert.Same(t, a, got[0])
}
