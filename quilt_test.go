package motif

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockNamesSorted(t *testing.T) {
	names := BlockNames()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestLookupBlock(t *testing.T) {
	b, err := LookupBlock("pinwheel")
	require.NoError(t, err)
	assert.Equal(t, "pinwheel", b.Name)
	assert.Equal(t, 2, b.Size)
	assert.Len(t, b.Cells, 4)
}

func TestLookupBlockUnknown(t *testing.T) {
	_, err := LookupBlock("log-cabin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownBlock))
	for _, name := range BlockNames() {
		assert.True(t, strings.Contains(err.Error(), name),
			"error should list valid name %q", name)
	}
}

func TestPinwheelExpand(t *testing.T) {
	b, err := LookupBlock("pinwheel")
	require.NoError(t, err)

	patches := b.Expand(10)
	require.Equal(t, 4, patches.Len(), "one half-square triangle per cell")

	total := 0.0
	for _, p := range patches.Shapes() {
		assert.Equal(t, 3, p.VertexCount())
		assert.Equal(t, "half-square-triangle", p.Group())
		total += absArea(p)
	}
	assert.InDelta(t, 200, total, 1e-9, "half of the 20x20 block is patched")
}

func TestOhioStarExpand(t *testing.T) {
	b, err := LookupBlock("ohio-star")
	require.NoError(t, err)

	patches := b.Expand(10)
	// 5 squares plus 4 flying-geese cells of 3 patches each.
	require.Equal(t, 17, patches.Len())

	groups := map[string]int{}
	for _, p := range patches.Shapes() {
		groups[p.Group()]++
	}
	assert.Equal(t, 5, groups["square"])
	assert.Equal(t, 4, groups["goose"])
	assert.Equal(t, 8, groups["sky"])
}

func TestExpandCoversBlock(t *testing.T) {
	b, err := LookupBlock("broken-dishes")
	require.NoError(t, err)
	patches := b.Expand(5)
	for _, p := range patches.Shapes() {
		bb := p.BoundingBox()
		assert.GreaterOrEqual(t, bb.Min.X, -1e-9)
		assert.GreaterOrEqual(t, bb.Min.Y, -1e-9)
		assert.LessOrEqual(t, bb.Max.X, 10+1e-9)
		assert.LessOrEqual(t, bb.Max.Y, 10+1e-9)
	}
}

func absArea(s *Shape) float64 {
	a := s.Area()
	if a < 0 {
		return -a
	}
	return a
}
