package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneRow(t *testing.T) {
	pen := PolygonPen(4, 5)
	row := pen.Clone(3, 10, 0)

	require.Equal(t, 4, row.Count(), "count+1 members, source included at offset 0")
	assert.Equal(t, Ephemeral, pen.Shape().State(), "source superseded by its clones")
	for i, m := range row.Members() {
		assert.Equal(t, Concrete, m.State())
		assert.True(t, approxPoint(m.Centroid(), Pt(float64(i)*10, 0), 1e-9),
			"member %d at %v", i, m.Centroid())
	}
}

func TestCloneMemberIndependence(t *testing.T) {
	row := PolygonPen(3, 5).Clone(2, 10, 0)
	members := row.Members()
	before := members[1].PointList()
	members[0].Translate(100, 100)
	assert.Equal(t, before, members[1].PointList(), "members own separate vertices")
}

func TestSpread(t *testing.T) {
	row := PolygonPen(4, 5).Clone(2, 1, 1)
	row.Spread(20, 0)
	for i, m := range row.Members() {
		assert.True(t, approxPoint(m.Centroid(), Pt(float64(i)*20, 0), 1e-9),
			"member %d at %v", i, m.Centroid())
	}
}

func TestSpreadPolarFullCircle(t *testing.T) {
	// Stacked clones share a centroid at the origin, so polar spread
	// distributes them on a circle about it.
	sys := PolygonPen(4, 2).Clone(3, 0, 0)
	sys.SpreadPolar(5)

	want := []Point{{5, 0}, {0, 5}, {-5, 0}, {0, -5}}
	members := sys.Members()
	require.Len(t, members, 4)
	for i, m := range members {
		assert.True(t, approxPoint(m.Centroid(), want[i], 1e-9),
			"member %d at %v, want %v", i, m.Centroid(), want[i])
	}
}

func TestSpreadPolarArc(t *testing.T) {
	// An explicit arc occupies both endpoints: 3 members over 0..180
	// degrees land at 0, 90, and 180.
	sys := PolygonPen(4, 2).Clone(2, 0, 0)
	sys.SpreadPolar(5, 0, 180)

	want := []Point{{5, 0}, {0, 5}, {-5, 0}}
	for i, m := range sys.Members() {
		assert.True(t, approxPoint(m.Centroid(), want[i], 1e-9),
			"member %d at %v, want %v", i, m.Centroid(), want[i])
	}
}

func TestSpreadPolarSingleMember(t *testing.T) {
	sys := PolygonPen(4, 2).Clone(0, 0, 0)
	before := sys.Members()[0].Centroid()
	sys.SpreadPolar(5)
	assert.Equal(t, before, sys.Members()[0].Centroid(), "fewer than 2 members is a no-op")
}

func TestNestedClone(t *testing.T) {
	row := PolygonPen(4, 2).Clone(2, 10, 0)
	oldMembers := row.Members()

	grid := row.Clone(1, 0, 10)
	require.Equal(t, 2, grid.Count(), "nested clone blocks replicate the whole system")
	require.Len(t, grid.Members(), 6, "3 members per block, 2 blocks")

	for _, m := range oldMembers {
		assert.Equal(t, Ephemeral, m.State(), "superseded members stop rendering")
	}
	for _, m := range grid.Members() {
		assert.Equal(t, Concrete, m.State())
	}
	// Second block offset by (0, 10) from the first.
	a := grid.Members()[0].Centroid()
	b := grid.Members()[3].Centroid()
	assert.True(t, approxPoint(b, a.Add(Pt(0, 10)), 1e-9))
}

func TestCloneEveryAndSlice(t *testing.T) {
	sys := PolygonPen(4, 2).Clone(5, 10, 0)
	require.Equal(t, 6, sys.Count())

	assert.Equal(t, 3, sys.Every(2, 0).Count())
	assert.Equal(t, 2, sys.Slice(1, 3).Count())
	assert.Equal(t, 0, sys.Every(10, 8).Count(), "stride past the members is empty, not an error")

	// Narrowed systems share shapes: coloring the subset colors the
	// originals.
	sys.Every(2, 0).Color(RGB(1, 0, 0))
	_, ok := sys.Members()[0].Color()
	assert.True(t, ok)
	_, ok = sys.Members()[1].Color()
	assert.False(t, ok)
}

func TestClonePlace(t *testing.T) {
	sys := PolygonPen(4, 4).Clone(2, 10, 0)
	dot := RegularPolygon(8, 1)
	sys.Place(dot)

	assert.Equal(t, Ephemeral, dot.State(), "template consumed")
	require.Len(t, sys.Shapes(), 6, "3 members + 3 stamps")
	stamps := sys.Shapes()[3:]
	for i, stamp := range stamps {
		assert.Equal(t, Concrete, stamp.State())
		assert.True(t, approxPoint(stamp.Centroid(), Pt(float64(i)*10, 0), 1e-9))
	}
}

func TestCloneMask(t *testing.T) {
	sys := PolygonPen(4, 2).Clone(4, 10, 0) // centroids at 0,10,20,30,40
	fence := CirclePen(15).Shape()
	sys.Mask(fence)

	require.Equal(t, 2, sys.Count(), "only members inside the fence remain")
	assert.Equal(t, Ephemeral, fence.State(), "mask boundary is consumed")
}

func TestCloneMaskVisibleThroughParent(t *testing.T) {
	sys := PolygonPen(4, 2).Clone(4, 10, 0) // centroids at 0,10,20,30,40
	dot := RegularPolygon(8, 1)
	sys.Place(dot)
	view := sys.Slice(0, sys.Count())

	fence := Rectangle(50, 20) // covers centroids -25..25
	view.Mask(fence)

	assert.Equal(t, 3, view.Count())
	require.Equal(t, 5, sys.Count(), "the parent still holds every block")
	for i, m := range sys.Members() {
		want := Concrete
		if i >= 3 {
			want = Ephemeral
		}
		assert.Equal(t, want, m.State(),
			"masked-out member %d must stop rendering through the parent too", i)
	}
	stamps := sys.placed
	require.Len(t, stamps, 5)
	for i, stamp := range stamps {
		want := Concrete
		if i >= 3 {
			want = Ephemeral
		}
		assert.Equal(t, want, stamp.State(), "stamp %d", i)
	}
}

func TestCloneColorWith(t *testing.T) {
	sys := PolygonPen(4, 2).Clone(2, 10, 0)
	next := RampPalette(Black, White, 3)
	sys.ColorWith(next)
	for _, m := range sys.Members() {
		_, ok := m.Color()
		assert.True(t, ok)
	}
}
