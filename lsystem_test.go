package motif

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRewrite(t *testing.T) {
	l := &LSystem{
		Axiom:      "F",
		Rules:      map[rune]string{'F': "F+F-F-F+F"},
		Iterations: 1,
	}
	assert.Equal(t, "F+F-F-F+F", l.Expand())

	l.Iterations = 2
	assert.Equal(t,
		"F+F-F-F+F+F+F-F-F+F-F+F-F-F+F-F+F-F-F+F+F+F-F-F+F",
		l.Expand())
}

func TestExpandZeroIterations(t *testing.T) {
	l := &LSystem{Axiom: "F+F", Rules: map[rune]string{'F': "FF"}}
	assert.Equal(t, "F+F", l.Expand())
}

func TestWalkSegmentCount(t *testing.T) {
	l := &LSystem{
		Axiom:      "F",
		Rules:      map[rune]string{'F': "F+F-F-F+F"},
		Angle:      math.Pi / 2,
		Length:     1,
		Iterations: 1,
	}
	path := l.Walk()
	assert.Len(t, path.Segments, 5, "one drawn segment per F")
}

func TestWalkQuadraticKochShape(t *testing.T) {
	l := &LSystem{
		Axiom:      "F",
		Rules:      map[rune]string{'F': "F+F-F-F+F"},
		Angle:      math.Pi / 2,
		Length:     1,
		Iterations: 1,
	}
	path := l.Walk()
	// F+F-F-F+F with 90-degree turns ends 5 steps along the axis.
	end := path.Segments[len(path.Segments)-1][1]
	assert.True(t, approxPoint(end, Pt(3, 0), 1e-9), "end = %v", end)
}

func TestWalkJumpDisconnects(t *testing.T) {
	l := &LSystem{Axiom: "FfF", Length: 2}
	path := l.Walk()
	require.Len(t, path.Segments, 2)
	assert.Equal(t, Pt(2, 0), path.Segments[0][1])
	assert.Equal(t, Pt(4, 0), path.Segments[1][0], "f advances without drawing")
}

func TestWalkBranching(t *testing.T) {
	l := &LSystem{
		Axiom:  "F[+F]F",
		Angle:  math.Pi / 4,
		Length: 1,
	}
	path := l.Walk()
	require.Len(t, path.Segments, 3)
	// The bracket restores position and heading: the trunk continues
	// straight after the branch.
	assert.True(t, approxPoint(path.Segments[2][0], Pt(1, 0), 1e-9))
	assert.True(t, approxPoint(path.Segments[2][1], Pt(2, 0), 1e-9))
	// One dead end recorded at the pop, plus the final position.
	require.Len(t, path.DeadEnds, 2)
	branchTip := Pt(1+math.Cos(math.Pi/4), math.Sin(math.Pi/4))
	assert.True(t, approxPoint(path.DeadEnds[0], branchTip, 1e-9))
	assert.True(t, approxPoint(path.DeadEnds[1], Pt(2, 0), 1e-9))
}

func TestWalkUnmatchedPop(t *testing.T) {
	l := &LSystem{Axiom: "]F", Length: 1}
	path := l.Walk()
	assert.Len(t, path.Segments, 1, "stray ] is ignored")
}

func TestWalkIgnoresRuleOnlySymbols(t *testing.T) {
	l := &LSystem{
		Axiom:      "X",
		Rules:      map[rune]string{'X': "F+X"},
		Angle:      math.Pi / 2,
		Length:     1,
		Iterations: 3,
	}
	path := l.Walk()
	assert.Len(t, path.Segments, 3, "X draws nothing")
}

func TestWalkClosesSnowflake(t *testing.T) {
	l := &LSystem{
		Axiom:      "F++F++F",
		Rules:      map[rune]string{'F': "F-F++F-F"},
		Angle:      math.Pi / 3,
		Length:     1,
		Iterations: 2,
	}
	path := l.Walk()
	require.NotEmpty(t, path.Segments)
	last := path.DeadEnds[len(path.DeadEnds)-1]
	assert.True(t, last.Distance(Point{}) <= 1e-9,
		"Koch snowflake returns to its start, final position %v", last)
}

func TestWalkReverse(t *testing.T) {
	l := &LSystem{Axiom: "F|F", Length: 3}
	path := l.Walk()
	require.Len(t, path.Segments, 2)
	assert.True(t, approxPoint(path.Segments[1][1], Pt(0, 0), 1e-9), "| reverses the heading")
}

func TestTurtlePathAsNodeSource(t *testing.T) {
	l := &LSystem{Axiom: "FF", Length: 5}
	var src NodeSource = l.Walk()
	assert.Len(t, src.NodePoints(), 3)
}

func TestTurtlePathShapes(t *testing.T) {
	l := &LSystem{Axiom: "FF", Length: 5}
	shapes := l.Walk().Shapes()
	require.Len(t, shapes, 2)
	for _, s := range shapes {
		assert.False(t, s.Closed())
		assert.Equal(t, Concrete, s.State())
	}
}
