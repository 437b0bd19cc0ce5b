package motif

import (
	"math"
	"strings"
)

// L-system fractal curves: a string-rewriting phase followed by turtle
// interpretation of the rewritten string.

// LSystem describes a string-rewriting fractal curve.
//
// String length grows geometrically with Iterations; callers bound it
// before invocation, the engine imposes no limit of its own.
type LSystem struct {
	// Axiom is the starting string.
	Axiom string
	// Rules maps a symbol to its replacement; symbols without a rule
	// are copied unchanged.
	Rules map[rune]string
	// Angle is the turn step in radians. Positive turns are
	// counter-clockwise.
	Angle float64
	// Length is the step length of one forward move.
	Length float64
	// Iterations is the number of rewriting passes.
	Iterations int
}

// Expand applies the production rules for the configured number of
// iterations and returns the rewritten string.
func (l *LSystem) Expand() string {
	s := l.Axiom
	for i := 0; i < l.Iterations; i++ {
		var b strings.Builder
		b.Grow(len(s) * 2)
		for _, r := range s {
			if repl, ok := l.Rules[r]; ok {
				b.WriteString(repl)
			} else {
				b.WriteRune(r)
			}
		}
		s = b.String()
		Logger().Debug("lsystem rewrite", "iteration", i+1, "length", len(s))
	}
	return s
}

// TurtlePath is the interpreted geometry of an L-system string.
type TurtlePath struct {
	// Segments are the drawn strokes, possibly disconnected when the
	// string jumps with 'f'.
	Segments [][2]Point
	// Nodes are all positions visited, in visit order.
	Nodes []Point
	// DeadEnds are branch-tip positions recorded when ']' pops the
	// stack, plus the final position.
	DeadEnds []Point
}

// NodePoints satisfies NodeSource, so a turtle walk feeds placement like
// any other node source.
func (t *TurtlePath) NodePoints() []Point { return t.Nodes }

// Shapes returns the drawn segments as concrete open two-point shapes.
func (t *TurtlePath) Shapes() []*Shape {
	out := make([]*Shape, len(t.Segments))
	for i, seg := range t.Segments {
		out[i] = FromPoints([]Point{seg[0], seg[1]}, false)
	}
	return out
}

// turtleState is the saved position and heading for branch brackets.
type turtleState struct {
	pos     Point
	heading float64
}

// Walk expands the system and interprets the result:
//
//	F, G  draw a segment of Length and advance
//	f     advance without drawing
//	+, -  turn by +Angle / -Angle
//	|     reverse heading
//	[     push (position, heading)
//	]     pop, recording the pre-pop position as a dead end
//
// Unrecognized symbols are ignored (reserved for rule-only symbols such
// as X). If the final position lies within 1% of the step length from
// the origin, an implicit closing segment is appended so closed curves
// like the Koch snowflake render without a gap.
func (l *LSystem) Walk() *TurtlePath {
	return l.interpret(l.Expand())
}

func (l *LSystem) interpret(s string) *TurtlePath {
	path := &TurtlePath{}
	var pos Point
	var heading float64
	var stack []turtleState

	path.Nodes = append(path.Nodes, pos)
	for _, r := range s {
		switch r {
		case 'F', 'G':
			next := pos.Add(Point{X: l.Length * math.Cos(heading), Y: l.Length * math.Sin(heading)})
			path.Segments = append(path.Segments, [2]Point{pos, next})
			pos = next
			path.Nodes = append(path.Nodes, pos)
		case 'f':
			pos = pos.Add(Point{X: l.Length * math.Cos(heading), Y: l.Length * math.Sin(heading)})
			path.Nodes = append(path.Nodes, pos)
		case '+':
			heading += l.Angle
		case '-':
			heading -= l.Angle
		case '|':
			heading += math.Pi
		case '[':
			stack = append(stack, turtleState{pos: pos, heading: heading})
		case ']':
			if len(stack) == 0 {
				continue
			}
			path.DeadEnds = append(path.DeadEnds, pos)
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pos = top.pos
			heading = top.heading
			path.Nodes = append(path.Nodes, pos)
		}
	}
	path.DeadEnds = append(path.DeadEnds, pos)

	if len(path.Segments) > 0 && l.Length > 0 {
		origin := Point{}
		if pos.Distance(origin) > 0 && pos.Distance(origin) <= l.Length*0.01 {
			path.Segments = append(path.Segments, [2]Point{pos, origin})
		}
	}
	return path
}
