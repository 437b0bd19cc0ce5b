package motif

import "math"

// State is the rendering lifecycle of a shape.
//
// Concrete shapes are part of the final output. Ephemeral shapes are
// construction geometry: they exist as data (placement targets, offset
// sources, lattice scaffolds) but are excluded from collection until an
// explicit Trace flips them back. The state flag is the single predicate
// the rendering boundary checks.
type State int

const (
	// Concrete marks a shape as included in the final output.
	Concrete State = iota
	// Ephemeral marks a shape as construction-only geometry.
	Ephemeral
)

// Winding is the orientation of a polygon boundary. With y increasing
// down the page, a positive shoelace area means the boundary runs
// clockwise on screen.
type Winding int

const (
	// Clockwise winding (positive signed area in y-down coordinates).
	Clockwise Winding = iota
	// CounterClockwise winding (negative signed area).
	CounterClockwise
)

// Vertex is a mutable boundary position owned by exactly one Shape.
// Adjacent segments of the same shape share the same Vertex; distinct
// shapes never share Vertex instances (Clone allocates fresh ones), which
// is what makes clones independently mutable.
type Vertex struct {
	Pos Point
}

// Segment is a directed boundary edge between two vertices of one shape.
// Derived quantities (midpoint, length, normal) are computed, not stored.
type Segment struct {
	Start, End *Vertex
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() Point {
	return s.Start.Pos.Lerp(s.End.Pos, 0.5)
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.Pos.Distance(s.End.Pos)
}

// Dir returns the unit direction from start to end.
func (s Segment) Dir() Point {
	return s.End.Pos.Sub(s.Start.Pos).Normalize()
}

// Normal returns the unit left-hand perpendicular of the segment
// direction. Callers orient it by winding where that matters.
func (s Segment) Normal() Point {
	return s.Dir().Perp()
}

// Shape is an ordered polyline or polygon boundary. Successive segments
// share their joint Vertex; a closed shape additionally joins the last
// vertex back to the first.
type Shape struct {
	verts   []*Vertex
	closed  bool
	state   State
	color   Color
	colored bool
	group   string
}

// FromPoints builds a shape from an ordered point list. closed controls
// whether the boundary wraps from the last point back to the first.
func FromPoints(pts []Point, closed bool) *Shape {
	s := &Shape{closed: closed}
	s.verts = make([]*Vertex, len(pts))
	for i, p := range pts {
		s.verts[i] = &Vertex{Pos: p}
	}
	return s
}

// RegularPolygon builds a closed regular polygon with the given number of
// sides, centered at the origin, first vertex on the positive x axis.
func RegularPolygon(sides int, radius float64) *Shape {
	if sides < 3 {
		sides = 3
	}
	pts := make([]Point, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range pts {
		a := step * float64(i)
		pts[i] = Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return FromPoints(pts, true)
}

// Rectangle builds a closed axis-aligned rectangle centered at the origin.
func Rectangle(w, h float64) *Shape {
	return FromPoints([]Point{
		{X: -w / 2, Y: -h / 2},
		{X: w / 2, Y: -h / 2},
		{X: w / 2, Y: h / 2},
		{X: -w / 2, Y: h / 2},
	}, true)
}

// rectangleAt builds a closed rectangle spanning the given corners.
func rectangleAt(min, max Point) *Shape {
	return FromPoints([]Point{
		min,
		{X: max.X, Y: min.Y},
		max,
		{X: min.X, Y: max.Y},
	}, true)
}

// FromSegments builds a shape from ordered contiguous segments: each
// segment's start, plus the final segment's end when the chain is open.
// The shape owns fresh vertices; the input segments are not retained.
func FromSegments(segs []Segment, closed bool) *Shape {
	if len(segs) == 0 {
		return FromPoints(nil, closed)
	}
	pts := make([]Point, 0, len(segs)+1)
	for _, seg := range segs {
		pts = append(pts, seg.Start.Pos)
	}
	if !closed {
		pts = append(pts, segs[len(segs)-1].End.Pos)
	}
	return FromPoints(pts, closed)
}

// Clone returns a deep copy of the shape: fresh Vertex instances with the
// same positions, same topology and attributes. Mutating the clone never
// affects the source.
func (s *Shape) Clone() *Shape {
	c := &Shape{
		closed:  s.closed,
		state:   s.state,
		color:   s.color,
		colored: s.colored,
		group:   s.group,
	}
	c.verts = make([]*Vertex, len(s.verts))
	for i, v := range s.verts {
		c.verts[i] = &Vertex{Pos: v.Pos}
	}
	return c
}

// Vertices returns the shape's owned vertices in boundary order.
// The slice is shared with the shape; callers narrow with views instead
// of mutating it structurally.
func (s *Shape) Vertices() []*Vertex { return s.verts }

// VertexCount returns the number of vertices.
func (s *Shape) VertexCount() int { return len(s.verts) }

// PointList returns a copy of the vertex positions in boundary order.
func (s *Shape) PointList() []Point {
	pts := make([]Point, len(s.verts))
	for i, v := range s.verts {
		pts[i] = v.Pos
	}
	return pts
}

// Segments returns the shape's boundary segments in order. For a closed
// shape the final segment wraps back to the first vertex. Adjacent
// segments share their joint Vertex pointer.
func (s *Shape) Segments() []Segment {
	n := len(s.verts)
	if n < 2 {
		return nil
	}
	count := n - 1
	if s.closed {
		count = n
	}
	segs := make([]Segment, count)
	for i := 0; i < count; i++ {
		segs[i] = Segment{Start: s.verts[i], End: s.verts[(i+1)%n]}
	}
	return segs
}

// SegmentCount returns the number of boundary segments.
func (s *Shape) SegmentCount() int {
	n := len(s.verts)
	if n < 2 {
		return 0
	}
	if s.closed {
		return n
	}
	return n - 1
}

// Closed reports whether the boundary wraps around.
func (s *Shape) Closed() bool { return s.closed }

// State returns the shape's rendering lifecycle state.
func (s *Shape) State() State { return s.state }

// MarkEphemeral demotes the shape to construction geometry.
func (s *Shape) MarkEphemeral() { s.state = Ephemeral }

// Trace promotes the shape back to concrete, making it renderable.
// This is the only transition out of the ephemeral state.
func (s *Shape) Trace() { s.state = Concrete }

// SetColor assigns an explicit color to the shape.
func (s *Shape) SetColor(c Color) {
	s.color = c
	s.colored = true
}

// Color returns the shape's color and whether one was assigned.
func (s *Shape) Color() (Color, bool) { return s.color, s.colored }

// SetGroup assigns a group tag used by callers for styling.
func (s *Shape) SetGroup(g string) { s.group = g }

// Group returns the shape's group tag, if any.
func (s *Shape) Group() string { return s.group }

// Winding returns the boundary orientation, derived from the sign of the
// shoelace area. Degenerate shapes report Clockwise.
func (s *Shape) Winding() Winding {
	if s.Area() >= 0 {
		return Clockwise
	}
	return CounterClockwise
}

// Explode returns one independent open 2-vertex shape per boundary
// segment. No vertex identities are shared between the pieces or with
// the source; the source shape becomes ephemeral.
func (s *Shape) Explode() []*Shape {
	segs := s.Segments()
	if len(segs) == 0 {
		return nil
	}
	out := make([]*Shape, len(segs))
	for i, seg := range segs {
		piece := FromPoints([]Point{seg.Start.Pos, seg.End.Pos}, false)
		piece.colored = s.colored
		piece.color = s.color
		piece.group = s.group
		out[i] = piece
	}
	s.MarkEphemeral()
	return out
}

// setPoints rebuilds the vertex list in place with fresh vertices.
// Selections over the old vertex or segment indices must be re-queried.
func (s *Shape) setPoints(pts []Point) {
	s.verts = make([]*Vertex, len(pts))
	for i, p := range pts {
		s.verts[i] = &Vertex{Pos: p}
	}
}

// finiteCheck returns ErrNonFinite wrapped with the shape's group tag if
// any vertex position has blown up to NaN or infinity.
func (s *Shape) finiteCheck(op string) error {
	for i, v := range s.verts {
		if !v.Pos.IsFinite() {
			return nonFiniteError(op, s.group, i)
		}
	}
	return nil
}
