package motif

import "math"

// Kernel operations on shapes: affine transforms, centroid, area,
// bounding box, and point containment.

// Translate moves every vertex of the shape by (dx, dy).
func (s *Shape) Translate(dx, dy float64) *Shape {
	s.Transform(Translation(dx, dy))
	return s
}

// Rotate rotates the shape by angle radians about the given pivot.
// With no pivot the shape rotates about its centroid.
func (s *Shape) Rotate(angle float64, pivot ...Point) *Shape {
	s.Transform(Rotation(angle).AboutPivot(s.pivotOr(pivot)))
	return s
}

// ScaleBy scales the shape by (sx, sy) about the given pivot.
// With no pivot the shape scales about its centroid.
func (s *Shape) ScaleBy(sx, sy float64, pivot ...Point) *Shape {
	s.Transform(Scaling(sx, sy).AboutPivot(s.pivotOr(pivot)))
	return s
}

// Transform applies an affine matrix to every vertex in place.
// Shared vertices between adjacent segments stay shared.
func (s *Shape) Transform(m Matrix) {
	for _, v := range s.verts {
		v.Pos = m.Apply(v.Pos)
	}
}

// MoveTo translates the shape so its centroid lands on (x, y).
func (s *Shape) MoveTo(x, y float64) *Shape {
	c := s.Centroid()
	return s.Translate(x-c.X, y-c.Y)
}

func (s *Shape) pivotOr(pivot []Point) Point {
	if len(pivot) > 0 {
		return pivot[0]
	}
	return s.Centroid()
}

// Area returns the signed area enclosed by the shape via the shoelace
// formula. Positive for clockwise boundaries (y-down coordinates).
// Open and degenerate shapes report zero.
func (s *Shape) Area() float64 {
	if !s.closed || len(s.verts) < 3 {
		return 0
	}
	var area float64
	n := len(s.verts)
	for i := 0; i < n; i++ {
		p0 := s.verts[i].Pos
		p1 := s.verts[(i+1)%n].Pos
		area += p0.X*p1.Y - p1.X*p0.Y
	}
	return area / 2
}

// Centroid returns the area-weighted polygon centroid for closed shapes,
// and the mean vertex position for open or degenerate ones.
func (s *Shape) Centroid() Point {
	n := len(s.verts)
	if n == 0 {
		return Point{}
	}
	if s.closed && n >= 3 {
		var cx, cy, area float64
		for i := 0; i < n; i++ {
			p0 := s.verts[i].Pos
			p1 := s.verts[(i+1)%n].Pos
			cross := p0.X*p1.Y - p1.X*p0.Y
			cx += (p0.X + p1.X) * cross
			cy += (p0.Y + p1.Y) * cross
			area += cross
		}
		if math.Abs(area) > 1e-12 {
			return Point{X: cx / (3 * area), Y: cy / (3 * area)}
		}
		// Zero-area polygon (collinear); fall through to the vertex mean.
	}
	var sum Point
	for _, v := range s.verts {
		sum = sum.Add(v.Pos)
	}
	return sum.Div(float64(n))
}

// BoundingBox returns the axis-aligned bounding box of the shape's
// vertices. An empty shape reports the zero rectangle.
func (s *Shape) BoundingBox() Rect {
	if len(s.verts) == 0 {
		return Rect{}
	}
	bbox := Rect{Min: s.verts[0].Pos, Max: s.verts[0].Pos}
	for _, v := range s.verts[1:] {
		bbox = bbox.expand(v.Pos)
	}
	return bbox
}

// ContainsPoint tests whether the point lies inside the shape using the
// winding number. Correct for non-convex simple polygons in either
// winding; open or degenerate shapes contain nothing.
func (s *Shape) ContainsPoint(pt Point) bool {
	if !s.closed || len(s.verts) < 3 {
		return false
	}
	return windingNumber(s.PointList(), pt) != 0
}

// windingNumber accumulates signed horizontal-ray crossings of the closed
// polygon pts around pt.
func windingNumber(pts []Point, pt Point) int {
	var winding int
	n := len(pts)
	for i := 0; i < n; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		if p0.Y <= pt.Y && p1.Y > pt.Y {
			if isLeft(p0, p1, pt) > 0 {
				winding++
			}
		} else if p0.Y > pt.Y && p1.Y <= pt.Y {
			if isLeft(p0, p1, pt) < 0 {
				winding--
			}
		}
	}
	return winding
}

// isLeft returns positive if pt is left of line p0-p1, negative if right,
// zero if on the line.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// Collapse derives a single-vertex shape at the source's centroid and
// marks the source ephemeral.
func (s *Shape) Collapse() *Shape {
	c := FromPoints([]Point{s.Centroid()}, false)
	c.colored = s.colored
	c.color = s.color
	c.group = s.group
	s.MarkEphemeral()
	return c
}

// BBoxShape derives the shape's bounding rectangle as a new shape and
// marks the source ephemeral. The rectangle itself starts ephemeral: it
// exists as a placement target until explicitly traced.
func (s *Shape) BBoxShape() *Shape {
	bbox := s.BoundingBox()
	r := rectangleAt(bbox.Min, bbox.Max)
	r.state = Ephemeral
	s.MarkEphemeral()
	return r
}
