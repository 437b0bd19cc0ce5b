package motif

// Pen is the fluent single-shape context. It wraps one owned Shape and
// exposes placement, transformation, derivation, and selection accessors
// that all return quickly chainable values.
type Pen struct {
	shape *Shape
	sides int
	// regular marks pens built as regular polygons; only those may be
	// rebuilt by Radius and Sides without discarding caller geometry.
	regular bool
}

// NewPen wraps an existing shape in a fluent context.
func NewPen(s *Shape) *Pen {
	return &Pen{shape: s, sides: s.VertexCount()}
}

// PolygonPen creates a pen holding a regular polygon with the given
// number of sides, centered at the origin.
func PolygonPen(sides int, radius float64) *Pen {
	return &Pen{shape: RegularPolygon(sides, radius), sides: sides, regular: true}
}

// CirclePen creates a pen holding a 64-gon circle approximation.
func CirclePen(radius float64) *Pen {
	return &Pen{shape: RegularPolygon(64, radius), sides: 64, regular: true}
}

// RectanglePen creates a pen holding a w-by-h rectangle centered at the
// origin.
func RectanglePen(w, h float64) *Pen {
	return &Pen{shape: Rectangle(w, h), sides: 4}
}

// Shape returns the pen's underlying shape.
func (p *Pen) Shape() *Shape { return p.shape }

// Shapes satisfies the ShapeSource contract used by Collector.
func (p *Pen) Shapes() []*Shape { return []*Shape{p.shape} }

// Radius rebuilds the pen's regular polygon with a new radius, keeping
// its centroid placement. Pens wrapping a rectangle or an arbitrary
// shape are left unchanged.
func (p *Pen) Radius(r float64) *Pen {
	if !p.regular {
		return p
	}
	center := p.shape.Centroid()
	rebuilt := RegularPolygon(p.sides, r)
	rebuilt.Translate(center.X, center.Y)
	rebuilt.state = p.shape.state
	rebuilt.color = p.shape.color
	rebuilt.colored = p.shape.colored
	rebuilt.group = p.shape.group
	p.shape = rebuilt
	return p
}

// Sides rebuilds the pen's regular polygon with a new side count, keeping
// its circumradius and centroid placement. Pens wrapping a rectangle or
// an arbitrary shape are left unchanged.
func (p *Pen) Sides(n int) *Pen {
	if !p.regular || n < 3 || len(p.shape.verts) == 0 {
		return p
	}
	center := p.shape.Centroid()
	radius := p.shape.verts[0].Pos.Sub(center).Length()
	rebuilt := RegularPolygon(n, radius)
	rebuilt.Translate(center.X, center.Y)
	rebuilt.state = p.shape.state
	rebuilt.color = p.shape.color
	rebuilt.colored = p.shape.colored
	rebuilt.group = p.shape.group
	p.shape = rebuilt
	p.sides = n
	return p
}

// Size rebuilds the pen's shape as a w-by-h rectangle at the same
// centroid placement.
func (p *Pen) Size(w, h float64) *Pen {
	center := p.shape.Centroid()
	rebuilt := Rectangle(w, h)
	rebuilt.Translate(center.X, center.Y)
	rebuilt.state = p.shape.state
	rebuilt.color = p.shape.color
	rebuilt.colored = p.shape.colored
	rebuilt.group = p.shape.group
	p.shape = rebuilt
	p.sides = 4
	p.regular = false
	return p
}

// XY places the shape's centroid at the absolute position (x, y).
func (p *Pen) XY(x, y float64) *Pen {
	p.shape.MoveTo(x, y)
	return p
}

// MoveTo is an alias for XY.
func (p *Pen) MoveTo(x, y float64) *Pen { return p.XY(x, y) }

// Rotate rotates the shape by angle radians about its centroid.
func (p *Pen) Rotate(angle float64) *Pen {
	p.shape.Rotate(angle)
	return p
}

// ScaleBy scales the shape about its centroid.
func (p *Pen) ScaleBy(sx, sy float64) *Pen {
	p.shape.ScaleBy(sx, sy)
	return p
}

// Clone replicates the shape count+1 times along the linear offset
// (dx, dy) and returns the resulting instance system. The pen's own
// shape becomes ephemeral; the system owns fresh copies.
func (p *Pen) Clone(count int, dx, dy float64) *CloneSystem {
	return cloneShape(p.shape, count, dx, dy)
}

// Offset derives an offset boundary and returns it wrapped in a new pen.
// The source shape becomes ephemeral.
func (p *Pen) Offset(distance float64) (*Pen, error) {
	out, err := p.shape.Offset(distance)
	if err != nil {
		return nil, err
	}
	return NewPen(out), nil
}

// OffsetRings derives count concentric offset rings as a collection.
// The source shape becomes ephemeral.
func (p *Pen) OffsetRings(distance float64, count int) (*Collection, error) {
	return p.shape.OffsetRings(distance, count)
}

// Explode derives one independent open segment shape per boundary edge.
// The source shape becomes ephemeral.
func (p *Pen) Explode() *Collection {
	return NewCollection(p.shape.Explode()...)
}

// Collapse derives a single point at the shape's centroid.
// The source shape becomes ephemeral.
func (p *Pen) Collapse() *Pen {
	return NewPen(p.shape.Collapse())
}

// BBox derives the shape's bounding rectangle as an ephemeral placement
// target. Trace the result to render it.
func (p *Pen) BBox() *Pen {
	return NewPen(p.shape.BBoxShape())
}

// Trace flips the shape back to concrete.
func (p *Pen) Trace() *Pen {
	p.shape.Trace()
	return p
}

// Color assigns a fixed color to the shape.
func (p *Pen) Color(c Color) *Pen {
	p.shape.SetColor(c)
	return p
}

// Group assigns a group tag used by callers for styling.
func (p *Pen) Group(g string) *Pen {
	p.shape.SetGroup(g)
	return p
}

// Points returns a selection view over the shape's full vertex list.
func (p *Pen) Points() *PointsView { return p.shape.Points() }

// Lines returns a selection view over the shape's full segment list.
func (p *Pen) Lines() *LinesView { return p.shape.Lines() }
