package motif

// Collection owns an ordered set of independent shapes, such as the
// output of Explode, OffsetRings, or a tessellation. Selection over its
// members goes through ShapesView.
type Collection struct {
	shapes []*Shape
}

// NewCollection creates a collection over the given shapes.
func NewCollection(shapes ...*Shape) *Collection {
	return &Collection{shapes: shapes}
}

// Add appends shapes to the collection.
func (c *Collection) Add(shapes ...*Shape) {
	c.shapes = append(c.shapes, shapes...)
}

// Shapes returns the collection's members. It also satisfies the
// ShapeSource contract used by Collector.
func (c *Collection) Shapes() []*Shape { return c.shapes }

// Len returns the number of member shapes.
func (c *Collection) Len() int { return len(c.shapes) }

// View returns a selection view over all members.
func (c *Collection) View() *ShapesView {
	return &ShapesView{coll: c, idx: allIndices(len(c.shapes))}
}

// Trace marks every member concrete.
func (c *Collection) Trace() *Collection {
	for _, s := range c.shapes {
		s.Trace()
	}
	return c
}

// MarkEphemeral marks every member as construction geometry.
func (c *Collection) MarkEphemeral() *Collection {
	for _, s := range c.shapes {
		s.MarkEphemeral()
	}
	return c
}

// ShapesView is a non-owning selection over a collection's members.
// Mutating operations apply per member and write through to the owned
// shapes.
type ShapesView struct {
	coll *Collection
	idx  []int
}

// Every narrows the selection to every nth member, starting at offset.
func (v *ShapesView) Every(n, offset int) *ShapesView {
	return &ShapesView{coll: v.coll, idx: strideIndices(v.idx, n, offset)}
}

// Slice narrows the selection to the half-open range [from, to).
func (v *ShapesView) Slice(from, to int) *ShapesView {
	return &ShapesView{coll: v.coll, idx: sliceIndices(v.idx, from, to)}
}

// Count returns the number of selected members.
func (v *ShapesView) Count() int { return len(v.idx) }

// Selected returns the selected member shapes.
func (v *ShapesView) Selected() []*Shape {
	out := make([]*Shape, len(v.idx))
	for i, id := range v.idx {
		out[i] = v.coll.shapes[id]
	}
	return out
}

// ScaleBy scales each selected member about its own centroid.
func (v *ShapesView) ScaleBy(sx, sy float64) *ShapesView {
	for _, s := range v.Selected() {
		s.ScaleBy(sx, sy)
	}
	return v
}

// Rotate rotates each selected member about its own centroid.
func (v *ShapesView) Rotate(angle float64) *ShapesView {
	for _, s := range v.Selected() {
		s.Rotate(angle)
	}
	return v
}

// SetColor assigns the color to each selected member.
func (v *ShapesView) SetColor(c Color) *ShapesView {
	for _, s := range v.Selected() {
		s.SetColor(c)
	}
	return v
}

// ColorWith pulls one color from the generator per selected member.
func (v *ShapesView) ColorWith(f ColorFunc) *ShapesView {
	for _, s := range v.Selected() {
		s.SetColor(f())
	}
	return v
}

// Union merges the selected members into maximal connected boundaries
// and returns them as a new collection. Members consumed by a merge are
// marked ephemeral; untouched members pass through.
func (v *ShapesView) Union() *Collection {
	return NewCollection(Union(v.Selected())...)
}

// Points promotes the selection to a cross-shape vertex view, one
// PointsView per selected member, for uniform mutation across many
// shapes at once.
func (v *ShapesView) Points() *GroupPoints {
	g := &GroupPoints{}
	for _, s := range v.Selected() {
		g.views = append(g.views, s.Points())
	}
	return g
}

// Lines promotes the selection to a cross-shape segment view.
func (v *ShapesView) Lines() *GroupLines {
	g := &GroupLines{}
	for _, s := range v.Selected() {
		g.views = append(g.views, s.Lines())
	}
	return g
}

// GroupPoints applies vertex-view operations uniformly across the
// member shapes of a collection selection.
type GroupPoints struct {
	views []*PointsView
}

// Every narrows each member's vertex selection by stride.
func (g *GroupPoints) Every(n, offset int) *GroupPoints {
	out := &GroupPoints{}
	for _, v := range g.views {
		out.views = append(out.views, v.Every(n, offset))
	}
	return out
}

// Expand moves each selected vertex of every member outward by distance.
func (g *GroupPoints) Expand(distance float64) *GroupPoints {
	for _, v := range g.views {
		v.Expand(distance)
	}
	return g
}

// Round fillets the selected vertices of every member.
func (g *GroupPoints) Round(radius float64) *GroupPoints {
	for _, v := range g.views {
		v.Round(radius)
	}
	return g
}

// GroupLines applies segment-view operations uniformly across the
// member shapes of a collection selection.
type GroupLines struct {
	views []*LinesView
}

// Every narrows each member's segment selection by stride.
func (g *GroupLines) Every(n, offset int) *GroupLines {
	out := &GroupLines{}
	for _, v := range g.views {
		out.views = append(out.views, v.Every(n, offset))
	}
	return out
}

// Extrude extrudes the selected segments of every member.
func (g *GroupLines) Extrude(distance float64) *GroupLines {
	for _, v := range g.views {
		v.Extrude(distance)
	}
	return g
}

// Subdivide subdivides the selected segments of every member.
func (g *GroupLines) Subdivide(n int) *GroupLines {
	for _, v := range g.views {
		v.Subdivide(n)
	}
	return g
}
