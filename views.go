package motif

import "math"

// Selection views: non-owning references into a subset of a shape's
// vertices or segments. Narrowing queries (Every, At, Slice) return new
// views closed over the same shape; mutating operations write through to
// the owned vertices. Views never copy geometry.
//
// A view does not survive structural edits: after Extrude, Subdivide, or
// RoundCorners rebuild the vertex list, stale views must be re-queried.

// PointsView is a selection over a shape's vertices.
type PointsView struct {
	shape *Shape
	idx   []int
}

// Points returns a view over all of the shape's vertices.
func (s *Shape) Points() *PointsView {
	return &PointsView{shape: s, idx: allIndices(len(s.verts))}
}

// Every narrows the selection to every nth element, starting at offset.
// A stride past the selection size yields an empty view, not an error.
func (v *PointsView) Every(n, offset int) *PointsView {
	return &PointsView{shape: v.shape, idx: strideIndices(v.idx, n, offset)}
}

// At narrows the selection to the given positions within the current
// selection. Out-of-range positions are ignored.
func (v *PointsView) At(positions ...int) *PointsView {
	return &PointsView{shape: v.shape, idx: pickIndices(v.idx, positions)}
}

// Slice narrows the selection to the half-open range [from, to).
func (v *PointsView) Slice(from, to int) *PointsView {
	return &PointsView{shape: v.shape, idx: sliceIndices(v.idx, from, to)}
}

// Count returns the number of selected vertices.
func (v *PointsView) Count() int { return len(v.idx) }

// Positions returns the selected vertex positions.
func (v *PointsView) Positions() []Point {
	out := make([]Point, len(v.idx))
	for i, id := range v.idx {
		out[i] = v.shape.verts[id].Pos
	}
	return out
}

// Expand moves each selected vertex outward along its local outward
// normal (the averaged direction of its two adjacent edge normals) by
// distance. This is how star and gear silhouettes are produced from a
// base polygon. Mutates in place; the vertex count is unchanged.
func (v *PointsView) Expand(distance float64) *PointsView {
	n := len(v.shape.verts)
	if n < 2 {
		return v
	}
	sign := outwardSign(v.shape)
	pts := v.shape.PointList()
	for _, id := range v.idx {
		normal := vertexNormal(pts, id, v.shape.closed, sign)
		v.shape.verts[id].Pos = v.shape.verts[id].Pos.Add(normal.Mul(distance))
	}
	return v
}

// Round fillets the selected vertices with the given radius. The shape's
// vertex list is rebuilt; this and other views over it must be re-queried
// afterward.
func (v *PointsView) Round(radius float64) *Shape {
	if len(v.idx) == 0 {
		return v.shape
	}
	return v.shape.RoundCorners(radius, v.idx)
}

// ExpandToCircles returns a new collection of small regular-polygon
// "stamp" shapes, one per selected vertex, centered at that vertex. The
// source shape is unaffected.
func (v *PointsView) ExpandToCircles(radius float64, segments int) *Collection {
	out := NewCollection()
	for _, id := range v.idx {
		stamp := RegularPolygon(segments, radius)
		pos := v.shape.verts[id].Pos
		stamp.Translate(pos.X, pos.Y)
		out.Add(stamp)
	}
	return out
}

// Raycast returns the endpoints reached by projecting each selected
// vertex by distance along the given heading (radians). Non-mutating.
func (v *PointsView) Raycast(distance, direction float64) []Point {
	dir := Point{X: math.Cos(direction), Y: math.Sin(direction)}
	out := make([]Point, len(v.idx))
	for i, id := range v.idx {
		out[i] = v.shape.verts[id].Pos.Add(dir.Mul(distance))
	}
	return out
}

// vertexNormal averages the unit normals of the two edges adjacent to
// vertex i, oriented outward for the given winding sign.
func vertexNormal(pts []Point, i int, closed bool, sign float64) Point {
	n := len(pts)
	hasPrev := closed || i > 0
	hasNext := closed || i < n-1
	var sum Point
	if hasPrev {
		sum = sum.Add(edgeNormal(pts[(i-1+n)%n], pts[i], sign))
	}
	if hasNext {
		sum = sum.Add(edgeNormal(pts[i], pts[(i+1)%n], sign))
	}
	return sum.Normalize()
}

// LinesView is a selection over a shape's boundary segments.
type LinesView struct {
	shape *Shape
	idx   []int
}

// Lines returns a view over all of the shape's segments.
func (s *Shape) Lines() *LinesView {
	return &LinesView{shape: s, idx: allIndices(s.SegmentCount())}
}

// Every narrows the selection to every nth segment, starting at offset.
func (v *LinesView) Every(n, offset int) *LinesView {
	return &LinesView{shape: v.shape, idx: strideIndices(v.idx, n, offset)}
}

// At narrows the selection to the given positions within the current
// selection.
func (v *LinesView) At(positions ...int) *LinesView {
	return &LinesView{shape: v.shape, idx: pickIndices(v.idx, positions)}
}

// Slice narrows the selection to the half-open range [from, to).
func (v *LinesView) Slice(from, to int) *LinesView {
	return &LinesView{shape: v.shape, idx: sliceIndices(v.idx, from, to)}
}

// Count returns the number of selected segments.
func (v *LinesView) Count() int { return len(v.idx) }

// Extrude replaces each selected segment A->B with the four-point path
// A->A'->B'->B, where A' and B' are offset perpendicular to the segment
// by distance. Each extruded segment inserts exactly 2 new vertices and
// adds 2 segments. This is the mechanism behind gear teeth and cross
// patterns. The vertex list is rebuilt; re-query views afterward.
func (v *LinesView) Extrude(distance float64) *Shape {
	if len(v.idx) == 0 {
		return v.shape
	}
	sign := outwardSign(v.shape)
	// Insert from the highest segment index down so earlier indices stay
	// valid while the list grows.
	for _, segIdx := range descending(v.idx) {
		n := len(v.shape.verts)
		if segIdx < 0 || segIdx >= v.shape.SegmentCount() {
			continue
		}
		a := v.shape.verts[segIdx].Pos
		b := v.shape.verts[(segIdx+1)%n].Pos
		normal := edgeNormal(a, b, sign)
		v.shape.insertAfter(segIdx, a.Add(normal.Mul(distance)), b.Add(normal.Mul(distance)))
	}
	return v.shape
}

// Subdivide replaces each selected segment with n equal-length
// sub-segments, inserting n-1 new vertices per segment. n < 2 is a
// no-op. The vertex list is rebuilt; re-query views afterward.
func (v *LinesView) Subdivide(n int) *Shape {
	if n < 2 || len(v.idx) == 0 {
		return v.shape
	}
	for _, segIdx := range descending(v.idx) {
		count := len(v.shape.verts)
		if segIdx < 0 || segIdx >= v.shape.SegmentCount() {
			continue
		}
		a := v.shape.verts[segIdx].Pos
		b := v.shape.verts[(segIdx+1)%count].Pos
		mids := make([]Point, n-1)
		for k := 1; k < n; k++ {
			mids[k-1] = a.Lerp(b, float64(k)/float64(n))
		}
		v.shape.insertAfter(segIdx, mids...)
	}
	return v.shape
}

// Divide returns the n-1 intermediate points of each selected segment
// without mutating the shape.
func (v *LinesView) Divide(n int) []Point {
	if n < 2 {
		return nil
	}
	segs := v.shape.Segments()
	var out []Point
	for _, segIdx := range v.idx {
		if segIdx < 0 || segIdx >= len(segs) {
			continue
		}
		a := segs[segIdx].Start.Pos
		b := segs[segIdx].End.Pos
		for k := 1; k < n; k++ {
			out = append(out, a.Lerp(b, float64(k)/float64(n)))
		}
	}
	return out
}

// Collapse returns the midpoint of each selected segment without
// mutating the shape.
func (v *LinesView) Collapse() []Point {
	segs := v.shape.Segments()
	out := make([]Point, 0, len(v.idx))
	for _, segIdx := range v.idx {
		if segIdx >= 0 && segIdx < len(segs) {
			out = append(out, segs[segIdx].Midpoint())
		}
	}
	return out
}

// insertAfter inserts new vertices immediately after vertex index i.
func (s *Shape) insertAfter(i int, pts ...Point) {
	if len(pts) == 0 {
		return
	}
	fresh := make([]*Vertex, len(pts))
	for k, p := range pts {
		fresh[k] = &Vertex{Pos: p}
	}
	tail := append(fresh, s.verts[i+1:]...)
	s.verts = append(s.verts[:i+1:i+1], tail...)
}

// Index helpers shared by all view types.

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func strideIndices(idx []int, n, offset int) []int {
	if n < 1 {
		return nil
	}
	var out []int
	for i := offset; i >= 0 && i < len(idx); i += n {
		out = append(out, idx[i])
	}
	return out
}

func pickIndices(idx []int, positions []int) []int {
	var out []int
	for _, p := range positions {
		if p >= 0 && p < len(idx) {
			out = append(out, idx[p])
		}
	}
	return out
}

func sliceIndices(idx []int, from, to int) []int {
	if from < 0 {
		from = 0
	}
	if to > len(idx) {
		to = len(idx)
	}
	if from >= to {
		return nil
	}
	out := make([]int, to-from)
	copy(out, idx[from:to])
	return out
}

func descending(idx []int) []int {
	out := make([]int, len(idx))
	copy(out, idx)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j] > out[i] {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}
