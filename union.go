package motif

import "math"

// Boolean union over simple closed polygons, via boundary-intersection
// walking: compute edge-edge intersections between candidate pairs, then
// walk the combined boundary switching rings at each crossing until the
// walk returns to its start. Pairwise merging repeats until no two
// remaining boundaries overlap; the O(n^2) pair scan is fine for the
// target scale of tens to low hundreds of shapes.

const (
	// unionPointEps merges points closer than this during walks and
	// duplicate detection.
	unionPointEps = 1e-7
	// unionParamEps excludes endpoint-grazing intersections, which are
	// handled by the explicit duplicate and containment cases instead of
	// the generic crossing math (numerically unstable at zero separation).
	unionParamEps = 1e-9
)

// Union merges all pairwise-overlapping closed shapes in the input into
// maximal connected boundaries. Disjoint shapes remain separate outputs.
// A shape fully contained in another collapses to the container's
// boundary; exactly-coincident duplicates collapse to one.
//
// Open or degenerate shapes pass through unchanged. Shapes consumed by a
// merge are marked ephemeral; the merged result is concrete and carries
// the attributes of the first contributing shape.
func Union(shapes []*Shape) []*Shape {
	type entry struct {
		pts    []Point
		srcs   []*Shape
		merged bool
	}

	var out []*Shape
	var entries []*entry
	for _, s := range shapes {
		if s == nil {
			continue
		}
		if !s.Closed() || s.VertexCount() < 3 {
			out = append(out, s)
			continue
		}
		entries = append(entries, &entry{pts: clockwisePoints(s), srcs: []*Shape{s}})
	}

	pairScans := 0
	for again := true; again; {
		again = false
		for i := 0; i < len(entries) && !again; i++ {
			for j := i + 1; j < len(entries); j++ {
				pairScans++
				m, ok := mergeBoundaries(entries[i].pts, entries[j].pts)
				if !ok {
					continue
				}
				entries[i].pts = m
				entries[i].merged = true
				entries[i].srcs = append(entries[i].srcs, entries[j].srcs...)
				entries = append(entries[:j], entries[j+1:]...)
				again = true
				break
			}
		}
	}
	Logger().Debug("union complete", "inputs", len(shapes), "outputs", len(entries)+len(out), "pairScans", pairScans)

	for _, e := range entries {
		if !e.merged {
			out = append(out, e.srcs[0])
			continue
		}
		merged := FromPoints(e.pts, true)
		first := e.srcs[0]
		merged.colored = first.colored
		merged.color = first.color
		merged.group = first.group
		for _, src := range e.srcs {
			src.MarkEphemeral()
		}
		out = append(out, merged)
	}
	return out
}

// clockwisePoints returns the shape's boundary normalized to clockwise
// winding so that all union walks run the same direction.
func clockwisePoints(s *Shape) []Point {
	pts := s.PointList()
	if s.Area() < 0 {
		for l, r := 0, len(pts)-1; l < r; l, r = l+1, r-1 {
			pts[l], pts[r] = pts[r], pts[l]
		}
	}
	return pts
}

// mergeBoundaries attempts to merge two clockwise boundaries. It reports
// false when they do not overlap.
func mergeBoundaries(a, b []Point) ([]Point, bool) {
	if !bboxOverlap(a, b) {
		return nil, false
	}
	if coincidentBoundaries(a, b) {
		dup := make([]Point, len(a))
		copy(dup, a)
		return dup, true
	}

	crossings := findCrossings(a, b)
	if len(crossings) == 0 {
		// No boundary crossings: either one contains the other, or the
		// interiors are disjoint.
		if windingNumber(a, b[0]) != 0 {
			return copyPoints(a), true
		}
		if windingNumber(b, a[0]) != 0 {
			return copyPoints(b), true
		}
		return nil, false
	}

	ringA := buildRing(a, crossings, true)
	ringB := buildRing(b, crossings, false)
	linkTwins(crossings)

	start := outsideStart(ringA, b)
	if start == nil {
		start = outsideStart(ringB, a)
	}
	if start == nil {
		// Every vertex of each boundary sits inside or on the other:
		// treat as fully overlapping and keep the larger boundary.
		if math.Abs(ringArea(a)) >= math.Abs(ringArea(b)) {
			return copyPoints(a), true
		}
		return copyPoints(b), true
	}

	pts, ok := walkUnion(start, 2*(len(ringA)+len(ringB)))
	if !ok || len(pts) < 3 {
		return nil, false
	}
	return pts, true
}

// unode is a vertex or crossing point on an augmented boundary ring.
type unode struct {
	pt    Point
	cross bool
	ring  []*unode
	idx   int
	twin  *unode
}

// crossing records one proper edge-edge intersection between the two
// boundaries, with its parametric position on each.
type crossing struct {
	pt    Point
	ea    int
	ta    float64
	eb    int
	tb    float64
	nodeA *unode
	nodeB *unode
}

// findCrossings returns all proper interior crossings between edges of a
// and edges of b.
func findCrossings(a, b []Point) []*crossing {
	var out []*crossing
	for i := 0; i < len(a); i++ {
		a0 := a[i]
		a1 := a[(i+1)%len(a)]
		for j := 0; j < len(b); j++ {
			b0 := b[j]
			b1 := b[(j+1)%len(b)]
			pt, t, u, hit := segmentCrossing(a0, a1, b0, b1)
			if hit {
				out = append(out, &crossing{pt: pt, ea: i, ta: t, eb: j, tb: u})
			}
		}
	}
	return out
}

// segmentCrossing intersects segments a0-a1 and b0-b1, reporting only
// proper crossings away from the endpoints.
func segmentCrossing(a0, a1, b0, b1 Point) (Point, float64, float64, bool) {
	r := a1.Sub(a0)
	s := b1.Sub(b0)
	denom := r.Cross(s)
	if math.Abs(denom) < unionParamEps {
		return Point{}, 0, 0, false
	}
	d := b0.Sub(a0)
	t := d.Cross(s) / denom
	u := d.Cross(r) / denom
	if t < unionParamEps || t > 1-unionParamEps || u < unionParamEps || u > 1-unionParamEps {
		return Point{}, 0, 0, false
	}
	return a0.Add(r.Mul(t)), t, u, true
}

// buildRing interleaves the boundary's own vertices with its crossings,
// each edge's crossings sorted by parameter.
func buildRing(pts []Point, crossings []*crossing, isA bool) []*unode {
	var ring []*unode
	for i, p := range pts {
		ring = append(ring, &unode{pt: p})
		var onEdge []*crossing
		for _, c := range crossings {
			if (isA && c.ea == i) || (!isA && c.eb == i) {
				onEdge = append(onEdge, c)
			}
		}
		for k := 1; k < len(onEdge); k++ {
			for l := k; l > 0 && param(onEdge[l], isA) < param(onEdge[l-1], isA); l-- {
				onEdge[l], onEdge[l-1] = onEdge[l-1], onEdge[l]
			}
		}
		for _, c := range onEdge {
			n := &unode{pt: c.pt, cross: true}
			if isA {
				c.nodeA = n
			} else {
				c.nodeB = n
			}
			ring = append(ring, n)
		}
	}
	for i, n := range ring {
		n.ring = ring
		n.idx = i
	}
	return ring
}

func param(c *crossing, isA bool) float64 {
	if isA {
		return c.ta
	}
	return c.tb
}

// linkTwins connects each crossing's node on ring A to its node on ring B.
func linkTwins(crossings []*crossing) {
	for _, c := range crossings {
		if c.nodeA != nil && c.nodeB != nil {
			c.nodeA.twin = c.nodeB
			c.nodeB.twin = c.nodeA
		}
	}
}

// outsideStart returns a non-crossing node of the ring that lies strictly
// outside the other boundary, or nil.
func outsideStart(ring []*unode, other []Point) *unode {
	for _, n := range ring {
		if !n.cross && windingNumber(other, n.pt) == 0 && !onBoundary(other, n.pt) {
			return n
		}
	}
	return nil
}

// onBoundary reports whether the point lies on any edge of the polygon.
func onBoundary(pts []Point, p Point) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		ab := b.Sub(a)
		ap := p.Sub(a)
		if math.Abs(ab.Cross(ap)) > unionPointEps {
			continue
		}
		dot := ap.Dot(ab)
		if dot >= -unionPointEps && dot <= ab.Dot(ab)+unionPointEps {
			return true
		}
	}
	return false
}

// walkUnion traces the outer boundary starting from a node known to be
// outside the other polygon. Both rings run clockwise, so switching rings
// at every crossing keeps the walk on the outer hull.
func walkUnion(start *unode, limit int) ([]Point, bool) {
	var pts []Point
	node := start
	for steps := 0; ; steps++ {
		if steps > limit {
			return nil, false
		}
		if len(pts) == 0 || pts[len(pts)-1].Distance(node.pt) > unionPointEps {
			pts = append(pts, node.pt)
		}
		var next *unode
		if node.cross && node.twin != nil {
			t := node.twin
			next = t.ring[(t.idx+1)%len(t.ring)]
		} else {
			next = node.ring[(node.idx+1)%len(node.ring)]
		}
		if next == start {
			break
		}
		node = next
	}
	// Trim a duplicated closing point if the walk landed back on the start.
	if len(pts) > 1 && pts[0].Distance(pts[len(pts)-1]) <= unionPointEps {
		pts = pts[:len(pts)-1]
	}
	return pts, true
}

// coincidentBoundaries reports whether two boundaries describe the same
// polygon: equal vertex counts, equal absolute areas, and every vertex of
// one matching a vertex of the other.
func coincidentBoundaries(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	if math.Abs(math.Abs(ringArea(a))-math.Abs(ringArea(b))) > unionPointEps {
		return false
	}
	for _, p := range a {
		found := false
		for _, q := range b {
			if p.Distance(q) <= unionPointEps {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func ringArea(pts []Point) float64 {
	var area float64
	n := len(pts)
	for i := 0; i < n; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		area += p0.X*p1.Y - p1.X*p0.Y
	}
	return area / 2
}

func bboxOverlap(a, b []Point) bool {
	ra := pointsBBox(a)
	rb := pointsBBox(b)
	return ra.Min.X <= rb.Max.X+unionPointEps && ra.Max.X >= rb.Min.X-unionPointEps &&
		ra.Min.Y <= rb.Max.Y+unionPointEps && ra.Max.Y >= rb.Min.Y-unionPointEps
}

func pointsBBox(pts []Point) Rect {
	bbox := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		bbox = bbox.expand(p)
	}
	return bbox
}

func copyPoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}
