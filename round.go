package motif

import "math"

// Corner rounding: replace selected vertices with two vertices set back
// along each adjacent edge, approximating a fillet.

// collinearEps treats a corner as a straight join (interior angle of
// 180 degrees) when the normalized cross product falls below it.
const collinearEps = 1e-9

// RoundCorners replaces each selected vertex with two new vertices
// positioned radius back along each adjacent edge. A nil or empty index
// list selects every vertex. The radius actually used per corner is
// clamped to at most half the length of the shorter adjacent edge so
// neighboring fillets never overlap. Collinear vertices are left
// unchanged. Vertices without two adjacent edges (the endpoints of an
// open shape) are left unchanged as well.
//
// The shape's vertex list is rebuilt; selections over the old indices
// must be re-queried.
func (s *Shape) RoundCorners(radius float64, indices []int) *Shape {
	n := len(s.verts)
	if n < 3 || radius <= 0 {
		return s
	}
	if len(indices) == 0 {
		indices = allIndices(n)
	}
	selected := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < n {
			selected[i] = true
		}
	}
	if len(selected) == 0 {
		return s
	}

	pts := s.PointList()
	out := make([]Point, 0, n+len(selected))
	for i, p := range pts {
		hasPrev := s.closed || i > 0
		hasNext := s.closed || i < n-1
		if !selected[i] || !hasPrev || !hasNext {
			out = append(out, p)
			continue
		}
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		toPrev := prev.Sub(p)
		toNext := next.Sub(p)
		lenPrev := toPrev.Length()
		lenNext := toNext.Length()
		if lenPrev == 0 || lenNext == 0 {
			out = append(out, p)
			continue
		}
		// A straight join has no corner to fillet.
		cross := toPrev.Normalize().Cross(toNext.Normalize())
		if math.Abs(cross) < collinearEps {
			out = append(out, p)
			continue
		}
		r := math.Min(radius, math.Min(lenPrev, lenNext)/2)
		out = append(out,
			p.Add(toPrev.Normalize().Mul(r)),
			p.Add(toNext.Normalize().Mul(r)),
		)
	}
	s.setPoints(out)
	return s
}
