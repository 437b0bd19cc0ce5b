package motif

// Boundary offset: grow or shrink a polygon by moving each vertex along
// the bisector of its adjacent edge normals, scaled so straight edges
// move by exactly the requested distance.

// bisectorEps rejects near-degenerate spikes where the adjacent edge
// normals cancel and the bisector scale would blow up.
const bisectorEps = 1e-9

// Offset derives a new boundary uniformly grown (distance > 0) or shrunk
// (distance < 0). The source shape becomes ephemeral and the derived
// shape is concrete.
//
// Degenerate shapes (fewer than 2 vertices) yield an empty shape and no
// error. A numeric blow-up (near-zero bisector at a spike vertex) is
// surfaced as an error wrapping [ErrNonFinite] before any geometry
// escapes to the rendering boundary.
func (s *Shape) Offset(distance float64) (*Shape, error) {
	if len(s.verts) < 2 {
		return FromPoints(nil, s.closed), nil
	}
	pts, err := offsetPoints(s, distance)
	if err != nil {
		return nil, err
	}
	out := FromPoints(pts, s.closed)
	out.colored = s.colored
	out.color = s.color
	out.group = s.group
	if err := out.finiteCheck("offset"); err != nil {
		return nil, err
	}
	s.MarkEphemeral()
	return out, nil
}

// OffsetRings derives count concentric offsets at multiples of distance
// (distance, 2*distance, ...) in one call. Alternating grow/shrink is a
// caller responsibility. The source becomes ephemeral.
func (s *Shape) OffsetRings(distance float64, count int) (*Collection, error) {
	rings := NewCollection()
	for i := 1; i <= count; i++ {
		pts, err := offsetPoints(s, distance*float64(i))
		if err != nil {
			return nil, err
		}
		ring := FromPoints(pts, s.closed)
		ring.colored = s.colored
		ring.color = s.color
		ring.group = s.group
		if err := ring.finiteCheck("offset ring"); err != nil {
			return nil, err
		}
		rings.Add(ring)
	}
	s.MarkEphemeral()
	return rings, nil
}

// offsetPoints computes the offset vertex positions without mutating the
// source shape.
func offsetPoints(s *Shape, distance float64) ([]Point, error) {
	n := len(s.verts)
	pts := s.PointList()
	out := make([]Point, n)
	sign := outwardSign(s)

	for i := 0; i < n; i++ {
		hasPrev := s.closed || i > 0
		hasNext := s.closed || i < n-1
		var n1, n2 Point
		if hasPrev {
			prev := pts[(i-1+n)%n]
			n1 = edgeNormal(prev, pts[i], sign)
		}
		if hasNext {
			next := pts[(i+1)%n]
			n2 = edgeNormal(pts[i], next, sign)
		}
		switch {
		case hasPrev && hasNext:
			bis := n1.Add(n2)
			blen := bis.Length()
			if blen < bisectorEps {
				return nil, nonFiniteError("offset", s.group, i)
			}
			bis = bis.Div(blen)
			// Scale along the bisector so the adjacent edges each move
			// by exactly distance.
			cos := bis.Dot(n1)
			if cos < bisectorEps {
				return nil, nonFiniteError("offset", s.group, i)
			}
			out[i] = pts[i].Add(bis.Mul(distance / cos))
		case hasNext:
			out[i] = pts[i].Add(n2.Mul(distance))
		default:
			out[i] = pts[i].Add(n1.Mul(distance))
		}
	}
	return out, nil
}

// edgeNormal returns the unit normal of the edge a->b pointing outward
// for the given winding sign.
func edgeNormal(a, b Point, sign float64) Point {
	return b.Sub(a).Normalize().Perp().Mul(sign)
}

// outwardSign maps the shape's winding to the perpendicular direction
// that points away from the interior. Clockwise boundaries (positive
// area, y-down) have their outward normals on the right of each edge.
func outwardSign(s *Shape) float64 {
	if s.closed && s.Winding() == Clockwise {
		return -1
	}
	if s.closed {
		return 1
	}
	// Open polylines have no interior; use the left perpendicular.
	return 1
}
