package motif

import "math"

// CloneSystem replicates a source shape (or a previously built system,
// enabling nested grids) along a linear offset, or redistributes the
// replicas radially. Members are grouped in blocks: a simple clone has
// one shape per block, a nested clone replicates the whole previous
// system as each block.
type CloneSystem struct {
	blocks [][]*Shape
	placed []*Shape
}

// cloneShape builds a system of count+1 positioned copies of src spaced
// by (dx, dy). The source becomes ephemeral.
func cloneShape(src *Shape, count int, dx, dy float64) *CloneSystem {
	cs := &CloneSystem{}
	for i := 0; i <= count; i++ {
		member := src.Clone()
		member.state = Concrete
		member.Translate(dx*float64(i), dy*float64(i))
		cs.blocks = append(cs.blocks, []*Shape{member})
	}
	src.MarkEphemeral()
	return cs
}

// Clone replicates every member shape of this system as a block,
// count+1 times along (dx, dy). The previous system's shapes are
// superseded: they still exist as data but are marked ephemeral so they
// do not render twice.
func (cs *CloneSystem) Clone(count int, dx, dy float64) *CloneSystem {
	next := &CloneSystem{}
	members := cs.Members()
	for i := 0; i <= count; i++ {
		block := make([]*Shape, len(members))
		for k, m := range members {
			c := m.Clone()
			c.state = Concrete
			c.Translate(dx*float64(i), dy*float64(i))
			block[k] = c
		}
		next.blocks = append(next.blocks, block)
	}
	for _, m := range members {
		m.MarkEphemeral()
	}
	for _, p := range cs.placed {
		p.MarkEphemeral()
	}
	return next
}

// Count returns the number of members (blocks).
func (cs *CloneSystem) Count() int { return len(cs.blocks) }

// Members returns every member shape across all blocks, in block order.
func (cs *CloneSystem) Members() []*Shape {
	var out []*Shape
	for _, b := range cs.blocks {
		out = append(out, b...)
	}
	return out
}

// Shapes returns all shapes owned by the system, members and placements
// alike, satisfying the ShapeSource contract.
func (cs *CloneSystem) Shapes() []*Shape {
	out := cs.Members()
	return append(out, cs.placed...)
}

// Spread re-spaces the members linearly from the first member: member i
// moves to the first member's centroid plus i*(dx, dy).
func (cs *CloneSystem) Spread(dx, dy float64) *CloneSystem {
	if len(cs.blocks) == 0 {
		return cs
	}
	origin := blockCentroid(cs.blocks[0])
	for i, block := range cs.blocks {
		target := origin.Add(Point{X: dx * float64(i), Y: dy * float64(i)})
		moveBlock(block, target)
	}
	return cs
}

// SpreadPolar places the N members at equal angular steps around a
// circle of the given radius, centered on the system's current centroid.
// With no arc, the full circle is divided into N equal steps and member
// 0 sits at angle 0 (the right). With an explicit arc (start and end in
// degrees), N-1 equal steps span it so both endpoints are occupied.
// Systems of 0 or 1 members are left unchanged.
func (cs *CloneSystem) SpreadPolar(radius float64, arc ...float64) *CloneSystem {
	n := len(cs.blocks)
	if n < 2 {
		return cs
	}
	center := cs.centroid()
	for i, block := range cs.blocks {
		var angle float64
		if len(arc) >= 2 {
			start := arc[0] * math.Pi / 180
			end := arc[1] * math.Pi / 180
			angle = start + (end-start)*float64(i)/float64(n-1)
		} else {
			angle = 2 * math.Pi * float64(i) / float64(n)
		}
		target := center.Add(Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
		moveBlock(block, target)
	}
	return cs
}

// Every narrows the system to every nth member, returning a view that
// shares the same underlying shape ownership. A stride past the member
// count yields an empty system, not an error.
func (cs *CloneSystem) Every(n, offset int) *CloneSystem {
	out := &CloneSystem{placed: cs.placed}
	for _, i := range strideIndices(allIndices(len(cs.blocks)), n, offset) {
		out.blocks = append(out.blocks, cs.blocks[i])
	}
	return out
}

// Slice narrows the system to the member range [from, to), sharing the
// same underlying shapes.
func (cs *CloneSystem) Slice(from, to int) *CloneSystem {
	out := &CloneSystem{placed: cs.placed}
	for _, i := range sliceIndices(allIndices(len(cs.blocks)), from, to) {
		out.blocks = append(out.blocks, cs.blocks[i])
	}
	return out
}

// Place stamps a clone of the template at every member's centroid.
// The template becomes ephemeral; the stamps are concrete and owned by
// the system.
func (cs *CloneSystem) Place(template *Shape) *CloneSystem {
	for _, block := range cs.blocks {
		c := blockCentroid(block)
		stamp := template.Clone()
		stamp.state = Concrete
		stamp.MoveTo(c.X, c.Y)
		cs.placed = append(cs.placed, stamp)
	}
	template.MarkEphemeral()
	return cs
}

// Mask removes every member and placement whose centroid lies outside
// the boundary shape. Removed shapes are marked ephemeral, so the
// removal also holds for any narrowed view or parent system sharing
// them. The boundary becomes ephemeral.
func (cs *CloneSystem) Mask(boundary *Shape) *CloneSystem {
	var keptBlocks [][]*Shape
	for _, block := range cs.blocks {
		if boundary.ContainsPoint(blockCentroid(block)) {
			keptBlocks = append(keptBlocks, block)
			continue
		}
		for _, s := range block {
			s.MarkEphemeral()
		}
	}
	cs.blocks = keptBlocks
	var keptPlaced []*Shape
	for _, p := range cs.placed {
		if boundary.ContainsPoint(p.Centroid()) {
			keptPlaced = append(keptPlaced, p)
		} else {
			p.MarkEphemeral()
		}
	}
	cs.placed = keptPlaced
	boundary.MarkEphemeral()
	return cs
}

// Trace marks every owned shape concrete.
func (cs *CloneSystem) Trace() *CloneSystem {
	for _, s := range cs.Shapes() {
		s.Trace()
	}
	return cs
}

// Color assigns a fixed color to every owned shape.
func (cs *CloneSystem) Color(c Color) *CloneSystem {
	for _, s := range cs.Shapes() {
		s.SetColor(c)
	}
	return cs
}

// ColorWith pulls one color from the generator per owned shape.
func (cs *CloneSystem) ColorWith(f ColorFunc) *CloneSystem {
	for _, s := range cs.Shapes() {
		s.SetColor(f())
	}
	return cs
}

// centroid returns the mean of the block centroids.
func (cs *CloneSystem) centroid() Point {
	if len(cs.blocks) == 0 {
		return Point{}
	}
	var sum Point
	for _, b := range cs.blocks {
		sum = sum.Add(blockCentroid(b))
	}
	return sum.Div(float64(len(cs.blocks)))
}

// blockCentroid returns the mean centroid of a block's shapes.
func blockCentroid(block []*Shape) Point {
	if len(block) == 0 {
		return Point{}
	}
	var sum Point
	for _, s := range block {
		sum = sum.Add(s.Centroid())
	}
	return sum.Div(float64(len(block)))
}

// moveBlock translates a block so its centroid lands on target.
func moveBlock(block []*Shape, target Point) {
	delta := target.Sub(blockCentroid(block))
	for _, s := range block {
		s.Translate(delta.X, delta.Y)
	}
}
