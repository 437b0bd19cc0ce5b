package motif

import "math"

// NodeSource is anything that can expose a set of point positions for
// placement: a shape's vertices, lattice intersections, tessellation
// output, or an L-system walk.
type NodeSource interface {
	NodePoints() []Point
}

// NodePoints exposes a shape's vertex positions as placement nodes.
func (s *Shape) NodePoints() []Point { return s.PointList() }

// NodeSet is the vertex/edge-graph extraction system: a bag of node
// positions with placement, masking, and proximity-based edge
// extraction. It has no explicit mesh topology; adjacency is inferred
// from distance.
type NodeSet struct {
	nodes  []Point
	placed []*Shape
}

// NewNodeSet creates a node set over explicit positions.
func NewNodeSet(pts []Point) *NodeSet {
	nodes := make([]Point, len(pts))
	copy(nodes, pts)
	return &NodeSet{nodes: nodes}
}

// NodesOf extracts a node set from any node source.
func NodesOf(src NodeSource) *NodeSet {
	return NewNodeSet(src.NodePoints())
}

// Points returns the node positions.
func (ns *NodeSet) Points() []Point { return ns.nodes }

// Count returns the number of nodes.
func (ns *NodeSet) Count() int { return len(ns.nodes) }

// Shapes returns the stamped placements, satisfying the ShapeSource
// contract.
func (ns *NodeSet) Shapes() []*Shape { return ns.placed }

// Place stamps a clone of the template at every node. The template
// becomes ephemeral; stamps are concrete and owned by the set.
func (ns *NodeSet) Place(template *Shape) *NodeSet {
	for _, n := range ns.nodes {
		stamp := template.Clone()
		stamp.state = Concrete
		stamp.MoveTo(n.X, n.Y)
		ns.placed = append(ns.placed, stamp)
	}
	template.MarkEphemeral()
	return ns
}

// Mask removes every node and placement whose position (or centroid)
// lies outside the boundary. The boundary becomes ephemeral.
func (ns *NodeSet) Mask(boundary *Shape) *NodeSet {
	var keptNodes []Point
	for _, n := range ns.nodes {
		if boundary.ContainsPoint(n) {
			keptNodes = append(keptNodes, n)
		}
	}
	ns.nodes = keptNodes
	var keptPlaced []*Shape
	for _, p := range ns.placed {
		if boundary.ContainsPoint(p.Centroid()) {
			keptPlaced = append(keptPlaced, p)
		}
	}
	ns.placed = keptPlaced
	boundary.MarkEphemeral()
	return ns
}

// Edges connects adjacent nodes without an explicit mesh topology: two
// nodes are joined when their distance falls within the proximity
// threshold derived from the sampled average nearest-neighbor distance
// times 1.5. Each undirected pair appears once.
func (ns *NodeSet) Edges() [][2]Point {
	threshold := ns.proximityThreshold()
	if threshold <= 0 {
		return nil
	}
	var out [][2]Point
	for i := 0; i < len(ns.nodes); i++ {
		for j := i + 1; j < len(ns.nodes); j++ {
			if ns.nodes[i].Distance(ns.nodes[j]) <= threshold {
				out = append(out, [2]Point{ns.nodes[i], ns.nodes[j]})
			}
		}
	}
	return out
}

// EdgeShapes returns the proximity edges as open two-vertex shapes.
func (ns *NodeSet) EdgeShapes() *Collection {
	out := NewCollection()
	for _, e := range ns.Edges() {
		out.Add(FromPoints([]Point{e[0], e[1]}, false))
	}
	return out
}

// proximityThreshold samples the nearest-neighbor distance over up to 10
// nodes and returns the average times 1.5.
func (ns *NodeSet) proximityThreshold() float64 {
	n := len(ns.nodes)
	if n < 2 {
		return 0
	}
	sample := n
	if sample > 10 {
		sample = 10
	}
	var sum float64
	for i := 0; i < sample; i++ {
		nearest := math.MaxFloat64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if d := ns.nodes[i].Distance(ns.nodes[j]); d < nearest {
				nearest = d
			}
		}
		sum += nearest
	}
	return sum / float64(sample) * 1.5
}
