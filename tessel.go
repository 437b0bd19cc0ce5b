package motif

import (
	"fmt"
	"math"
)

// Tessellation generators. All four algorithms share one output
// contract: a node set, an edge set, and a tile set over a bounding
// rectangle. Given the same seed and parameters the output is
// byte-identical across runs.
//
// Tiles start ephemeral like any other system-generated scaffold; trace
// them (or collect the edges) to render.

// Tessellation is the shared output of the tessellation generators.
type Tessellation struct {
	nodes []Point
	edges [][2]Point
	tiles []*Shape
}

// Nodes returns the deduplicated node positions.
func (t *Tessellation) Nodes() []Point { return t.nodes }

// NodePoints satisfies NodeSource, so tessellation output feeds the
// placement context like any other node source.
func (t *Tessellation) NodePoints() []Point { return t.nodes }

// Edges returns the undirected edge set.
func (t *Tessellation) Edges() [][2]Point { return t.edges }

// EdgeShapes returns the edges as concrete open two-point shapes.
func (t *Tessellation) EdgeShapes() *Collection {
	out := NewCollection()
	for _, e := range t.edges {
		out.Add(FromPoints([]Point{e[0], e[1]}, false))
	}
	return out
}

// Tiles returns the tile shapes as a collection. Tiles start ephemeral;
// trace the collection to render them.
func (t *Tessellation) Tiles() *Collection {
	return NewCollection(t.tiles...)
}

// Shapes satisfies the ShapeSource contract.
func (t *Tessellation) Shapes() []*Shape { return t.tiles }

// addTile appends a tile in the ephemeral scaffold state.
func (t *Tessellation) addTile(s *Shape) {
	s.state = Ephemeral
	t.tiles = append(t.tiles, s)
}

// proximityEdges fills the edge set from the node set using the sampled
// nearest-neighbor threshold, for generators without explicit topology.
func (t *Tessellation) proximityEdges() {
	t.edges = NewNodeSet(t.nodes).Edges()
}

// TruchetMotif selects the per-tile figure of a Truchet tiling.
type TruchetMotif int

const (
	// TruchetQuarterCircles draws a pair of quarter-circle arcs joining
	// edge midpoints (approximated polygonally).
	TruchetQuarterCircles TruchetMotif = iota
	// TruchetDiagonal draws a strip across the tile diagonal.
	TruchetDiagonal
	// TruchetTriangle fills half the tile with a right triangle.
	TruchetTriangle
)

// Truchet tiles a square grid over bounds at tileSize. Each tile carries
// the chosen motif rotated by a multiple of 90 degrees drawn from a
// seeded linear congruential generator, so the same seed always
// reproduces the same pattern. A nonpositive tile size is a
// configuration error, reported as a wrapped ErrBadConfig.
func Truchet(bounds Rect, tileSize float64, seed int64, motif TruchetMotif) (*Tessellation, error) {
	if tileSize <= 0 {
		return nil, badConfigError("truchet", fmt.Sprintf("tile size must be positive, got %g", tileSize))
	}
	t := &Tessellation{}
	rng := newLCG(seed)
	cols := int(math.Ceil(bounds.Width() / tileSize))
	rows := int(math.Ceil(bounds.Height() / tileSize))
	dedup := newPointDedup()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			origin := Point{X: bounds.Min.X + float64(c)*tileSize, Y: bounds.Min.Y + float64(r)*tileSize}
			rot := float64(rng.intn(4)) * math.Pi / 2
			center := origin.Add(Point{X: tileSize / 2, Y: tileSize / 2})
			for _, s := range truchetMotifShapes(motif, origin, tileSize) {
				s.Rotate(rot, center)
				t.addTile(s)
			}
			dedup.add(origin)
			dedup.add(origin.Add(Point{X: tileSize}))
			dedup.add(origin.Add(Point{Y: tileSize}))
			dedup.add(origin.Add(Point{X: tileSize, Y: tileSize}))
		}
	}
	t.nodes = dedup.points
	t.proximityEdges()
	return t, nil
}

// truchetMotifShapes builds the motif geometry for one unrotated tile.
func truchetMotifShapes(motif TruchetMotif, origin Point, size float64) []*Shape {
	switch motif {
	case TruchetDiagonal:
		// A strip across the anti-diagonal; a quarter turn flips it to
		// the other diagonal.
		return []*Shape{FromPoints([]Point{
			origin.Add(Point{Y: size * 0.75}),
			origin.Add(Point{X: size * 0.75}),
			origin.Add(Point{X: size, Y: size * 0.25}),
			origin.Add(Point{X: size * 0.25, Y: size}),
		}, true)}
	case TruchetTriangle:
		return []*Shape{FromPoints([]Point{
			origin,
			origin.Add(Point{X: size}),
			origin.Add(Point{Y: size}),
		}, true)}
	default: // TruchetQuarterCircles
		return []*Shape{
			quarterArc(origin, size/2, 0, math.Pi/2),
			quarterArc(origin.Add(Point{X: size, Y: size}), size/2, math.Pi, 3*math.Pi/2),
		}
	}
}

// quarterArc approximates a quarter circle with 8 chords as an open
// polyline.
func quarterArc(center Point, radius, from, to float64) *Shape {
	const chords = 8
	pts := make([]Point, chords+1)
	for i := 0; i <= chords; i++ {
		a := from + (to-from)*float64(i)/chords
		pts[i] = center.Add(Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	return FromPoints(pts, false)
}

// Trihexagonal generates the hexagon-plus-triangle tiling over bounds.
// Hexagons sit on a triangular lattice with the given spacing between
// neighboring hexagon centers; one outward-pointing triangle fills each
// hex-edge gap. Shared corners are deduplicated through a
// rounded-coordinate key so each vertex is represented once. A
// nonpositive spacing is a configuration error, reported as a wrapped
// ErrBadConfig.
func Trihexagonal(bounds Rect, spacing float64) (*Tessellation, error) {
	if spacing <= 0 {
		return nil, badConfigError("trihexagonal", fmt.Sprintf("spacing must be positive, got %g", spacing))
	}
	t := &Tessellation{}
	rowStep := spacing * math.Sqrt(3) / 2
	rows := int(math.Ceil(bounds.Height()/rowStep)) + 1
	cols := int(math.Ceil(bounds.Width()/spacing)) + 1

	dedup := newPointDedup()
	triSeen := make(map[dedupKey]bool)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			center := Point{
				X: bounds.Min.X + float64(c)*spacing + float64(r%2)*spacing/2,
				Y: bounds.Min.Y + float64(r)*rowStep,
			}
			hex := RegularPolygon(6, spacing/2)
			hex.Translate(center.X, center.Y)
			t.addTile(hex)
			verts := hex.PointList()
			for _, p := range verts {
				dedup.add(p)
			}
			// One gap triangle per hexagon edge, completed to the
			// parallelogram corner. Triangles are shared between
			// neighboring hexagons; keep the first occurrence.
			for i := range verts {
				a := verts[i]
				b := verts[(i+1)%len(verts)]
				apex := a.Add(b).Sub(center)
				tri := FromPoints([]Point{a, b, apex}, true)
				key := pointKey(tri.Centroid())
				if triSeen[key] {
					continue
				}
				triSeen[key] = true
				t.addTile(tri)
				dedup.add(apex)
			}
		}
	}
	t.nodes = dedup.points
	t.proximityEdges()
	return t, nil
}

// Penrose triangle kinds in the Robinson substitution.
const (
	penroseRed  = iota // 36-degree apex half-kite
	penroseBlue        // 108-degree apex half-dart
)

// penroseTri is one Robinson triangle, apex first.
type penroseTri struct {
	kind    int
	a, b, c Point
}

// goldenRatio is the subdivision constant for Penrose deflation.
var goldenRatio = (1 + math.Sqrt(5)) / 2

// Penrose generates a Penrose tiling over bounds by deflation: a "sun"
// of 10 Robinson triangles fanned around the bounds center, each
// iteration subdividing every triangle by the golden ratio per the
// standard substitution rules. Triangles whose centroid falls outside
// the bounds are discarded, and the surviving triangle sides are
// deduplicated into the edge set directly (no proximity heuristic).
func Penrose(bounds Rect, iterations int) *Tessellation {
	t := &Tessellation{}
	center := bounds.Center()
	radius := center.Distance(bounds.Max) * 1.2

	// Sun: 10 red triangles fanned around the center, alternating
	// mirrored so neighbors share edges.
	var tris []penroseTri
	for i := 0; i < 10; i++ {
		theta1 := float64(2*i-1) * math.Pi / 10
		theta2 := float64(2*i+1) * math.Pi / 10
		b := center.Add(Point{X: radius * math.Cos(theta1), Y: radius * math.Sin(theta1)})
		c := center.Add(Point{X: radius * math.Cos(theta2), Y: radius * math.Sin(theta2)})
		if i%2 == 0 {
			b, c = c, b
		}
		tris = append(tris, penroseTri{kind: penroseRed, a: center, b: b, c: c})
	}

	for i := 0; i < iterations; i++ {
		var next []penroseTri
		for _, tri := range tris {
			next = append(next, subdividePenrose(tri)...)
		}
		tris = next
		Logger().Debug("penrose deflation", "iteration", i+1, "triangles", len(tris))
	}

	dedup := newPointDedup()
	edgeSeen := make(map[[2]dedupKey]bool)
	for _, tri := range tris {
		centroid := tri.a.Add(tri.b).Add(tri.c).Div(3)
		if !bounds.ContainsPoint(centroid) {
			continue
		}
		shape := FromPoints([]Point{tri.a, tri.b, tri.c}, true)
		t.addTile(shape)
		corners := []Point{tri.a, tri.b, tri.c}
		for i := range corners {
			dedup.add(corners[i])
			p := corners[i]
			q := corners[(i+1)%3]
			ka, kb := pointKey(p), pointKey(q)
			if edgeSeen[[2]dedupKey{ka, kb}] || edgeSeen[[2]dedupKey{kb, ka}] {
				continue
			}
			edgeSeen[[2]dedupKey{ka, kb}] = true
			t.edges = append(t.edges, [2]Point{p, q})
		}
	}
	t.nodes = dedup.points
	return t
}

// subdividePenrose applies the Robinson substitution rules: a red
// (36-degree apex) triangle splits into one red and one blue; a blue
// (108-degree apex) splits into two blue and one red.
func subdividePenrose(t penroseTri) []penroseTri {
	if t.kind == penroseRed {
		p := t.a.Add(t.b.Sub(t.a).Div(goldenRatio))
		return []penroseTri{
			{kind: penroseRed, a: t.c, b: p, c: t.b},
			{kind: penroseBlue, a: p, b: t.c, c: t.a},
		}
	}
	q := t.b.Add(t.a.Sub(t.b).Div(goldenRatio))
	r := t.b.Add(t.c.Sub(t.b).Div(goldenRatio))
	return []penroseTri{
		{kind: penroseBlue, a: r, b: t.c, c: t.a},
		{kind: penroseBlue, a: q, b: r, c: t.b},
		{kind: penroseRed, a: r, b: q, c: t.a},
	}
}

// CustomTiling repeats a caller-supplied unit shape on a lattice of the
// given kind covering bounds, extracting the unit's vertices at each
// placement into the node set. The unit becomes ephemeral. A nil unit
// or nonpositive spacing is a configuration error, reported as a
// wrapped ErrBadConfig.
func CustomTiling(bounds Rect, unit *Shape, kind GridKind, spacing float64) (*Tessellation, error) {
	if unit == nil {
		return nil, badConfigError("custom tiling", "unit shape is required")
	}
	if spacing <= 0 {
		return nil, badConfigError("custom tiling", fmt.Sprintf("spacing must be positive, got %g", spacing))
	}
	t := &Tessellation{}
	rows := int(math.Ceil(bounds.Height()/spacing)) + 1
	cols := int(math.Ceil(bounds.Width()/spacing)) + 1
	grid, err := NewGrid(kind, rows, cols, spacing)
	if err != nil {
		return nil, err
	}
	dedup := newPointDedup()
	for _, n := range grid.NodePoints() {
		pos := n.Add(bounds.Min)
		if !bounds.ContainsPoint(pos) {
			continue
		}
		stamp := unit.Clone()
		stamp.MoveTo(pos.X, pos.Y)
		t.addTile(stamp)
		for _, p := range stamp.PointList() {
			dedup.add(p)
		}
	}
	unit.MarkEphemeral()
	t.nodes = dedup.points
	t.proximityEdges()
	return t, nil
}
