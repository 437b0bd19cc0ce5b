package motif

import (
	"fmt"
	"math"
)

// GridKind selects the lattice tiling.
type GridKind int

const (
	// GridSquare is an axis-aligned rows-by-cols square tiling.
	GridSquare GridKind = iota
	// GridHexPointy is a hexagon tiling with pointy-top cells.
	GridHexPointy
	// GridHexFlat is a hexagon tiling with flat-top cells.
	GridHexFlat
	// GridTriangle is an alternating up/down triangle tiling.
	GridTriangle
	// GridBrick is a row-offset rectangle tiling.
	GridBrick
)

// Grid builds rows-by-cols regular lattices and exposes both a node set
// usable for placement and cell polygons usable for tracing the lattice
// outline. Cells start ephemeral: they are scaffolding until traced.
//
// The node definition differs by kind, resolving the historical
// ambiguity one way: placement nodes are cell centers for square grids
// and lattice intersections for all other kinds. Intersections() always
// returns the shared lattice corners regardless of kind.
type Grid struct {
	kind        GridKind
	rows, cols  int
	cell        float64
	brickOffset float64
	cells       []*Shape
	placed      []*Shape
}

// NewGrid builds a lattice of the given kind. cellSize is the square
// cell side, the hexagon circumradius, or the triangle side length.
// Nonpositive dimensions are a configuration error, reported as a
// wrapped ErrBadConfig. Brick grids take the default half-cell row
// offset; use NewBrickGrid to control it.
func NewGrid(kind GridKind, rows, cols int, cellSize float64) (*Grid, error) {
	if err := validateGrid(rows, cols, cellSize); err != nil {
		return nil, err
	}
	g := &Grid{kind: kind, rows: rows, cols: cols, cell: cellSize, brickOffset: 0.5}
	g.build()
	return g, nil
}

// NewBrickGrid builds a brick lattice with an explicit row offset
// expressed as a fraction of the cell width.
func NewBrickGrid(rows, cols int, cellSize, brickOffset float64) (*Grid, error) {
	if err := validateGrid(rows, cols, cellSize); err != nil {
		return nil, err
	}
	g := &Grid{kind: GridBrick, rows: rows, cols: cols, cell: cellSize, brickOffset: brickOffset}
	g.build()
	return g, nil
}

func validateGrid(rows, cols int, cellSize float64) error {
	if rows < 1 || cols < 1 {
		return badConfigError("grid", fmt.Sprintf("rows and cols must be positive, got %dx%d", rows, cols))
	}
	if cellSize <= 0 {
		return badConfigError("grid", fmt.Sprintf("cell size must be positive, got %g", cellSize))
	}
	return nil
}

func (g *Grid) build() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.buildCell(r, c)
			cell.state = Ephemeral
			g.cells = append(g.cells, cell)
		}
	}
}

func (g *Grid) buildCell(r, c int) *Shape {
	size := g.cell
	switch g.kind {
	case GridHexPointy:
		// Pointy-top hexagons: columns step the hex width, odd rows
		// shift half a width.
		w := math.Sqrt(3) * size
		x := float64(c) * w
		if r%2 == 1 {
			x += w / 2
		}
		y := float64(r) * 1.5 * size
		hex := RegularPolygon(6, size)
		hex.Rotate(math.Pi/6, Point{})
		return hex.Translate(x, y)
	case GridHexFlat:
		w := math.Sqrt(3) * size
		y := float64(r) * w
		if c%2 == 1 {
			y += w / 2
		}
		x := float64(c) * 1.5 * size
		return RegularPolygon(6, size).Translate(x, y)
	case GridTriangle:
		// Triangles alternate pointing up and down on (row+col) parity;
		// columns step half a side.
		h := size * math.Sqrt(3) / 2
		x := float64(c) * size / 2
		y := float64(r) * h
		if (r+c)%2 == 0 {
			return FromPoints([]Point{
				{X: x + size/2, Y: y},
				{X: x + size, Y: y + h},
				{X: x, Y: y + h},
			}, true)
		}
		return FromPoints([]Point{
			{X: x, Y: y},
			{X: x + size, Y: y},
			{X: x + size/2, Y: y + h},
		}, true)
	case GridBrick:
		x := float64(c) * size
		if r%2 == 1 {
			x += g.brickOffset * size
		}
		y := float64(r) * size / 2
		return rectangleAt(Point{X: x, Y: y}, Point{X: x + size, Y: y + size/2})
	default: // GridSquare
		x := float64(c) * size
		y := float64(r) * size
		return rectangleAt(Point{X: x, Y: y}, Point{X: x + size, Y: y + size})
	}
}

// Cells returns the lattice cell polygons as a collection. Cells start
// ephemeral; call Trace on the collection to render the lattice outline.
func (g *Grid) Cells() *Collection {
	return NewCollection(g.cells...)
}

// Intersections returns the deduplicated lattice corner points shared
// between adjacent cells. A rows-by-cols square grid yields
// (rows+1)*(cols+1) of them.
func (g *Grid) Intersections() []Point {
	dedup := newPointDedup()
	for _, cell := range g.cells {
		for _, p := range cell.PointList() {
			dedup.add(p)
		}
	}
	return dedup.points
}

// Centers returns the centroid of every cell.
func (g *Grid) Centers() []Point {
	out := make([]Point, len(g.cells))
	for i, cell := range g.cells {
		out[i] = cell.Centroid()
	}
	return out
}

// NodePoints returns the grid's placement nodes: cell centers for square
// grids, lattice intersections for every other kind.
func (g *Grid) NodePoints() []Point {
	if g.kind == GridSquare {
		return g.Centers()
	}
	return g.Intersections()
}

// Shapes returns the cells and placements, satisfying ShapeSource.
func (g *Grid) Shapes() []*Shape {
	out := make([]*Shape, 0, len(g.cells)+len(g.placed))
	out = append(out, g.cells...)
	return append(out, g.placed...)
}

// Place stamps a clone of the template at every placement node.
// The template becomes ephemeral.
func (g *Grid) Place(template *Shape) *Grid {
	for _, n := range g.NodePoints() {
		stamp := template.Clone()
		stamp.state = Concrete
		stamp.MoveTo(n.X, n.Y)
		g.placed = append(g.placed, stamp)
	}
	template.MarkEphemeral()
	return g
}

// Mask removes every cell and placement whose centroid lies outside the
// boundary. The boundary becomes ephemeral.
func (g *Grid) Mask(boundary *Shape) *Grid {
	var keptCells []*Shape
	for _, cell := range g.cells {
		if boundary.ContainsPoint(cell.Centroid()) {
			keptCells = append(keptCells, cell)
		}
	}
	g.cells = keptCells
	var keptPlaced []*Shape
	for _, p := range g.placed {
		if boundary.ContainsPoint(p.Centroid()) {
			keptPlaced = append(keptPlaced, p)
		}
	}
	g.placed = keptPlaced
	boundary.MarkEphemeral()
	return g
}

// Rows returns the lattice edges that are more horizontal than vertical,
// as open two-point shapes. This is an extent comparison per edge, an
// approximation rather than a topological row classification.
func (g *Grid) Rows() *Collection {
	return g.edgesWhere(func(a, b Point) bool {
		return math.Abs(b.X-a.X) >= math.Abs(b.Y-a.Y)
	})
}

// Columns returns the lattice edges that are more vertical than
// horizontal, as open two-point shapes.
func (g *Grid) Columns() *Collection {
	return g.edgesWhere(func(a, b Point) bool {
		return math.Abs(b.Y-a.Y) > math.Abs(b.X-a.X)
	})
}

func (g *Grid) edgesWhere(keep func(a, b Point) bool) *Collection {
	seen := make(map[[2]dedupKey]bool)
	out := NewCollection()
	for _, cell := range g.cells {
		for _, seg := range cell.Segments() {
			a, b := seg.Start.Pos, seg.End.Pos
			if !keep(a, b) {
				continue
			}
			ka, kb := pointKey(a), pointKey(b)
			// Shared edges appear once regardless of direction.
			if seen[[2]dedupKey{ka, kb}] || seen[[2]dedupKey{kb, ka}] {
				continue
			}
			seen[[2]dedupKey{ka, kb}] = true
			out.Add(FromPoints([]Point{a, b}, false))
		}
	}
	return out
}

// Trace marks every cell concrete.
func (g *Grid) Trace() *Grid {
	for _, cell := range g.cells {
		cell.Trace()
	}
	return g
}

// dedupKey is a rounded-coordinate key so shared corners compare equal
// despite floating point noise.
type dedupKey struct {
	x, y int64
}

const dedupScale = 1e6

func pointKey(p Point) dedupKey {
	return dedupKey{
		x: int64(math.Round(p.X * dedupScale)),
		y: int64(math.Round(p.Y * dedupScale)),
	}
}

// pointDedup accumulates points, keeping the first occurrence of each
// rounded coordinate.
type pointDedup struct {
	seen   map[dedupKey]bool
	points []Point
}

func newPointDedup() *pointDedup {
	return &pointDedup{seen: make(map[dedupKey]bool)}
}

func (d *pointDedup) add(p Point) {
	k := pointKey(p)
	if d.seen[k] {
		return
	}
	d.seen[k] = true
	d.points = append(d.points, p)
}
