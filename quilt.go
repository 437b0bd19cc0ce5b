package motif

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Quilt-block template catalog: a named lookup returning a small
// fixed-grid cell-type layout. Blocks expand into plain shapes on a
// square lattice and are consumed exactly like user geometry.

// CellKind is the patch type of one block cell.
type CellKind int

const (
	// CellSquare is a full-cell square patch.
	CellSquare CellKind = iota
	// CellHalfSquareTriangle is a half-square triangle patch.
	CellHalfSquareTriangle
	// CellFlyingGeese is a goose triangle with two sky corners.
	CellFlyingGeese
)

// BlockCell is one cell of a block layout: a patch kind and a rotation
// of 0, 90, 180, or 270 degrees.
type BlockCell struct {
	Kind     CellKind
	Rotation int
}

// Block is a named size-by-size quilt block layout, cells in row-major
// order.
type Block struct {
	Name  string
	Size  int
	Cells []BlockCell
}

// blockCatalog is the built-in template table.
var blockCatalog = map[string]Block{
	"pinwheel": {
		Name: "pinwheel",
		Size: 2,
		Cells: []BlockCell{
			{Kind: CellHalfSquareTriangle, Rotation: 0},
			{Kind: CellHalfSquareTriangle, Rotation: 90},
			{Kind: CellHalfSquareTriangle, Rotation: 270},
			{Kind: CellHalfSquareTriangle, Rotation: 180},
		},
	},
	"broken-dishes": {
		Name: "broken-dishes",
		Size: 2,
		Cells: []BlockCell{
			{Kind: CellHalfSquareTriangle, Rotation: 0},
			{Kind: CellHalfSquareTriangle, Rotation: 90},
			{Kind: CellHalfSquareTriangle, Rotation: 90},
			{Kind: CellHalfSquareTriangle, Rotation: 0},
		},
	},
	"ohio-star": {
		Name: "ohio-star",
		Size: 3,
		Cells: []BlockCell{
			{Kind: CellSquare}, {Kind: CellFlyingGeese, Rotation: 180}, {Kind: CellSquare},
			{Kind: CellFlyingGeese, Rotation: 90}, {Kind: CellSquare}, {Kind: CellFlyingGeese, Rotation: 270},
			{Kind: CellSquare}, {Kind: CellFlyingGeese, Rotation: 0}, {Kind: CellSquare},
		},
	},
	"flying-geese-strip": {
		Name: "flying-geese-strip",
		Size: 2,
		Cells: []BlockCell{
			{Kind: CellFlyingGeese, Rotation: 0},
			{Kind: CellFlyingGeese, Rotation: 0},
			{Kind: CellFlyingGeese, Rotation: 0},
			{Kind: CellFlyingGeese, Rotation: 0},
		},
	},
}

// BlockNames returns the catalog's valid names, sorted.
func BlockNames() []string {
	names := make([]string, 0, len(blockCatalog))
	for name := range blockCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupBlock returns the named block layout. Unknown names fail
// immediately with an error listing the valid names.
func LookupBlock(name string) (Block, error) {
	b, ok := blockCatalog[name]
	if !ok {
		return Block{}, fmt.Errorf("%w: %q (valid names: %s)",
			ErrUnknownBlock, name, strings.Join(BlockNames(), ", "))
	}
	return b, nil
}

// Expand turns the block into concrete patch shapes on a square lattice
// with the given cell size, anchored at the origin. Each patch carries a
// group tag naming its kind so the caller can style patch classes.
func (b Block) Expand(cellSize float64) *Collection {
	out := NewCollection()
	for i, cell := range b.Cells {
		r := i / b.Size
		c := i % b.Size
		origin := Point{X: float64(c) * cellSize, Y: float64(r) * cellSize}
		center := origin.Add(Point{X: cellSize / 2, Y: cellSize / 2})
		rot := float64(cell.Rotation) * math.Pi / 180
		for _, patch := range cellPatches(cell.Kind, origin, cellSize) {
			if rot != 0 {
				patch.Rotate(rot, center)
			}
			out.Add(patch)
		}
	}
	return out
}

// cellPatches builds the unrotated patch geometry for one cell.
func cellPatches(kind CellKind, origin Point, s float64) []*Shape {
	switch kind {
	case CellHalfSquareTriangle:
		tri := FromPoints([]Point{
			origin,
			origin.Add(Point{X: s}),
			origin.Add(Point{Y: s}),
		}, true)
		tri.SetGroup("half-square-triangle")
		return []*Shape{tri}
	case CellFlyingGeese:
		goose := FromPoints([]Point{
			origin.Add(Point{Y: s}),
			origin.Add(Point{X: s / 2}),
			origin.Add(Point{X: s, Y: s}),
		}, true)
		goose.SetGroup("goose")
		sky1 := FromPoints([]Point{
			origin,
			origin.Add(Point{X: s / 2}),
			origin.Add(Point{Y: s}),
		}, true)
		sky1.SetGroup("sky")
		sky2 := FromPoints([]Point{
			origin.Add(Point{X: s / 2}),
			origin.Add(Point{X: s}),
			origin.Add(Point{X: s, Y: s}),
		}, true)
		sky2.SetGroup("sky")
		return []*Shape{goose, sky1, sky2}
	default:
		patch := rectangleAt(origin, origin.Add(Point{X: s, Y: s}))
		patch.SetGroup("square")
		return []*Shape{patch}
	}
}
