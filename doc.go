// Package motif is a programmatic 2D pattern-design engine.
//
// # Overview
//
// motif is a fluent geometry kernel plus a family of generative systems
// (regular lattices, algorithmic tessellations, string-rewriting fractal
// curves) that produce polygon and polyline geometry for downstream
// rendering. Shapes are built from factories, subsets of their vertices,
// edges, or instances are selected through chainable views, and mutations
// apply only to the selection.
//
// # Quick Start
//
//	import "github.com/motif2d/motif"
//
//	// A six-pointed star: hexagon, every other vertex pushed outward.
//	pen := motif.PolygonPen(6, 40)
//	pen.Points().Every(2, 0).Expand(20)
//
//	col := motif.NewCollector()
//	col.Add(pen)
//	paths, err := col.Collect()
//
// # Architecture
//
// The engine is organized leaves-first:
//   - Geometry kernel: Point, Vertex, Segment, Shape, affine transforms,
//     containment, boolean union, boundary offset.
//   - Selection contexts: Pen, PointsView, LinesView, ShapesView.
//   - Instance systems: CloneSystem replication and NodeSet graph extraction.
//   - Generators: Grid lattices, tessellations (Truchet, trihexagonal,
//     Penrose), and L-system fractal curves.
//   - Rendering boundary: Collector gathers concrete shapes as move/line
//     command lists for an external serializer.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right
//
// # Concurrency
//
// The engine is single-threaded by design. A Shape and every view derived
// from it must be confined to one logical owner at a time; there is no
// internal locking.
package motif

// Version is the current version of the library.
const Version = "0.1.0"
