package motif

// Rendering boundary. The engine does not own any output format; it
// hands each concrete shape to the collaborator as an ordered list of
// move/line commands plus a winding tag, optional color, and optional
// group tag.

// PathCommand is a single boundary command.
type PathCommand interface {
	isPathCommand()
}

// MoveCmd moves to a point without drawing. Each shape emits exactly one,
// for its first vertex.
type MoveCmd struct {
	Point Point
}

func (MoveCmd) isPathCommand() {}

// LineCmd draws a line to a point.
type LineCmd struct {
	Point Point
}

func (LineCmd) isPathCommand() {}

// PathData is the render-ready boundary of one concrete shape. Closed
// shapes carry an implicit close after the final line.
type PathData struct {
	Commands []PathCommand
	Closed   bool
	Winding  Winding
	Color    *Color
	Group    string
}

// pathData converts a shape's boundary to commands, rejecting non-finite
// coordinates before they can reach a serializer.
func pathData(s *Shape) (PathData, error) {
	if err := s.finiteCheck("collect"); err != nil {
		return PathData{}, err
	}
	pd := PathData{
		Closed:  s.Closed(),
		Winding: s.Winding(),
		Group:   s.Group(),
	}
	if c, ok := s.Color(); ok {
		pd.Color = &c
	}
	for i, v := range s.Vertices() {
		if i == 0 {
			pd.Commands = append(pd.Commands, MoveCmd{Point: v.Pos})
		} else {
			pd.Commands = append(pd.Commands, LineCmd{Point: v.Pos})
		}
	}
	return pd, nil
}

// ShapeSource is anything that owns shapes the collector can gather:
// pens, collections, clone systems, grids, tessellations.
type ShapeSource interface {
	Shapes() []*Shape
}

// CollectorOption configures a Collector during creation.
type CollectorOption func(*Collector)

// WithColorFunc sets a pull-based color generator, called once per
// collected shape that has no explicit color. The collector never
// inspects the generator's internal state.
func WithColorFunc(f ColorFunc) CollectorOption {
	return func(c *Collector) { c.colorFn = f }
}

// WithFixedColor colors every uncolored collected shape the same.
func WithFixedColor(col Color) CollectorOption {
	return func(c *Collector) { c.colorFn = Fixed(col) }
}

// Collector gathers concrete shapes from registered sources and emits
// their render-ready boundaries. The auto-color counter lives on the
// collector instance, never in package state, so two collectors never
// interleave their palettes.
type Collector struct {
	sources []ShapeSource
	colorFn ColorFunc
	autoIdx int
}

// NewCollector creates a collector.
func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add registers sources to gather from.
func (c *Collector) Add(srcs ...ShapeSource) *Collector {
	c.sources = append(c.sources, srcs...)
	return c
}

// ColorsPulled returns how many colors have been pulled from the
// generator so far.
func (c *Collector) ColorsPulled() int { return c.autoIdx }

// Collect walks every source and returns path data for each concrete
// shape, in registration order. Ephemeral shapes are skipped: the state
// flag is the single predicate checked here. A shape with non-finite
// coordinates aborts collection with an error wrapping ErrNonFinite.
func (c *Collector) Collect() ([]PathData, error) {
	var out []PathData
	for _, src := range c.sources {
		for _, s := range src.Shapes() {
			if s.State() != Concrete {
				continue
			}
			pd, err := pathData(s)
			if err != nil {
				return nil, err
			}
			if pd.Color == nil && c.colorFn != nil {
				col := c.colorFn()
				pd.Color = &col
				c.autoIdx++
			}
			out = append(out, pd)
		}
	}
	return out, nil
}
