package formation

import "math"

// DefaultEdgeTolerance is the wall distance at which a formation turns.
// It absorbs rounding at the playfield edge.
const DefaultEdgeTolerance = 1.0

// Vec is a point or displacement in playfield units. Y grows upwards.
type Vec struct {
	X, Y float64
}

// Add returns v translated by d.
func (v Vec) Add(d Vec) Vec {
	return Vec{X: v.X + d.X, Y: v.Y + d.Y}
}

// Size is a width/height pair in playfield units.
type Size struct {
	W, H float64
}

// Config describes the playfield and the formation laid out on it.
type Config struct {
	Width  float64 // Playfield width
	Height float64 // Playfield height

	InvaderSize Size
	// Spacing is the gap between neighbouring invaders. Only the zero Size
	// selects the default of half an invader horizontally and one invader
	// vertically; a single zero axis is kept as a zero gap.
	Spacing Size
	// Origin is the lower-left corner of the bottom-left invader. Nil places the
	// formation a third of the way across and halfway up, pulled back to fit.
	Origin *Vec

	Rows int
	Cols int

	StepX    float64 // Horizontal distance per step
	StepY    float64 // Descent per descend step
	Interval float64 // Seconds between steps

	// EdgeTolerance is ε in the wall checks. Zero selects DefaultEdgeTolerance.
	EdgeTolerance float64
}

func (c Config) withDefaults() Config {
	if c.Spacing == (Size{}) {
		c.Spacing = Size{W: c.InvaderSize.W / 2, H: c.InvaderSize.H}
	}
	if c.EdgeTolerance == 0 {
		c.EdgeTolerance = DefaultEdgeTolerance
	}
	return c
}

// GridSize returns the width and height covered by the full formation.
func (c Config) GridSize() Size {
	c = c.withDefaults()
	return Size{
		W: float64(c.Cols)*c.InvaderSize.W + float64(c.Cols-1)*c.Spacing.W,
		H: float64(c.Rows)*c.InvaderSize.H + float64(c.Rows-1)*c.Spacing.H,
	}
}

func (c Config) origin() Vec {
	if c.Origin != nil {
		return *c.Origin
	}
	grid := c.GridSize()
	return Vec{
		X: math.Min(c.Width/3, c.Width-grid.W),
		Y: math.Min(c.Height/2, c.Height-grid.H),
	}
}

// Validate reports the first parameter that makes c unusable.
func (c Config) Validate() error {
	c = c.withDefaults()

	switch {
	case c.Rows <= 0:
		return configErrorf("rows", "must be positive, got %d", c.Rows)
	case c.Cols <= 0:
		return configErrorf("cols", "must be positive, got %d", c.Cols)
	case !(c.Interval > 0):
		return configErrorf("interval", "must be positive, got %g", c.Interval)
	case !(c.InvaderSize.W > 0) || !(c.InvaderSize.H > 0):
		return configErrorf("invader size", "must be positive, got %gx%g", c.InvaderSize.W, c.InvaderSize.H)
	case c.Spacing.W < 0 || c.Spacing.H < 0:
		return configErrorf("spacing", "must not be negative, got %gx%g", c.Spacing.W, c.Spacing.H)
	case !(c.StepX >= 0) || !(c.StepY >= 0):
		return configErrorf("step", "must not be negative, got %g/%g", c.StepX, c.StepY)
	case c.EdgeTolerance < 0:
		return configErrorf("edge tolerance", "must not be negative, got %g", c.EdgeTolerance)
	}

	grid := c.GridSize()
	if !(c.Width > grid.W) {
		return configErrorf("width", "playfield width %g must exceed formation width %g", c.Width, grid.W)
	}
	if !(c.Height > grid.H) {
		return configErrorf("height", "playfield height %g must exceed formation height %g", c.Height, grid.H)
	}

	o := c.origin()
	if o.X < 0 || o.Y < 0 || o.X+grid.W > c.Width || o.Y+grid.H > c.Height {
		return configErrorf("origin", "formation at (%g, %g) does not fit a %gx%g playfield", o.X, o.Y, c.Width, c.Height)
	}
	return nil
}
