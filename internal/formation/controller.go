// Package formation implements the movement state machine of an invader
// formation: a grid of units that marches sideways across a bounded playfield,
// steps down when a live member reaches a wall, and reverses.
//
// The package never samples a clock or logs. The host supplies the current
// time on every Tick and applies the returned positions to its own scene.
package formation

import "math"

// Invader is one member of the formation.
type Invader struct {
	ID    int // Row-major index, stable for the formation's lifetime
	Row   int // 1-based, row 1 is the bottom row
	Col   int // 1-based, col 1 is the leftmost column
	Pos   Vec // Lower-left corner
	Alive bool
}

// Extent is the bounding box of the live invaders.
type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns the horizontal span of the extent.
func (e Extent) Width() float64 {
	return e.MaxX - e.MinX
}

// degenerate reports whether a formation this wide cannot take a horizontal
// step without touching both walls.
func (e Extent) degenerate(width, epsilon float64) bool {
	return e.Width() >= width-2*epsilon
}

// Position is the new location of one invader after a step.
type Position struct {
	ID   int
	X, Y float64
}

// StepResult describes one emitted step.
type StepResult struct {
	Direction Direction  // Direction that was current for this step
	Delta     Vec        // Displacement applied to every live invader
	Positions []Position // Live invaders in row-major order
}

// Controller owns a formation and advances it on qualifying ticks.
// It is not safe for concurrent use; the host loop is its only caller.
type Controller struct {
	invaders []Invader
	alive    int

	width   float64
	height  float64
	size    Size
	stepX   float64
	stepY   float64
	epsilon float64

	interval  float64
	lastMove  float64
	direction Direction
}

// New lays out a rows x cols formation with every invader alive, moving Right.
// It returns a *ConfigError when cfg cannot produce a working formation.
func New(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	c := &Controller{
		invaders:  make([]Invader, 0, cfg.Rows*cfg.Cols),
		width:     cfg.Width,
		height:    cfg.Height,
		size:      cfg.InvaderSize,
		stepX:     cfg.StepX,
		stepY:     cfg.StepY,
		epsilon:   cfg.EdgeTolerance,
		interval:  cfg.Interval,
		direction: Right,
	}

	origin := cfg.origin()
	pitchX := cfg.InvaderSize.W + cfg.Spacing.W
	pitchY := cfg.InvaderSize.H + cfg.Spacing.H
	for row := 1; row <= cfg.Rows; row++ {
		y := origin.Y + float64(row-1)*pitchY
		for col := 1; col <= cfg.Cols; col++ {
			c.invaders = append(c.invaders, Invader{
				ID:    len(c.invaders),
				Row:   row,
				Col:   col,
				Pos:   Vec{X: origin.X + float64(col-1)*pitchX, Y: y},
				Alive: true,
			})
		}
	}
	c.alive = len(c.invaders)

	return c, nil
}

// Tick advances the formation if at least one interval has passed since the
// last step. It reports false, leaving all state untouched, when the interval
// has not elapsed or no invader is alive.
//
// The direction is re-evaluated against the extent measured before the move,
// so a wall touch produces a descend-only step on this tick and the first
// horizontal step in the opposite sense on the next one.
func (c *Controller) Tick(now float64) (StepResult, bool) {
	if now-c.lastMove < c.interval {
		return StepResult{}, false
	}
	if c.alive == 0 {
		return StepResult{}, false
	}

	c.determineDirection()
	delta := c.direction.Displacement(c.stepX, c.stepY)

	positions := make([]Position, 0, c.alive)
	for i := range c.invaders {
		inv := &c.invaders[i]
		if !inv.Alive {
			continue
		}
		inv.Pos = inv.Pos.Add(delta)
		positions = append(positions, Position{ID: inv.ID, X: inv.Pos.X, Y: inv.Pos.Y})
	}

	// Drift is not compensated: the next step is due interval after this tick.
	c.lastMove = now

	return StepResult{
		Direction: c.direction,
		Delta:     delta,
		Positions: positions,
	}, true
}

// determineDirection moves the state machine one transition forward using the
// current live extent. Tick is its only caller.
func (c *Controller) determineDirection() Direction {
	ext, ok := c.measure()
	if !ok {
		return c.direction
	}
	c.direction = nextDirection(c.direction, ext, c.width, c.epsilon)
	return c.direction
}

// measure computes the extent over live invaders.
func (c *Controller) measure() (Extent, bool) {
	ext := Extent{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	found := false
	for _, inv := range c.invaders {
		if !inv.Alive {
			continue
		}
		found = true
		ext.MinX = math.Min(ext.MinX, inv.Pos.X)
		ext.MaxX = math.Max(ext.MaxX, inv.Pos.X+c.size.W)
		ext.MinY = math.Min(ext.MinY, inv.Pos.Y)
		ext.MaxY = math.Max(ext.MaxY, inv.Pos.Y+c.size.H)
	}
	if !found {
		return Extent{}, false
	}
	return ext, true
}

// Kill marks an invader dead. It reports false for unknown or already dead ids.
func (c *Controller) Kill(id int) bool {
	if id < 0 || id >= len(c.invaders) || !c.invaders[id].Alive {
		return false
	}
	c.invaders[id].Alive = false
	c.alive--
	return true
}

// Resize replaces the playfield bounds. The live formation must lie inside
// the new width and height where it currently stands; otherwise the old
// bounds are kept. Idle is terminal: widening the playfield afterwards does
// not restart the march, since only Tick moves the direction.
func (c *Controller) Resize(width, height float64) error {
	if !(width > 0) {
		return configErrorf("width", "must be positive, got %g", width)
	}
	if !(height > 0) {
		return configErrorf("height", "must be positive, got %g", height)
	}
	ext, ok := c.measure()
	if ok {
		if width <= ext.Width() {
			return configErrorf("width", "playfield width %g must exceed formation width %g", width, ext.Width())
		}
		if height <= ext.MaxY-ext.MinY {
			return configErrorf("height", "playfield height %g must exceed formation height %g", height, ext.MaxY-ext.MinY)
		}
		if ext.MinX < 0 || ext.MaxX > width || ext.MinY < 0 || ext.MaxY > height {
			return configErrorf("bounds", "formation at x %g..%g, y %g..%g lies outside a %gx%g playfield",
				ext.MinX, ext.MaxX, ext.MinY, ext.MaxY, width, height)
		}
	}
	c.width = width
	c.height = height
	return nil
}

// Direction returns the current movement direction.
func (c *Controller) Direction() Direction {
	return c.direction
}

// Alive returns the number of live invaders.
func (c *Controller) Alive() int {
	return c.alive
}

// Len returns the formation size including dead invaders.
func (c *Controller) Len() int {
	return len(c.invaders)
}

// Invaders returns a copy of the formation in row-major order.
func (c *Controller) Invaders() []Invader {
	out := make([]Invader, len(c.invaders))
	copy(out, c.invaders)
	return out
}

// Extent returns the bounding box of the live invaders, or false if none are alive.
func (c *Controller) Extent() (Extent, bool) {
	return c.measure()
}

// LastMove returns the tick time of the most recent step.
func (c *Controller) LastMove() float64 {
	return c.lastMove
}

// Interval returns the seconds between steps.
func (c *Controller) Interval() float64 {
	return c.interval
}

// Bounds returns the playfield width and height.
func (c *Controller) Bounds() (width, height float64) {
	return c.width, c.height
}

// InvaderSize returns the size of a single invader.
func (c *Controller) InvaderSize() Size {
	return c.size
}
