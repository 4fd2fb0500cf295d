package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Seconds converts a tick count into simulation time at this tick rate.
func (c RuntimeConfig) Seconds(ticks int) float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return float64(ticks) / float64(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Wave     int  // Current wave, starting at 1
	Steps    int  // Formation steps taken this run
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Whether the formation stepped on this tick
}

// RunSummary describes a finished run for the history store.
type RunSummary struct {
	GameID   string
	Waves    int     // Waves started, including the one in progress
	Steps    int     // Formation steps emitted
	Descents int     // Steps that moved the formation down
	Killed   int     // Invaders removed across all waves
	Seconds  float64 // Simulation time played
	Outcome  string  // "landed", "quit"
}
