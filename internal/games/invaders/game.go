// Package invaders hosts the invader formation in the arcade platform.
// The formation controller owns all movement; this package feeds it a
// simulation clock, stands in for the collision system when the player
// fires, and draws the result.
package invaders

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/formation"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

const gameID = "invaders"

// Run outcomes recorded in the history store.
const (
	OutcomeLanded = "landed"
	OutcomeQuit   = "quit"
	OutcomeBroken = "invalid-config"
)

// Game implements the Space Invaders formation host.
type Game struct {
	ctrl       *formation.Controller
	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger
	setupErr   error

	clock      float64 // Formation clock in seconds, runs faster than real time as difficulty rises
	tickCount  int     // Simulation ticks since start
	wave       int
	waveKilled int
	direction  formation.Direction

	steps    int
	descents int
	killed   int
	gameOver bool
	paused   bool
	outcome  string
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created after the call.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l.WithPrefix(gameID)
}

// New creates a new Space Invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = logger

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		g.logger.Warn("falling back to default config", "path", configPath, "error", err)
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.tickCount = 0
	g.wave = 0
	g.steps = 0
	g.descents = 0
	g.killed = 0
	g.gameOver = false
	g.paused = false
	g.outcome = ""
	g.setupErr = nil

	g.startWave()
}

// startWave replaces the formation with a fresh one.
func (g *Game) startWave() {
	ctrl, err := formation.New(g.cfg.Formation())
	if err != nil {
		// Presets can scale a valid file into an invalid one.
		g.logger.Error("cannot build formation", "error", err)
		g.setupErr = err
		g.ctrl = nil
		g.gameOver = true
		g.outcome = OutcomeBroken
		return
	}

	g.ctrl = ctrl
	g.wave++
	g.waveKilled = 0
	g.clock = 0
	g.direction = ctrl.Direction()
	g.logger.Info("wave started", "wave", g.wave, "invaders", ctrl.Len(), "interval", ctrl.Interval())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if in.Has(core.ActionFire) {
		g.cull()
	}

	killedFraction := float64(g.waveKilled) / float64(g.ctrl.Len())
	g.clock += g.runtime.Seconds(1) * g.difficulty.Speed(g.wave, killedFraction)

	res, moved := g.ctrl.Tick(g.clock)
	if moved {
		g.steps++
		if res.Direction.IsDescend() {
			g.descents++
		}
		if res.Direction != g.direction {
			g.logger.Debug("direction changed", "from", g.direction, "to", res.Direction,
				"wave", g.wave, "at", g.ctrl.LastMove())
			g.direction = res.Direction
		}
		g.checkLanding()
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// cull removes one random live invader, the way a hit from the collision
// system would, and starts the next wave once the formation is empty.
func (g *Game) cull() {
	var live []int
	for _, inv := range g.ctrl.Invaders() {
		if inv.Alive {
			live = append(live, inv.ID)
		}
	}
	if len(live) == 0 {
		return
	}

	id := live[g.rng.Intn(len(live))]
	if !g.ctrl.Kill(id) {
		return
	}
	g.killed++
	g.waveKilled++

	if g.ctrl.Alive() == 0 {
		g.logger.Info("wave cleared", "wave", g.wave, "steps", g.steps)
		g.startWave()
	}
}

// checkLanding ends the run once the lowest live row reaches the floor.
func (g *Game) checkLanding() {
	ext, ok := g.ctrl.Extent()
	if !ok || ext.MinY > g.cfg.Playfield.Floor {
		return
	}
	g.gameOver = true
	g.outcome = OutcomeLanded
	g.logger.Info("formation landed", "wave", g.wave, "steps", g.steps, "descents", g.descents)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Wave:     g.wave,
		Steps:    g.steps,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// RunSummary describes the run so far.
func (g *Game) RunSummary() core.RunSummary {
	outcome := g.outcome
	if outcome == "" {
		outcome = OutcomeQuit
	}
	return core.RunSummary{
		GameID:   gameID,
		Waves:    g.wave,
		Steps:    g.steps,
		Descents: g.descents,
		Killed:   g.killed,
		Seconds:  g.runtime.Seconds(g.tickCount),
		Outcome:  outcome,
	}
}

// Register the game with the registry
func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
