// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders game.
package config

import "github.com/vovakirdan/tui-invaders/internal/formation"

// InvadersConfig contains all configuration for the Space Invaders game.
type InvadersConfig struct {
	Playfield  InvadersPlayfield `yaml:"playfield"`
	Invader    InvadersInvader   `yaml:"invader"`
	Grid       InvadersGrid      `yaml:"grid"`
	Movement   InvadersMovement  `yaml:"movement"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// InvadersPlayfield defines the bounds the formation marches in.
type InvadersPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Floor  float64 `yaml:"floor"`
}

// InvadersInvader defines the size of one invader and the gaps between them.
type InvadersInvader struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	SpacingX float64 `yaml:"spacing_x"`
	SpacingY float64 `yaml:"spacing_y"`
}

// InvadersGrid defines the formation layout.
type InvadersGrid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// InvadersMovement defines the stepping parameters of the formation.
type InvadersMovement struct {
	StepX         float64 `yaml:"step_x"`
	StepY         float64 `yaml:"step_y"`
	Interval      float64 `yaml:"interval"`
	EdgeTolerance float64 `yaml:"edge_tolerance"`
}

// Formation converts the config into formation controller parameters.
func (c InvadersConfig) Formation() formation.Config {
	return formation.Config{
		Width:         c.Playfield.Width,
		Height:        c.Playfield.Height,
		InvaderSize:   formation.Size{W: c.Invader.Width, H: c.Invader.Height},
		Spacing:       formation.Size{W: c.Invader.SpacingX, H: c.Invader.SpacingY},
		Rows:          c.Grid.Rows,
		Cols:          c.Grid.Cols,
		StepX:         c.Movement.StepX,
		StepY:         c.Movement.StepY,
		Interval:      c.Movement.Interval,
		EdgeTolerance: c.Movement.EdgeTolerance,
	}
}

// Validate checks that the config describes a formation that can be built.
func (c InvadersConfig) Validate() error {
	return c.Formation().Validate()
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave" or "none"
	MaxAt int    `yaml:"max_at"` // Wave at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Speed added at max difficulty
	ThinningSpeedup float64 `yaml:"thinning_speedup"` // Speed added as the formation empties
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
