package config

import "math"

// DifficultyManager calculates how fast the formation marches.
//
// The formation controller steps on a fixed interval of its own clock, so the
// game speeds the march up by advancing that clock faster than real time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a 1-based wave number.
func (d *DifficultyManager) Level(wave int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "wave" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 1 {
		return 1.0
	}

	progress := clampF(float64(wave-1)/(maxAt-1), 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the clock multiplier for the formation. killed is the
// fraction of the current wave already removed, in [0, 1].
func (d *DifficultyManager) Speed(wave int, killed float64) float64 {
	speed := 1.0 + d.Level(wave)*d.cfg.Scaling.SpeedMultiplier
	if d.cfg.Enabled {
		speed += clampF(killed, 0.0, 1.0) * d.cfg.Scaling.ThinningSpeedup
	}
	return speed
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
