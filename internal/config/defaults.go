package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default Space Invaders configuration.
// It mirrors defaults/invaders.yaml and is used when that cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: InvadersPlayfield{
			Width:  1024,
			Height: 768,
			Floor:  32,
		},
		Invader: InvadersInvader{
			Width:    48,
			Height:   32,
			SpacingX: 24,
			SpacingY: 32,
		},
		Grid: InvadersGrid{
			Rows: 5,
			Cols: 10,
		},
		Movement: InvadersMovement{
			StepX:         10,
			StepY:         10,
			Interval:      1.0,
			EdgeTolerance: 1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
				ThinningSpeedup: 3.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
