package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used when
// even the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Size: 20,
		},
		Speed: SpeedConfig{
			MoveEveryTicks: defaultMoveEveryTicks,
		},
		Difficulty: DifficultyNormal,
	}
}
