// Package config provides YAML-based configuration loading and
// difficulty presets for the snake game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Grid size limits. Below the minimum the starting snake and its food
// do not fit; above the maximum the field stops fitting in a terminal.
const (
	MinGridSize = 4
	MaxGridSize = 64
)

const defaultMoveEveryTicks = 6

// Config contains all gameplay configuration.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Speed      SpeedConfig      `yaml:"speed"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	Size int `yaml:"size"` // Side length of the square field
}

// SpeedConfig defines the movement cadence. The interval is fixed for a
// whole run; the snake never speeds up as it grows.
type SpeedConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a difficulty name from a flag or config file.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// MoveEveryTicks returns the move interval for a difficulty preset.
func (p DifficultyPreset) MoveEveryTicks() int {
	switch p {
	case DifficultyEasy:
		return 8
	case DifficultyHard:
		return 4
	default:
		return defaultMoveEveryTicks
	}
}

// ApplyPreset sets the move interval from a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Difficulty = preset
	cfg.Speed.MoveEveryTicks = preset.MoveEveryTicks()
}

// Normalize fills zero values and clamps out-of-range settings.
func (c *Config) Normalize() {
	if c.Grid.Size == 0 {
		c.Grid.Size = core.DefaultGridSize
	}
	c.Grid.Size = core.Clamp(c.Grid.Size, MinGridSize, MaxGridSize)

	if c.Speed.MoveEveryTicks <= 0 {
		c.Speed.MoveEveryTicks = defaultMoveEveryTicks
	}
	if c.Difficulty == "" {
		c.Difficulty = DifficultyNormal
	}
}
