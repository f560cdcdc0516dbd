// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake/engine"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Timing TimingConfig `yaml:"timing"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
}

// FieldConfig defines the playing field size in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines simulation and frame timing.
type TimingConfig struct {
	Tick time.Duration `yaml:"tick"` // Simulated time per step, e.g. "300ms"
	FPS  int           `yaml:"fps"`  // Frames rendered per second
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // 0.0 = silent, 1.0 = full
	SampleRate int     `yaml:"sample_rate"` // Hz
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty discards logs while the TUI runs
}

// Limits enforced by Validate.
const (
	MinFPS = 1
	MaxFPS = 240
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that cfg can drive a game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Field.Width < engine.MinFieldSize || c.Field.Height < engine.MinFieldSize {
		errs = append(errs, fmt.Errorf("field %dx%d is smaller than %dx%d",
			c.Field.Width, c.Field.Height, engine.MinFieldSize, engine.MinFieldSize))
	}
	if c.Timing.Tick <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick must be positive, got %s", c.Timing.Tick))
	}
	if c.Timing.FPS < MinFPS || c.Timing.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("timing.fps must be in [%d, %d], got %d", MinFPS, MaxFPS, c.Timing.FPS))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
