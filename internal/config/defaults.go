package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: FieldConfig{
			Width:  20,
			Height: 20,
		},
		Timing: TimingConfig{
			Tick: 300 * time.Millisecond,
			FPS:  60,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
