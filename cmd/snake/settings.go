package main

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// loadSettings loads the config file and applies the global flags on top.
func loadSettings() (config.SnakeConfig, config.Source, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS != 0 {
		cfg.Timing.FPS = flagFPS
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("config from %s: %w", source, err)
	}
	return cfg, source, nil
}

// runtimeConfig builds the per-session config for a screen of w x h.
func runtimeConfig(cfg config.SnakeConfig, w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      w,
		ScreenH:      h,
		FPS:          cfg.Timing.FPS,
		FieldW:       cfg.Field.Width,
		FieldH:       cfg.Field.Height,
		TickInterval: cfg.Timing.Tick,
		Seed:         flagSeed,
	}
}

func audioConfig(cfg config.SnakeConfig) audio.Config {
	return audio.Config{
		Enabled:    cfg.Audio.Enabled,
		Volume:     cfg.Audio.Volume,
		SampleRate: cfg.Audio.SampleRate,
	}
}
