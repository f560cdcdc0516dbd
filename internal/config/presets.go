package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep the configured tick
)

// Presets lists the accepted preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// TickForPreset returns the step interval for a preset. The second result
// is false for DifficultyFixed and unknown names.
func TickForPreset(preset DifficultyPreset) (time.Duration, bool) {
	switch preset {
	case DifficultyEasy:
		return 400 * time.Millisecond, true
	case DifficultyNormal:
		return 300 * time.Millisecond, true
	case DifficultyHard:
		return 180 * time.Millisecond, true
	default:
		return 0, false
	}
}

// ParsePreset validates a preset name. The empty string means fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyFixed, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if tick, ok := TickForPreset(preset); ok {
		cfg.Timing.Tick = tick
	}
}
