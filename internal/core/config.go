package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
	FPS     int // Frames per second driven by the platform

	FieldW       int           // Playing field width in cells
	FieldH       int           // Playing field height in cells
	TickInterval time.Duration // Simulated time per discrete game step

	Seed int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		FPS:          60,
		FieldW:       20,
		FieldH:       20,
		TickInterval: 300 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the wall-clock time between two rendered frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended because the board filled up
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Sound Sound // Cue to play for this frame, SoundNone if silent
}
