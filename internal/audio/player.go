// Package audio plays the game's sound cues. Effects are synthesized with
// beep; nothing is loaded from disk.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Player plays sound cues without blocking the caller.
type Player interface {
	Play(s core.Sound)
	Close() error
}

// Config configures a Player.
type Config struct {
	Enabled    bool
	Volume     float64 // 0..1
	SampleRate int     // Hz
}

// Silent is a Player that discards every cue.
type Silent struct{}

// NewSilent returns a Player that plays nothing.
func NewSilent() Silent {
	return Silent{}
}

// Play does nothing.
func (Silent) Play(core.Sound) {}

// Close does nothing.
func (Silent) Close() error { return nil }

// BeepPlayer mixes effects into the system speaker.
type BeepPlayer struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// NewBeepPlayer initializes the speaker. Only one BeepPlayer should exist
// per process.
func NewBeepPlayer(cfg Config) (*BeepPlayer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	p := &BeepPlayer{
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play starts the effect for s on top of whatever is already playing.
func (p *BeepPlayer) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	st := Effect(s, p.rate, p.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Close silences the mixer. The speaker itself stays initialized.
func (p *BeepPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	return nil
}

// New returns a speaker-backed Player when audio is enabled and the device
// can be opened, and a Silent player otherwise.
func New(cfg Config, logger *log.Logger) Player {
	if !cfg.Enabled || cfg.Volume <= 0 {
		return NewSilent()
	}
	p, err := NewBeepPlayer(cfg)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return NewSilent()
	}
	logger.Debug("audio enabled", "sample_rate", cfg.SampleRate, "volume", cfg.Volume)
	return p
}
