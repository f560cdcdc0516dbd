package tui

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const fakeGameID = "tui_fake"

func init() {
	registry.Register(fakeGameID, "Fake", func() registry.Game {
		return &fakeGame{}
	})
}

// fakeGame records what the model feeds it and reports a scripted state.
type fakeGame struct {
	resets  int
	seed    int64
	deltas  []time.Duration
	actions [][]core.Action
	resized [][2]int

	state  core.GameState
	sound  core.Sound
	length int
	ticks  uint64
}

func (f *fakeGame) ID() string { return fakeGameID }
func (f *fakeGame) Title() string { return "Fake" }
func (f *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (f *fakeGame) State() core.GameState { return f.state }
func (f *fakeGame) Length() int { return f.length }
func (f *fakeGame) Ticks() uint64 { return f.ticks }

func (f *fakeGame) Reset(cfg core.RuntimeConfig) error {
	f.resets++
	f.seed = cfg.Seed
	f.state = core.GameState{}
	return nil
}

func (f *fakeGame) Resize(w, h int) {
	f.resized = append(f.resized, [2]int{w, h})
}

func (f *fakeGame) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	f.deltas = append(f.deltas, dt)
	f.actions = append(f.actions, in.Actions())
	if in.Has(core.ActionRestart) && f.state.GameOver {
		f.state = core.GameState{}
	}
	return core.StepResult{State: f.state, Sound: f.sound}
}

// fakePlayer records the cues it was asked to play.
type fakePlayer struct {
	played []core.Sound
}

func (p *fakePlayer) Play(s core.Sound) { p.played = append(p.played, s) }
func (p *fakePlayer) Close() error { return nil }
