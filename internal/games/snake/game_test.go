package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/engine"
)

const tick = 300 * time.Millisecond

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g := New()
	require.NoError(t, g.Reset(cfg))
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := 0; i < 40; i++ {
		var in core.InputFrame
		switch i {
		case 3:
			in = frame(core.ActionRight)
		case 6:
			in = frame(core.ActionUp)
		}
		g1.Step(tick, in)
		g2.Step(tick, in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestResetRejectsBadConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.FieldW = 4
	err := New().Reset(cfg)
	assert.ErrorIs(t, err, engine.ErrInvalidField)

	cfg = core.DefaultConfig()
	cfg.TickInterval = 0
	assert.ErrorIs(t, New().Reset(cfg), engine.ErrInvalidInterval)
}

func TestActionsForwardedInOrder(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(tick, frame(core.ActionLeft, core.ActionUp))
	assert.Equal(t, core.SoundTurn, res.Sound)
	assert.Equal(t, engine.C(4, 10), g.Snapshot().Head)

	res = g.Step(tick, core.NewInputFrame())
	assert.Equal(t, core.SoundTurn, res.Sound)
	assert.Equal(t, engine.Up, g.Snapshot().Heading)
}

func TestPauseStopsTime(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(tick, frame(core.ActionPause))
	assert.True(t, res.State.Paused)
	g.Step(tick, frame(core.ActionLeft))
	assert.Equal(t, uint64(0), g.Ticks())
	assert.Equal(t, StatePaused, g.Snapshot().State)

	g.Step(0, frame(core.ActionPause))
	g.Step(tick, core.NewInputFrame())
	assert.Equal(t, uint64(1), g.Ticks())
	assert.Equal(t, engine.Down, g.Snapshot().Heading, "keys pressed while paused are dropped")
}

func TestCollisionEndsGameAndRestart(t *testing.T) {
	g := newTestGame(t, 7)

	// Heading down from (5,10) the snake reaches the bottom row on the
	// ninth step and is clamped onto itself on the tenth.
	var res core.StepResult
	for i := 0; i < 9 && !res.State.GameOver; i++ {
		res = g.Step(tick, core.NewInputFrame())
	}
	require.False(t, res.State.GameOver)
	assert.Empty(t, g.Cause())

	res = g.Step(tick, core.NewInputFrame())
	assert.True(t, res.State.GameOver)
	assert.Equal(t, "head", g.Cause())
	assert.False(t, res.State.Won)
	assert.Equal(t, core.SoundCollision, res.Sound)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	// Pause is ignored once the game is over.
	res = g.Step(tick, frame(core.ActionPause))
	assert.False(t, res.State.Paused)

	res = g.Step(tick, frame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, engine.C(5, 10), g.Snapshot().Head)
	assert.Equal(t, uint64(0), g.Ticks())
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, 3)
	g.Step(tick, core.NewInputFrame())
	g.Step(tick, frame(core.ActionRestart))
	assert.Equal(t, uint64(2), g.Ticks())
}

func TestSoundMapping(t *testing.T) {
	tests := map[engine.Event]core.Sound{
		engine.EventNone:      core.SoundNone,
		engine.EventTurn:      core.SoundTurn,
		engine.EventTeleport:  core.SoundTeleport,
		engine.EventEat:       core.SoundEat,
		engine.EventCollision: core.SoundCollision,
	}
	for ev, want := range tests {
		assert.Equal(t, want, soundFor(ev), ev.String())
	}
}

func TestTooSmallSuspendsPlay(t *testing.T) {
	g := newTestGame(t, 1)
	g.Resize(10, 10)

	g.Step(tick, core.NewInputFrame())
	assert.Equal(t, uint64(0), g.Ticks())
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	screen := core.NewScreen(10, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Need 22x24")

	g.Resize(80, 24)
	g.Step(tick, core.NewInputFrame())
	assert.Equal(t, uint64(1), g.Ticks())
}

func TestRenderField(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	field := g.fieldRect(screen)
	origin := field.Inset(1)
	at := func(x, y int) core.Cell {
		return screen.GetCell(origin.X+x, origin.Y+y)
	}

	assert.True(t, strings.HasPrefix(screen.Row(0), " Snake | Score: 0  Length: 5"))
	assert.Equal(t, '┌', screen.Get(field.X, field.Y))
	assert.Equal(t, core.Cell{Rune: glyphWall, Color: core.ColorGray}, at(10, 0))
	assert.Equal(t, glyphDoorClosed, at(10, 6).Rune)
	assert.Equal(t, glyphTeleporter, at(0, 0).Rune)
	assert.Equal(t, glyphTeleporter, at(19, 19).Rune)
	assert.Equal(t, glyphFood, at(1, 1).Rune)
	// Before the first tick the head is drawn one cell behind its target.
	assert.Equal(t, 'v', at(5, 9).Rune)
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Step(0, frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "Paused")
	assert.Contains(t, screen.Row(0), "[paused]")
}
