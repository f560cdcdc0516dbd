// Package snake adapts the simulation in package engine to the platform:
// it maps actions to key presses, turns engine events into sound cues and
// draws the field into a screen buffer.
package snake

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "snake"

// hudHeight is the number of screen rows above the field.
const hudHeight = 2

// Game implements registry.Game on top of engine.Game.
type Game struct {
	cfg   core.RuntimeConfig
	eng   *engine.Game
	seeds *rand.Rand

	score     int
	lastEvent engine.Event

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// New creates an unstarted game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, "Snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset builds a fresh field from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.cfg = cfg
	g.seeds = rand.New(rand.NewSource(uint64(cfg.Seed)))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	return g.newRound(g.seeds.Uint64())
}

func (g *Game) newRound(seed uint64) error {
	eng, err := engine.New(engine.Options{
		Width:        g.cfg.FieldW,
		Height:       g.cfg.FieldH,
		TickInterval: g.cfg.TickInterval,
		Seed:         seed,
	})
	if err != nil {
		return fmt.Errorf("snake: reset: %w", err)
	}

	g.eng = eng
	g.score = 0
	g.lastEvent = engine.EventNone
	g.gameOver = false
	g.won = false
	g.paused = false
	g.tooSmall = !g.fits(g.screenW, g.screenH)
	return nil
}

// Resize records new screen dimensions. The field keeps its size; a screen
// too small for it suspends play until it grows again.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = !g.fits(w, h)
}

func (g *Game) fits(w, h int) bool {
	return w >= g.cfg.FieldW+2 && h >= g.cfg.FieldH+2+hudHeight
}

// Step advances the game by dt of wall-clock time.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if g.eng == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		// Reset already accepted this config, so a new round cannot fail.
		_ = g.newRound(g.seeds.Uint64())
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	// Time stops while paused, over or hidden.
	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if k, ok := keyFor(a); ok {
			g.eng.HandleKey(k)
		}
	}

	ev, err := g.eng.MakeStep(dt)
	g.lastEvent = ev
	g.score = g.eng.CurrentLength() - engine.StartLength

	switch {
	case errors.Is(err, engine.ErrBoardFull):
		g.gameOver = true
		g.won = true
	case ev == engine.EventCollision:
		g.gameOver = true
	}

	return core.StepResult{State: g.State(), Sound: soundFor(ev)}
}

func keyFor(a core.Action) (engine.Key, bool) {
	switch a {
	case core.ActionUp:
		return engine.KeyUp, true
	case core.ActionDown:
		return engine.KeyDown, true
	case core.ActionLeft:
		return engine.KeyLeft, true
	case core.ActionRight:
		return engine.KeyRight, true
	}
	return engine.KeyUnknown, false
}

func soundFor(ev engine.Event) core.Sound {
	switch ev {
	case engine.EventTurn:
		return core.SoundTurn
	case engine.EventTeleport:
		return core.SoundTeleport
	case engine.EventEat:
		return core.SoundEat
	case engine.EventCollision:
		return core.SoundCollision
	}
	return core.SoundNone
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Length returns the current target length of the snake.
func (g *Game) Length() int {
	if g.eng == nil {
		return 0
	}
	return g.eng.CurrentLength()
}

// Ticks returns the number of discrete steps taken this round.
func (g *Game) Ticks() uint64 {
	if g.eng == nil {
		return 0
	}
	return g.eng.Ticks()
}

// Cause names what ended the round: the obstacle hit, "board full", or
// empty while the round is running.
func (g *Game) Cause() string {
	switch {
	case g.won:
		return "board full"
	case g.eng != nil && g.eng.Collided():
		return g.eng.CollisionCause().String()
	}
	return ""
}
