package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Deps are the services a session hands to the screens it runs.
type Deps struct {
	Store  *storage.Store // nil disables score persistence
	Player audio.Player   // nil plays nothing
	Logger *log.Logger    // nil discards
}

func (d Deps) withDefaults() Deps {
	if d.Player == nil {
		d.Player = audio.NewSilent()
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	return d
}

// resizer is implemented by games that react to terminal resizes without
// losing their round.
type resizer interface {
	Resize(w, h int)
}

// roundStats is implemented by games that report more than a score.
type roundStats interface {
	Length() int
	Ticks() uint64
}

// causer is implemented by games that can say why a round ended.
type causer interface {
	Cause() string
}

// GameModel runs one game inside the terminal.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	keys       GameKeyMap
	input      core.InputFrame
	state      core.GameState
	sessionID  string
	loop       int64
	lastFrame  time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel resets game with cfg and wraps it in a model. A zero seed
// is replaced with the current time.
func NewGameModel(game registry.Game, deps Deps, cfg core.RuntimeConfig, sessionID string) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return GameModel{}, err
	}

	deps = deps.withDefaults()
	deps.Logger.Info("round started", "game", game.ID(), "session", sessionID, "seed", cfg.Seed)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:      deps,
		config:    cfg,
		keys:      DefaultGameKeyMap(),
		input:     core.NewInputFrame(),
		state:     game.State(),
		sessionID: sessionID,
		loop:      newLoopID(),
	}, nil
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return frameCmd(m.loop, m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case FrameMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		m = m.handleFrame(msg.At)
		return m, frameCmd(m.loop, m.config.FrameInterval())
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) GameModel {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.deps.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.deps.Logger.Info("screenshot saved", "path", path)
		}

	case key.Matches(msg, m.keys.Back):
		if m.state.GameOver || m.state.Paused {
			m.backToMenu = true
		}

	default:
		m.input.Set(m.keys.Action(msg))
	}
	return m
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) GameModel {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}
	return m
}

// handleFrame feeds the time since the previous frame and the buffered
// input to the game. The delta is capped at one tick interval.
func (m GameModel) handleFrame(now time.Time) GameModel {
	dt := frameDelta(m.lastFrame, now, m.config.TickInterval)
	m.lastFrame = now

	wasOver := m.state.GameOver
	result := m.game.Step(dt, m.input)
	m.input.Clear()
	m.state = result.State

	if wasOver && !m.state.GameOver {
		m.scoreSaved = false
		m.deps.Logger.Info("round restarted", "game", m.game.ID(), "session", m.sessionID)
	}
	if result.Sound != core.SoundNone {
		m.deps.Player.Play(result.Sound)
	}
	if result.Sound == core.SoundEat {
		m.deps.Logger.Debug("food eaten", "score", m.state.Score)
	}
	if m.state.GameOver && !m.scoreSaved {
		m.finishRound()
	}
	return m
}

// finishRound records the score once per round.
func (m *GameModel) finishRound() {
	m.scoreSaved = true

	entry := storage.ScoreEntry{
		GameID:    m.game.ID(),
		Score:     m.state.Score,
		SessionID: m.sessionID,
	}
	if rs, ok := m.game.(roundStats); ok {
		entry.Length = rs.Length()
		entry.Ticks = rs.Ticks()
	}
	cause := ""
	if c, ok := m.game.(causer); ok {
		cause = c.Cause()
	}
	m.deps.Logger.Info("round over",
		"game", entry.GameID, "score", entry.Score, "length", entry.Length,
		"ticks", entry.Ticks, "won", m.state.Won, "cause", cause)

	if m.deps.Store == nil || entry.Score <= 0 {
		return
	}
	id, err := m.deps.Store.SaveScore(entry)
	if err != nil {
		m.deps.Logger.Warn("save score failed", "error", err)
		return
	}
	m.deps.Logger.Debug("score saved", "id", id)
}

// saveScreenshot writes the current frame as plain text under the config
// directory and returns the file path.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := filepath.Join(config.Dir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting reports whether the player asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to leave the round.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the runtime config, updated by resizes.
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}
