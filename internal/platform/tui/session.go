package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

type view int

const (
	viewMenu view = iota
	viewGame
	viewScores
)

// SessionModel manages one player's flow: menu -> game or scores -> menu.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	gameID    string
	title     string
	deps      Deps
	config    core.RuntimeConfig
	username  string
	sessionID string
	view      view
	menu      MenuModel
	game      GameModel
	scores    ScoreboardModel
	quitting  bool
	err       error
}

// NewSessionModel creates a session for the registered game gameID.
func NewSessionModel(gameID string, deps Deps, cfg core.RuntimeConfig, username string) (SessionModel, error) {
	g, err := registry.Create(gameID)
	if err != nil {
		return SessionModel{}, err
	}

	m := SessionModel{
		gameID:    gameID,
		title:     g.Title(),
		deps:      deps.withDefaults(),
		config:    cfg,
		username:  username,
		sessionID: uuid.NewString(),
	}
	m.menu = m.newMenu()
	m.deps.Logger.Debug("session created", "user", username, "session", m.sessionID)
	return m, nil
}

func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.deps.Store != nil {
		hs, err := m.deps.Store.HighScore(m.gameID)
		if err != nil {
			m.deps.Logger.Warn("read high score", "error", err)
		}
		best = hs
	}
	return NewMenuModel(m.config, best)
}

// Init sets the terminal title.
func (m SessionModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

// Update routes msg to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		game, err := registry.Create(m.gameID)
		if err != nil {
			return m.fail(err)
		}
		gm, err := NewGameModel(game, m.deps, m.config, m.sessionID)
		if err != nil {
			return m.fail(err)
		}
		m.game = gm
		m.view = viewGame
		return m, m.game.Init()

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.gameID, m.title, m.deps.Store, m.deps.Logger,
			m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.game, cmd = m.game.Update(msg)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		m.game = GameModel{}
		m.menu = m.newMenu()
		m.view = viewMenu
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scores, cmd = m.scores.Update(msg)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.scores.GoingBack():
		m.menu = m.newMenu()
		m.view = viewMenu
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) fail(err error) (tea.Model, tea.Cmd) {
	m.err = fmt.Errorf("start %s: %w", m.gameID, err)
	m.deps.Logger.Error("cannot start round", "error", err)
	m.quitting = true
	return m, tea.Quit
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// SessionID returns the identifier stamped on every score of the session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Run starts an interactive session for gameID in the local terminal.
func Run(gameID string, deps Deps, cfg core.RuntimeConfig) error {
	model, err := NewSessionModel(gameID, deps, cfg, "local")
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if sm, ok := final.(SessionModel); ok {
		return sm.Err()
	}
	return nil
}
