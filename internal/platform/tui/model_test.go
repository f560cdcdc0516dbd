package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newTestModel(t *testing.T, game *fakeGame, deps Deps) GameModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	m, err := NewGameModel(game, deps, cfg, "session-1")
	require.NoError(t, err)
	return m
}

func frame(m GameModel, at time.Time) (GameModel, tea.Cmd) {
	return m.Update(FrameMsg{Loop: m.loop, At: at})
}

func press(m GameModel, msgs ...tea.KeyMsg) GameModel {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestNewGameModelResetsGame(t *testing.T) {
	game := &fakeGame{}
	newTestModel(t, game, Deps{})

	assert.Equal(t, 1, game.resets)
	assert.Equal(t, int64(42), game.seed)
}

func TestNewGameModelPicksSeed(t *testing.T) {
	game := &fakeGame{}
	_, err := NewGameModel(game, Deps{}, core.DefaultConfig(), "s")
	require.NoError(t, err)
	assert.NotZero(t, game.seed)
}

func TestGameModelFrameDeltas(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, Deps{})
	t0 := time.Now()

	m, cmd := frame(m, t0)
	assert.NotNil(t, cmd)
	m, _ = frame(m, t0.Add(16*time.Millisecond))
	_, _ = frame(m, t0.Add(time.Hour))

	assert.Equal(t, []time.Duration{0, 16 * time.Millisecond, 300 * time.Millisecond}, game.deltas)
}

func TestGameModelIgnoresForeignFrames(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, Deps{})

	_, cmd := m.Update(FrameMsg{Loop: m.loop + 1000, At: time.Now()})
	assert.Nil(t, cmd)
	assert.Empty(t, game.deltas)
}

func TestGameModelForwardsActionsInOrder(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, Deps{})

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft}, runeKey('w'), runeKey('x'))
	m, _ = frame(m, time.Now())
	_, _ = frame(m, time.Now())

	require.Len(t, game.actions, 2)
	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionUp}, game.actions[0])
	assert.Empty(t, game.actions[1])
}

func TestGameModelPlaysSounds(t *testing.T) {
	game := &fakeGame{sound: core.SoundEat}
	player := &fakePlayer{}
	m := newTestModel(t, game, Deps{Player: player})

	m, _ = frame(m, time.Now())
	game.sound = core.SoundNone
	_, _ = frame(m, time.Now())

	assert.Equal(t, []core.Sound{core.SoundEat}, player.played)
}

func TestGameModelSavesScoreOncePerRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &fakeGame{length: 8, ticks: 40}
	m := newTestModel(t, game, Deps{Store: store})
	t0 := time.Now()

	m, _ = frame(m, t0)
	game.state = core.GameState{Score: 3, GameOver: true}
	m, _ = frame(m, t0.Add(time.Millisecond))
	m, _ = frame(m, t0.Add(2*time.Millisecond))

	scores, err := store.TopScores(fakeGameID, 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 3, scores[0].Score)
	assert.Equal(t, 8, scores[0].Length)
	assert.Equal(t, uint64(40), scores[0].Ticks)
	assert.Equal(t, "session-1", scores[0].SessionID)

	m = press(m, runeKey('r'))
	m, _ = frame(m, t0.Add(3*time.Millisecond))
	assert.False(t, m.State().GameOver)

	game.state = core.GameState{Score: 5, GameOver: true}
	_, _ = frame(m, t0.Add(4*time.Millisecond))

	scores, err = store.TopScores(fakeGameID, 10)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &fakeGame{}
	m := newTestModel(t, game, Deps{Store: store})
	game.state = core.GameState{GameOver: true}
	_, _ = frame(m, time.Now())

	scores, err := store.TopScores(fakeGameID, 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, Deps{})

	m = press(m, runeKey('b'))
	assert.False(t, m.BackToMenu(), "playing")

	game.state = core.GameState{Paused: true}
	m, _ = frame(m, time.Now())
	m = press(m, runeKey('b'))
	assert.True(t, m.BackToMenu(), "paused")

	m = newTestModel(t, game, Deps{})
	game.state = core.GameState{GameOver: true}
	m, _ = frame(m, time.Now())
	m = press(m, runeKey('b'))
	assert.True(t, m.BackToMenu(), "over")
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, Deps{})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestGameModelResize(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, Deps{})

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, [][2]int{{100, 40}}, game.resized)
	assert.Equal(t, 100, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}

func TestGameModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := newTestModel(t, &fakeGame{}, Deps{})
	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(home, ".snake", "screenshots", fakeGameID+"_*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "fake")
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, Deps{})
	assert.Contains(t, m.View(), "fake")
}
