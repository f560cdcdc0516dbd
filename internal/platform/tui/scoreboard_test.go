package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(fakeGameID, "Fake", nil, log.New(io.Discard), 60, 24)

	assert.Empty(t, m.Scores())
	assert.Contains(t, m.View(), "No scores yet")
}

func TestScoreboardLoadsScoresAndStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, e := range []storage.ScoreEntry{
		{GameID: fakeGameID, Score: 2, Length: 7, Ticks: 30},
		{GameID: fakeGameID, Score: 9, Length: 14, Ticks: 120},
		{GameID: "other", Score: 50},
	} {
		_, err := store.SaveScore(e)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(fakeGameID, "Fake", store, log.New(io.Discard), 100, 30)

	require.Len(t, m.Scores(), 2)
	assert.Equal(t, 9, m.Scores()[0].Score)

	view := m.View()
	assert.Contains(t, view, "Games:")
	assert.Contains(t, view, "Longest: 14")

	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, m.View(), "2 games  best 9  longest 14")
}

func TestScoreboardKeys(t *testing.T) {
	m := NewScoreboardModel(fakeGameID, "Fake", nil, log.New(io.Discard), 80, 24)

	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.GoingBack())

	quit, _ := m.Update(runeKey('q'))
	assert.True(t, quit.IsQuitting())
}
