package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapActions(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"a", runeKey('a'), core.ActionLeft},
		{"s", runeKey('s'), core.ActionDown},
		{"d", runeKey('d'), core.ActionRight},
		{"k", runeKey('k'), core.ActionUp},
		{"h", runeKey('h'), core.ActionLeft},
		{"j", runeKey('j'), core.ActionDown},
		{"l", runeKey('l'), core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"quit is not an action", runeKey('q'), core.ActionNone},
		{"back is not an action", runeKey('b'), core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestMenuKeyMapActions(t *testing.T) {
	keys := DefaultMenuKeyMap()

	assert.Equal(t, MenuActionUp, keys.MenuAction(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionUp, keys.MenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, keys.MenuAction(runeKey('j')))
	assert.Equal(t, MenuActionSelect, keys.MenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionSelect, keys.MenuAction(tea.KeyMsg{Type: tea.KeySpace}))
	assert.Equal(t, MenuActionBack, keys.MenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, keys.MenuAction(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.Equal(t, MenuActionQuit, keys.MenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, keys.MenuAction(runeKey('x')))
}
