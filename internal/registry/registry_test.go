package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub" }
func (s stubGame) Reset(core.RuntimeConfig) error { return nil }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }
func (s stubGame) Step(time.Duration, core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", "Stub", func() Game { return stubGame{id: "zz_stub"} })

	assert.True(t, Exists("zz_stub"))
	assert.Contains(t, List(), GameInfo{ID: "zz_stub", Title: "Stub"})

	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())

	assert.Panics(t, func() {
		Register("zz_stub", "Again", func() Game { return stubGame{} })
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist")
	assert.ErrorContains(t, err, "unknown game")
	assert.False(t, Exists("does_not_exist"))
}
