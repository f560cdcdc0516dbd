package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionUp)
	f.Set(ActionLeft)

	assert.Equal(t, []Action{ActionLeft, ActionUp, ActionLeft}, f.Actions())
	assert.True(t, f.Has(ActionUp))
	assert.False(t, f.Has(ActionPause))
	assert.Equal(t, 3, f.Len())
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	clone := f.Clone()

	f.Clear()
	f.Set(ActionPause)

	assert.Equal(t, []Action{ActionRight}, clone.Actions())
	assert.Equal(t, []Action{ActionPause}, f.Actions())
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		assert.True(t, a.IsDirection(), a.String())
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionPause, ActionQuit} {
		assert.False(t, a.IsDirection(), a.String())
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "16.666666ms", cfg.FrameInterval().String())

	cfg.FPS = 0
	assert.Equal(t, cfg.FrameInterval(), DefaultConfig().FrameInterval())
}
