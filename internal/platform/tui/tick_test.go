package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameDelta(t *testing.T) {
	t0 := time.Now()

	assert.Zero(t, frameDelta(time.Time{}, t0, time.Second), "first frame")
	assert.Equal(t, 16*time.Millisecond, frameDelta(t0, t0.Add(16*time.Millisecond), time.Second))
	assert.Equal(t, time.Second, frameDelta(t0, t0.Add(time.Minute), time.Second), "capped")
	assert.Equal(t, time.Minute, frameDelta(t0, t0.Add(time.Minute), 0), "no cap")
	assert.Zero(t, frameDelta(t0, t0.Add(-time.Second), time.Second), "clock went back")
}

func TestLoopIDsAreUnique(t *testing.T) {
	a, b := newLoopID(), newLoopID()
	assert.NotEqual(t, a, b)
}
