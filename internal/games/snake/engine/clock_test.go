package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockFiresOnFullInterval(t *testing.T) {
	c := NewClock(300 * time.Millisecond)

	assert.False(t, c.Advance(299*time.Millisecond))
	assert.True(t, c.Advance(time.Millisecond))
	assert.Equal(t, time.Duration(0), c.Pending())
}

func TestClockSplitDeltas(t *testing.T) {
	c := NewClock(300 * time.Millisecond)

	fired := 0
	for i := 0; i < 3; i++ {
		if c.Advance(100 * time.Millisecond) {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
	assert.Equal(t, time.Duration(0), c.Pending())
}

func TestClockOneStepPerAdvance(t *testing.T) {
	c := NewClock(300 * time.Millisecond)

	assert.True(t, c.Advance(time.Second))
	assert.Equal(t, 700*time.Millisecond, c.Pending())
	assert.Equal(t, 1.0, c.Progress(), "progress is capped")

	// The backlog drains one interval per call.
	assert.True(t, c.Advance(0))
	assert.True(t, c.Advance(0))
	assert.False(t, c.Advance(0))
	assert.Equal(t, 100*time.Millisecond, c.Pending())
}

func TestClockIgnoresNegativeDelta(t *testing.T) {
	c := NewClock(100 * time.Millisecond)
	c.Advance(50 * time.Millisecond)
	assert.False(t, c.Advance(-time.Second))
	assert.Equal(t, 50*time.Millisecond, c.Pending())
	assert.InDelta(t, 0.5, c.Progress(), 1e-9)
}
