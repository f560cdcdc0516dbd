package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoorTogglesEveryPeriodPlusOneTicks(t *testing.T) {
	d := NewDoor(5, C(3, 3))
	assert.False(t, d.Open(), "doors start closed")

	for i := 0; i < 5; i++ {
		d.Tick()
		assert.False(t, d.Open(), "tick %d", i+1)
	}
	d.Tick()
	assert.True(t, d.Open())
	assert.Equal(t, 5, d.Countdown())

	for i := 0; i < 5; i++ {
		d.Tick()
		assert.True(t, d.Open(), "tick %d", i+7)
	}
	d.Tick()
	assert.False(t, d.Open())
}

func TestDoorBlocksOnlyWhenClosed(t *testing.T) {
	d := NewDoor(1, C(1, 1), C(1, 2))
	assert.True(t, d.Blocks(C(1, 1)))
	assert.False(t, d.Blocks(C(2, 2)))

	d.Tick()
	d.Tick()
	assert.True(t, d.Open())
	assert.False(t, d.Blocks(C(1, 1)))
	assert.True(t, d.Contains(C(1, 1)))
}

func TestNewDoorDeduplicatesCells(t *testing.T) {
	d := NewDoor(0, C(1, 1), C(1, 1), C(1, 2))
	assert.Equal(t, []Cell{C(1, 1), C(1, 2)}, d.Cells())
	assert.Equal(t, 1, d.Period())
}

func TestDoorSet(t *testing.T) {
	s := NewDoorSet(NewDoor(1, C(0, 0)))
	s.Add(NewDoor(3, C(5, 5)))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.IsBlocking(C(0, 0)))
	assert.True(t, s.IsBlocking(C(5, 5)))

	s.Tick()
	s.Tick()
	assert.False(t, s.IsBlocking(C(0, 0)))
	assert.True(t, s.IsBlocking(C(5, 5)))

	states := s.States()
	assert.True(t, states[0].Open)
	assert.False(t, states[1].Open)
	assert.Equal(t, 1, states[1].Countdown)
}
