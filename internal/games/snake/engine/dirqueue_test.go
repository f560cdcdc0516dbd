package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionQueueFIFO(t *testing.T) {
	var q DirectionQueue
	q.Enqueue(Left)
	q.Enqueue(Up)

	d, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, Left, d)

	d, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, Up, d)

	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestDirectionQueueDeduplicates(t *testing.T) {
	var q DirectionQueue
	q.Enqueue(Left)
	q.Enqueue(Left)
	q.Enqueue(Right)
	q.Enqueue(Left)

	assert.Equal(t, []Direction{Left, Right}, q.Pending())
}

func TestDirectionQueueDropsInvalid(t *testing.T) {
	var q DirectionQueue
	q.Enqueue(Direction{})
	q.Enqueue(Direction{X: 1, Y: 1})
	q.Enqueue(Direction{X: 2})
	assert.Equal(t, 0, q.Len())

	q.Enqueue(Down)
	q.Clear()
	assert.Equal(t, 0, q.Len())
}

func TestDirectionOpposite(t *testing.T) {
	assert.True(t, Up.IsOpposite(Down))
	assert.True(t, Left.IsOpposite(Right))
	assert.False(t, Up.IsOpposite(Left))
	assert.False(t, Up.IsOpposite(Up))
	assert.Equal(t, Left, Right.Opposite())
}
