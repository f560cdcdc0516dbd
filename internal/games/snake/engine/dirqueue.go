package engine

// DirectionQueue buffers turn requests between ticks.
// It is FIFO and never holds the same direction twice, so repeated taps of
// one key collapse into a single pending turn.
type DirectionQueue struct {
	pending []Direction
}

// Enqueue appends d unless an equal direction is already pending.
// Invalid directions are dropped.
func (q *DirectionQueue) Enqueue(d Direction) {
	if !d.Valid() {
		return
	}
	for _, p := range q.pending {
		if p == d {
			return
		}
	}
	q.pending = append(q.pending, d)
}

// Dequeue pops the oldest pending direction.
func (q *DirectionQueue) Dequeue() (Direction, bool) {
	if len(q.pending) == 0 {
		return Direction{}, false
	}
	d := q.pending[0]
	q.pending = q.pending[1:]
	return d, true
}

// Len returns the number of pending directions.
func (q *DirectionQueue) Len() int {
	return len(q.pending)
}

// Pending returns a copy of the queue, oldest first.
func (q *DirectionQueue) Pending() []Direction {
	out := make([]Direction, len(q.pending))
	copy(out, q.pending)
	return out
}

// Clear drops every pending direction.
func (q *DirectionQueue) Clear() {
	q.pending = q.pending[:0]
}
