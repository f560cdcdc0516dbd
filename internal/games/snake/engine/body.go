package engine

// Segment is one retained body cell plus the heading the snake had when
// its head left that cell. The heading drives tail interpolation.
type Segment struct {
	Cell    Cell
	Heading Direction
}

// Body is the history of cells the head has left, ordered tail to head.
// The head itself is tracked by Game, not stored here.
type Body struct {
	segments []Segment
}

// Push appends the cell the head is leaving.
func (b *Body) Push(c Cell, heading Direction) {
	b.segments = append(b.segments, Segment{Cell: c, Heading: heading})
}

// Trim drops segments from the tail until at most n remain.
func (b *Body) Trim(n int) {
	if n < 0 {
		n = 0
	}
	if extra := len(b.segments) - n; extra > 0 {
		b.segments = append(b.segments[:0], b.segments[extra:]...)
	}
}

// Len returns the number of retained segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Tail returns the oldest retained segment.
func (b *Body) Tail() (Segment, bool) {
	if len(b.segments) == 0 {
		return Segment{}, false
	}
	return b.segments[0], true
}

// Occupies reports whether any retained segment sits on c.
func (b *Body) Occupies(c Cell) bool {
	for _, s := range b.segments {
		if s.Cell == c {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body, tail first.
func (b *Body) Segments() []Segment {
	out := make([]Segment, len(b.segments))
	copy(out, b.segments)
	return out
}
