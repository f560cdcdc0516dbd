package engine

import "github.com/kamstrup/intmap"

// Teleporter redirects a head arriving at Start to End.
type Teleporter struct {
	Start Cell
	End   Cell
}

// TeleporterSet holds one-way teleporters keyed by their start cell.
// Two-way links are stored as two independent entries.
type TeleporterSet struct {
	width int
	ends  *intmap.Map[int64, Cell]
	pairs []Teleporter
}

// NewTeleporterSet creates an empty set for a field of the given width.
func NewTeleporterSet(width int) *TeleporterSet {
	return &TeleporterSet{
		width: width,
		ends:  intmap.New[int64, Cell](4),
	}
}

func (t *TeleporterSet) key(c Cell) int64 {
	return int64(c.Y)*int64(t.width) + int64(c.X)
}

// Insert adds a one-way teleporter. A start cell that is already linked
// is left unchanged.
func (t *TeleporterSet) Insert(start, end Cell) bool {
	if start == end {
		return false
	}
	k := t.key(start)
	if _, ok := t.ends.Get(k); ok {
		return false
	}
	t.ends.Put(k, end)
	t.pairs = append(t.pairs, Teleporter{Start: start, End: end})
	return true
}

// InsertTwoWay links a and b in both directions.
func (t *TeleporterSet) InsertTwoWay(a, b Cell) {
	t.Insert(a, b)
	t.Insert(b, a)
}

// Resolve returns the destination for c and true if c is a teleporter start,
// otherwise c unchanged and false.
func (t *TeleporterSet) Resolve(c Cell) (Cell, bool) {
	if end, ok := t.ends.Get(t.key(c)); ok {
		return end, true
	}
	return c, false
}

// Len returns the number of one-way entries.
func (t *TeleporterSet) Len() int {
	return len(t.pairs)
}

// All returns a copy of every teleporter in insertion order.
func (t *TeleporterSet) All() []Teleporter {
	out := make([]Teleporter, len(t.pairs))
	copy(out, t.pairs)
	return out
}
