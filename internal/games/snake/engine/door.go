package engine

import "github.com/zyedidia/generic/mapset"

// Door is a group of cells that toggles between open and closed.
// A closed door blocks every cell of its footprint.
//
// The countdown starts at the period and is decremented once per tick;
// the tick after it reaches zero flips the door and reloads the countdown,
// so Open changes exactly once every period+1 ticks.
type Door struct {
	cells     mapset.Set[Cell]
	footprint []Cell
	period    int
	open      bool
	countdown int
}

// NewDoor creates a closed door over the given cells. A non-positive period
// is treated as 1.
func NewDoor(period int, cells ...Cell) *Door {
	if period < 1 {
		period = 1
	}
	d := &Door{
		cells:     mapset.New[Cell](),
		period:    period,
		countdown: period,
	}
	for _, c := range cells {
		if d.cells.Has(c) {
			continue
		}
		d.cells.Put(c)
		d.footprint = append(d.footprint, c)
	}
	return d
}

// Tick advances the door timer by one simulation step.
func (d *Door) Tick() {
	if d.countdown > 0 {
		d.countdown--
		return
	}
	d.countdown = d.period
	d.open = !d.open
}

// Open reports whether the door is currently passable.
func (d *Door) Open() bool {
	return d.open
}

// Period returns the configured period.
func (d *Door) Period() int {
	return d.period
}

// Countdown returns the ticks left before the next flip is armed.
func (d *Door) Countdown() int {
	return d.countdown
}

// Contains reports whether c is part of the footprint.
func (d *Door) Contains(c Cell) bool {
	return d.cells.Has(c)
}

// Blocks reports whether the door is closed and covers c.
func (d *Door) Blocks(c Cell) bool {
	return !d.open && d.cells.Has(c)
}

// Cells returns a copy of the footprint in construction order.
func (d *Door) Cells() []Cell {
	out := make([]Cell, len(d.footprint))
	copy(out, d.footprint)
	return out
}

// DoorSet ticks and queries a collection of doors.
type DoorSet struct {
	doors []*Door
}

// NewDoorSet creates a set from the given doors.
func NewDoorSet(doors ...*Door) *DoorSet {
	return &DoorSet{doors: doors}
}

// Add appends a door.
func (s *DoorSet) Add(d *Door) {
	s.doors = append(s.doors, d)
}

// Tick advances every door by one step.
func (s *DoorSet) Tick() {
	for _, d := range s.doors {
		d.Tick()
	}
}

// IsBlocking returns true if some closed door covers c.
func (s *DoorSet) IsBlocking(c Cell) bool {
	for _, d := range s.doors {
		if d.Blocks(c) {
			return true
		}
	}
	return false
}

// Len returns the number of doors.
func (s *DoorSet) Len() int {
	return len(s.doors)
}

// DoorState is a read-only view of one door.
type DoorState struct {
	Cells     []Cell
	Open      bool
	Period    int
	Countdown int
}

// States returns a view of every door.
func (s *DoorSet) States() []DoorState {
	out := make([]DoorState, len(s.doors))
	for i, d := range s.doors {
		out[i] = DoorState{
			Cells:     d.Cells(),
			Open:      d.open,
			Period:    d.period,
			Countdown: d.countdown,
		}
	}
	return out
}
