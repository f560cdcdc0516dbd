package engine

// Snapshot is a copy of everything a renderer needs for one frame.
// It shares no memory with the Game.
type Snapshot struct {
	Width  int
	Height int

	Head          Cell
	Heading       Direction
	Body          []Segment
	CurrentLength int
	Food          Cell

	Walls       []Cell
	Doors       []DoorState
	Teleporters []Teleporter

	HeadPos  Vec2
	TailPos  Vec2
	HasTail  bool
	Progress float64

	Ticks    uint64
	Collided bool
	Cause    ObstacleKind
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	tail, hasTail := g.InterpolatedTail()
	return Snapshot{
		Width:         g.width,
		Height:        g.height,
		Head:          g.head,
		Heading:       g.heading,
		Body:          g.body.Segments(),
		CurrentLength: g.targetLen,
		Food:          g.food,
		Walls:         g.grid.Obstacles(),
		Doors:         g.doors.States(),
		Teleporters:   g.teleporters.All(),
		HeadPos:       g.InterpolatedHead(),
		TailPos:       tail,
		HasTail:       hasTail,
		Progress:      g.clock.Progress(),
		Ticks:         g.ticks,
		Collided:      g.collided,
		Cause:         g.blocker,
	}
}
