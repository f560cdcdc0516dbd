package engine

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the source of randomness used for food placement.
// *rand.Rand from math/rand and golang.org/x/exp/rand both satisfy it.
type Rand interface {
	Intn(n int) int
}

// Default field configuration.
const (
	DefaultWidth        = 20
	DefaultHeight       = 20
	DefaultTickInterval = 300 * time.Millisecond

	// StartLength is the target body length of a fresh snake.
	StartLength = 5

	// MinFieldSize is the smallest width or height the default layout fits in.
	MinFieldSize = 8
)

// Options configures a new Game.
type Options struct {
	Width        int
	Height       int
	TickInterval time.Duration

	// Rand overrides the food placement source. When nil a PCG generator
	// seeded with Seed is used.
	Rand Rand
	Seed uint64
}

// Game owns the whole simulation state of one play session.
// It is not safe for concurrent use; the caller that advances it is the
// caller that reads it.
type Game struct {
	width  int
	height int

	grid        *Grid
	teleporters *TeleporterSet
	doors       *DoorSet
	body        Body
	queue       DirectionQueue
	clock       *Clock
	rng         Rand

	head      Cell
	heading   Direction
	targetLen int
	food      Cell

	ticks    uint64
	collided bool
	blocker  ObstacleKind
}

// New builds a game with the default layout: a vertical wall down the middle
// column with a periodic door in its gap, and a two-way teleporter linking
// opposite corners.
func New(opts Options) (*Game, error) {
	if opts.Width < MinFieldSize || opts.Height < MinFieldSize {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrInvalidField, opts.Width, opts.Height, MinFieldSize, MinFieldSize)
	}
	if opts.TickInterval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, opts.TickInterval)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	g := &Game{
		width:       opts.Width,
		height:      opts.Height,
		grid:        NewGrid(opts.Width, opts.Height),
		teleporters: NewTeleporterSet(opts.Width),
		doors:       NewDoorSet(),
		clock:       NewClock(opts.TickInterval),
		rng:         rng,
		head:        C(opts.Width/4, opts.Height/2),
		heading:     Down,
		targetLen:   StartLength,
		food:        C(1, 1),
	}
	buildDefaultLayout(g)
	return g, nil
}

// Default builds a 20x20 game ticking every 300ms.
func Default(seed uint64) *Game {
	g, err := New(Options{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		TickInterval: DefaultTickInterval,
		Seed:         seed,
	})
	if err != nil {
		// The defaults are always valid.
		panic(err)
	}
	return g
}

// Key is a raw directional key press.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// HandleKey queues the direction bound to k. Other keys are ignored.
func (g *Game) HandleKey(k Key) {
	switch k {
	case KeyUp:
		g.queue.Enqueue(Up)
	case KeyDown:
		g.queue.Enqueue(Down)
	case KeyLeft:
		g.queue.Enqueue(Left)
	case KeyRight:
		g.queue.Enqueue(Right)
	}
}

// Enqueue queues a turn request directly.
func (g *Game) Enqueue(d Direction) {
	g.queue.Enqueue(d)
}

// MakeStep integrates dt and, once a full tick interval has accumulated,
// performs exactly one discrete step and reports its outcome.
//
// The only error is ErrBoardFull, returned alongside EventEat when the food
// cannot be relocated. After a collision the game is terminal and every
// further call returns EventCollision without touching state.
func (g *Game) MakeStep(dt time.Duration) (Event, error) {
	if g.collided {
		return EventCollision, nil
	}
	if !g.clock.Advance(dt) {
		return EventNone, nil
	}
	g.ticks++

	// Doors keep time even if this step ends in a collision.
	g.doors.Tick()

	event := EventNone
	if d, ok := g.queue.Dequeue(); ok && g.turn(d) {
		event = EventTurn
	}
	return g.advance(event)
}

// turn adopts d unless it reverses the current heading. Repeating the
// current heading is accepted but changes nothing.
func (g *Game) turn(d Direction) bool {
	if d.IsOpposite(g.heading) || d == g.heading {
		return false
	}
	g.heading = d
	return true
}

func (g *Game) advance(event Event) (Event, error) {
	g.body.Push(g.head, g.heading)

	next := g.grid.Clamp(g.head.Step(g.heading))
	if kind := g.Blocker(next); kind != ObstacleNone {
		// The push above is not rolled back; the session is over.
		g.collided = true
		g.blocker = kind
		return EventCollision, nil
	}

	if dest, ok := g.teleporters.Resolve(next); ok {
		next = dest
		event = promote(event, EventTeleport)
	}
	g.head = next

	var err error
	if g.head == g.food {
		g.targetLen++
		event = promote(event, EventEat)
		err = g.relocateFood()
	}

	g.body.Trim(g.targetLen)
	return event, err
}

// relocateFood moves the food to a uniformly random free cell. Rejection
// sampling is bounded; a full scan of free cells backs it up before giving
// up with ErrBoardFull.
func (g *Game) relocateFood() error {
	attempts := 4 * g.width * g.height
	for range attempts {
		c := C(g.rng.Intn(g.width), g.rng.Intn(g.height))
		if g.CellIsFree(c) {
			g.food = c
			return nil
		}
	}

	free := g.FreeCells()
	if len(free) == 0 {
		return ErrBoardFull
	}
	g.food = free[g.rng.Intn(len(free))]
	return nil
}

// Blocker returns what occupies c, checked in the order head, body, wall,
// door. Cells outside the field report ObstacleWall.
func (g *Game) Blocker(c Cell) ObstacleKind {
	switch {
	case !g.grid.InBounds(c):
		return ObstacleWall
	case c == g.head:
		return ObstacleHead
	case g.body.Occupies(c):
		return ObstacleBody
	case g.grid.IsObstacle(c):
		return ObstacleWall
	case g.doors.IsBlocking(c):
		return ObstacleDoor
	}
	return ObstacleNone
}

// CellIsFree reports whether the snake may move onto c and food may be
// placed there. The food cell itself is not considered.
func (g *Game) CellIsFree(c Cell) bool {
	return g.Blocker(c) == ObstacleNone
}

// FreeCells returns every currently free cell in row-major order.
func (g *Game) FreeCells() []Cell {
	var cells []Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if c := C(x, y); g.CellIsFree(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// InterpolatedHead returns the head position between the previous cell and
// the committed head, according to tick progress.
func (g *Game) InterpolatedHead() Vec2 {
	p := g.clock.Progress() - 1
	return Vec2{
		X: float64(g.head.X) + float64(g.heading.X)*p,
		Y: float64(g.head.Y) + float64(g.heading.Y)*p,
	}
}

// InterpolatedTail returns the tail position moving toward the next
// segment. A body still growing toward its target length keeps the tail
// still. The second result is false when the body is empty.
func (g *Game) InterpolatedTail() (Vec2, bool) {
	tail, ok := g.body.Tail()
	if !ok {
		return Vec2{}, false
	}
	p := 0.0
	if g.body.Len() == g.targetLen {
		p = g.clock.Progress()
	}
	return Vec2{
		X: float64(tail.Cell.X) + float64(tail.Heading.X)*p,
		Y: float64(tail.Cell.Y) + float64(tail.Heading.Y)*p,
	}, true
}

// Width returns the field width.
func (g *Game) Width() int { return g.width }

// Height returns the field height.
func (g *Game) Height() int { return g.height }

// Head returns the committed head cell.
func (g *Game) Head() Cell { return g.head }

// Heading returns the current direction of travel.
func (g *Game) Heading() Direction { return g.heading }

// Food returns the food cell.
func (g *Game) Food() Cell { return g.food }

// CurrentLength returns the target body length including pending growth.
func (g *Game) CurrentLength() int { return g.targetLen }

// Body returns the retained body segments, tail first.
func (g *Game) Body() []Segment { return g.body.Segments() }

// BodyLen returns the number of retained body segments.
func (g *Game) BodyLen() int { return g.body.Len() }

// IsObstacle reports whether c holds a static wall.
func (g *Game) IsObstacle(c Cell) bool { return g.grid.IsObstacle(c) }

// Obstacles returns every static wall cell.
func (g *Game) Obstacles() []Cell { return g.grid.Obstacles() }

// Teleporters returns every one-way teleporter entry.
func (g *Game) Teleporters() []Teleporter { return g.teleporters.All() }

// Doors returns the footprint and state of every door.
func (g *Game) Doors() []DoorState { return g.doors.States() }

// Progress returns the fraction of the current tick interval elapsed.
func (g *Game) Progress() float64 { return g.clock.Progress() }

// TickInterval returns the configured tick interval.
func (g *Game) TickInterval() time.Duration { return g.clock.Interval() }

// Ticks returns the number of discrete steps taken.
func (g *Game) Ticks() uint64 { return g.ticks }

// PendingTurns returns the queued directions, oldest first.
func (g *Game) PendingTurns() []Direction { return g.queue.Pending() }

// Collided reports whether the session has ended in a collision.
func (g *Game) Collided() bool { return g.collided }

// CollisionCause returns what the head ran into, or ObstacleNone.
func (g *Game) CollisionCause() ObstacleKind { return g.blocker }
