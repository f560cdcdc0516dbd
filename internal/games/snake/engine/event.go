package engine

import "errors"

// Event is the single semantic outcome of a call to MakeStep.
// Values are ordered by reporting precedence: when several things happen on
// one tick the highest value is returned.
type Event int

const (
	EventNone Event = iota
	EventTurn
	EventTeleport
	EventEat
	EventCollision
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventTurn:
		return "turn"
	case EventTeleport:
		return "teleport"
	case EventEat:
		return "eat"
	case EventCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// promote returns the higher-precedence of two events.
func promote(cur, next Event) Event {
	if next > cur {
		return next
	}
	return cur
}

// ObstacleKind names what makes a cell unwalkable.
type ObstacleKind int

const (
	ObstacleNone ObstacleKind = iota
	ObstacleHead
	ObstacleBody
	ObstacleWall
	ObstacleDoor
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleNone:
		return "none"
	case ObstacleHead:
		return "head"
	case ObstacleBody:
		return "body"
	case ObstacleWall:
		return "wall"
	case ObstacleDoor:
		return "door"
	default:
		return "unknown"
	}
}

var (
	// ErrBoardFull is returned when no free cell is left for the food.
	ErrBoardFull = errors.New("engine: no free cell left for food")

	// ErrInvalidField is returned for field dimensions the layout cannot fit.
	ErrInvalidField = errors.New("engine: invalid field dimensions")

	// ErrInvalidInterval is returned for a non-positive tick interval.
	ErrInvalidInterval = errors.New("engine: tick interval must be positive")
)
