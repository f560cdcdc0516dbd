// Package engine is the simulation core of the snake game.
//
// It owns all authoritative game state and advances it on a fixed discrete
// time step. Presentation (drawing, audio, menus) lives elsewhere and only
// reads the state exposed here and the Event values returned by MakeStep.
// The package has no I/O and is driven entirely by caller-supplied time
// deltas, so step sequences are reproducible in tests.
package engine

import "fmt"

// Cell is an integer grid coordinate. X grows to the right, Y grows downward.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the cell one unit away in direction d.
func (c Cell) Step(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Direction is a unit vector with ±1 on exactly one axis.
type Direction struct {
	X int
	Y int
}

// The four valid directions. The zero Direction is not a valid heading.
var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	return (d.X == 0) != (d.Y == 0) && d.X*d.X+d.Y*d.Y == 1
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsOpposite reports whether other is the exact reverse of d on both axes.
func (d Direction) IsOpposite(other Direction) bool {
	return d.X == -other.X && d.Y == -other.Y
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("dir(%d,%d)", d.X, d.Y)
	}
}

// Vec2 is a continuous position used for interpolated rendering.
type Vec2 struct {
	X float64
	Y float64
}

// Round returns the nearest grid cell to v.
func (v Vec2) Round() Cell {
	return Cell{X: roundHalfUp(v.X), Y: roundHalfUp(v.Y)}
}

func roundHalfUp(f float64) int {
	if f < 0 {
		return -int(-f + 0.5)
	}
	return int(f + 0.5)
}

// clampInt restricts val to [lo, hi].
func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
