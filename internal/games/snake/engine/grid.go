package engine

// Grid is the static obstacle map of the playing field.
// Cells are stored in row-major order: index = y*W + x.
// The obstacle flags are fixed once the Game has been built.
type Grid struct {
	W     int
	H     int
	walls []bool
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		walls: make([]bool, w*h),
	}
}

func (g *Grid) index(c Cell) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the cell lies inside the field.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Clamp pulls c back inside the field on each axis independently.
func (g *Grid) Clamp(c Cell) Cell {
	return Cell{
		X: clampInt(c.X, 0, g.W-1),
		Y: clampInt(c.Y, 0, g.H-1),
	}
}

// SetObstacle marks a cell as a static wall. Out-of-bounds cells are ignored.
func (g *Grid) SetObstacle(c Cell) {
	if g.InBounds(c) {
		g.walls[g.index(c)] = true
	}
}

// IsObstacle returns true if the cell holds a static wall.
// Out-of-bounds cells report false; callers clamp before asking.
func (g *Grid) IsObstacle(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.walls[g.index(c)]
}

// Obstacles returns every wall cell in row-major order.
func (g *Grid) Obstacles() []Cell {
	var cells []Cell
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.walls[y*g.W+x] {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}
