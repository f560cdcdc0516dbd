package engine

// Default layout parameters.
const (
	doorPeriod   = 5
	doorGapStart = 5
	doorGapEnd   = 8
)

// buildDefaultLayout places the stock obstacles: a wall down column W/2
// broken only by rows [5,8), a door filling that gap, and a two-way
// teleporter between the bottom-right and top-left corners.
func buildDefaultLayout(g *Game) {
	mid := g.width / 2

	var gap []Cell
	for y := 0; y < g.height; y++ {
		c := C(mid, y)
		if y >= doorGapStart && y < doorGapEnd {
			gap = append(gap, c)
			continue
		}
		g.grid.SetObstacle(c)
	}
	g.doors.Add(NewDoor(doorPeriod, gap...))

	g.teleporters.InsertTwoWay(C(g.width-1, g.height-1), C(0, 0))
}
