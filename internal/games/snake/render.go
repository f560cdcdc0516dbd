package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/engine"
)

// Glyphs used on the field.
const (
	glyphWall       = '#'
	glyphDoorClosed = '='
	glyphDoorOpen   = '.'
	glyphTeleporter = '@'
	glyphFood       = '*'
	glyphBody       = 'o'
	glyphTail       = '·'
)

func headGlyph(d engine.Direction) rune {
	switch d {
	case engine.Up:
		return '^'
	case engine.Down:
		return 'v'
	case engine.Left:
		return '<'
	default:
		return '>'
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.cfg.FieldW+2, g.cfg.FieldH+2+hudHeight))
		return
	}

	snap := g.eng.Snapshot()
	field := g.fieldRect(dst)
	dst.DrawBox(field, core.ColorGray)
	origin := field.Inset(1)

	put := func(c engine.Cell, r rune, color core.Color) {
		dst.SetCell(origin.X+c.X, origin.Y+c.Y, r, color)
	}

	for _, c := range snap.Walls {
		put(c, glyphWall, core.ColorGray)
	}
	for _, d := range snap.Doors {
		glyph, color := glyphDoorClosed, core.ColorYellow
		if d.Open {
			glyph, color = glyphDoorOpen, core.ColorBrightYellow
		}
		for _, c := range d.Cells {
			put(c, glyph, color)
		}
	}
	for _, t := range snap.Teleporters {
		put(t.Start, glyphTeleporter, core.ColorBrightMagenta)
	}
	put(snap.Food, glyphFood, core.ColorBrightRed)

	for i, s := range snap.Body {
		if i == 0 && snap.HasTail {
			continue
		}
		put(s.Cell, glyphBody, core.ColorGreen)
	}
	if snap.HasTail {
		put(g.onField(snap.TailPos, snap.Body[0].Cell), glyphTail, core.ColorGreen)
	}

	head := snap.Head
	if !g.gameOver {
		head = g.onField(snap.HeadPos, snap.Head)
	}
	headColor := core.ColorBrightGreen
	if snap.Collided {
		headColor = core.ColorBrightRed
	}
	put(head, headGlyph(snap.Heading), headColor)

	switch {
	case g.won:
		g.renderOverlay(dst, "Board Full!", fmt.Sprintf("Score: %d  Press R", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Hit %s. Press R to restart", snap.Cause))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// onField rounds an interpolated position to a cell, falling back when the
// rounded cell leaves the field (mid-teleport interpolation).
func (g *Game) onField(v engine.Vec2, fallback engine.Cell) engine.Cell {
	c := v.Round()
	if c.X < 0 || c.X >= g.eng.Width() || c.Y < 0 || c.Y >= g.eng.Height() {
		return fallback
	}
	return c
}

// fieldRect returns the bordered field area, centered horizontally below
// the HUD.
func (g *Game) fieldRect(dst *core.Screen) core.Rect {
	w, h := g.eng.Width()+2, g.eng.Height()+2
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	door := "none"
	if doors := g.eng.Doors(); len(doors) > 0 {
		door = "closed"
		if doors[0].Open {
			door = "open"
		}
		door = fmt.Sprintf("%s (%d)", door, doors[0].Countdown)
	}

	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d  Door: %s", g.score, g.eng.CurrentLength(), door)
	if g.paused {
		hud += "  [paused]"
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
