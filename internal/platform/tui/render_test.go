package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	assert.Equal(t, "ab  \n cd ", RenderScreen(s))
}

func TestRenderScreenKeepsColoredRuns(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawTextColor(1, 0, "ooo", core.ColorGreen)
	s.SetCell(5, 0, '*', core.ColorBrightRed)

	out := RenderScreen(s)
	assert.Contains(t, out, "ooo")
	assert.Contains(t, out, "*")
	assert.NotContains(t, out, "\n")
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Equal(t, "x", styleFor(core.Color(200)).Render("x"))
}
