package app

import (
	"github.com/dshills/mep/internal/plugin"
	"github.com/dshills/mep/internal/renderer"
)

// Scene colors.
var (
	sceneFill    = renderer.ColorFromRGB(32, 64, 160)
	sceneOutline = renderer.ColorWhite
	sceneLine    = renderer.ColorRed
	sceneSweep   = renderer.ColorYellow
)

// DemoScene returns a draw function exercising every primitive: a filled
// panel, its outline, both diagonals and a line sweeping across the panel.
func DemoScene(width, height int) func(frame int, g plugin.GraphicPlugin) {
	return func(frame int, g plugin.GraphicPlugin) {
		if width <= 0 || height <= 0 {
			return
		}
		x, y := width/8, height/8
		w, h := width-2*x, height-2*y

		g.SetStyle(renderer.NewStyle(sceneFill))
		g.FillRect(x, y, w, h)

		g.SetStyle(renderer.NewStyle(sceneOutline))
		g.DrawRect(x, y, w, h)

		g.SetStyle(renderer.NewStyle(sceneLine))
		g.DrawLine(x, y, x+w-1, y+h-1)
		g.DrawLine(x+w-1, y, x, y+h-1)

		if w > 2 {
			sx := x + 1 + frame%(w-2)
			g.SetStyle(renderer.NewStyle(sceneSweep))
			g.DrawLine(sx, y+1, sx, y+h-2)
		}
	}
}
