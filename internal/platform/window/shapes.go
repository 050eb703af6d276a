package window

import (
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/session"
)

const (
	groundHeight = 40
	lipHeight    = 14
	lipOverhang  = 6
)

// shape is one filled rectangle in stage units.
type shape struct {
	box   core.Box
	color core.Color
}

// shapes lays out a frame back to front: ground, obstacles, player.
func shapes(f session.Frame) []shape {
	out := make([]shape, 0, 2+2*len(f.Obstacles))
	out = append(out, shape{
		box:   core.NewBox(0, f.Height, f.Width, groundHeight),
		color: core.ColorGray,
	})

	for _, o := range f.Obstacles {
		if o.Flying {
			out = append(out, shape{box: o.Box, color: core.ColorYellow})
			continue
		}
		out = append(out, shape{box: o.Box, color: core.ColorGreen})
		lip := core.Box{
			Left:   o.Box.Left - lipOverhang,
			Top:    o.Box.Top,
			Right:  o.Box.Right + lipOverhang,
			Bottom: o.Box.Top + min(lipHeight, o.Box.Height()),
		}
		out = append(out, shape{box: lip, color: core.ColorBrightGreen})
	}

	player := core.ColorRed
	if f.Visual == jumper.VisualCrashed {
		player = core.ColorBrightRed
	}
	return append(out, shape{box: f.Player, color: player})
}
