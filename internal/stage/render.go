package stage

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

var _ jumper.Presentation = (*Stage)(nil)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	CrashedChar = '▒'
	PipeChar    = '▓'
	PipeLipChar = '█'
	FlyingChar  = '▒'
	GroundChar  = '═'
)

// HUD is the status line drawn above the board.
type HUD struct {
	Score  int
	Level  int
	Paused bool
}

// Render draws the board scaled to the screen. Row 0 holds the HUD and the
// last row the ground; the board fills the rows in between.
func (s *Stage) Render(dst *core.Screen, hud HUD) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 1 || h < 3 {
		return
	}

	v := viewport{
		sx:   float64(w) / s.cfg.Stage.Width,
		sy:   float64(h-2) / s.cfg.Stage.Height,
		top:  1,
		rows: h - 2,
	}

	dst.DrawHLine(0, h-1, w, GroundChar, core.ColorGray)

	for _, sp := range s.sprites {
		r := v.cells(s.boxOf(sp))
		if sp.params.Flying {
			dst.DrawRect(r, FlyingChar, core.ColorYellow)
			continue
		}
		dst.DrawRect(r, PipeChar, core.ColorGreen)
		dst.DrawHLine(r.X, r.Y, r.W, PipeLipChar, core.ColorBrightGreen)
	}

	player := v.cells(s.PlayerBox())
	if s.visual == jumper.VisualCrashed {
		dst.DrawRect(player, CrashedChar, core.ColorBrightRed)
	} else {
		dst.DrawRect(player, PlayerChar, core.ColorRed)
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", hud.Score))
	levelText := fmt.Sprintf(" Level: %d ", hud.Level)
	dst.DrawTextColored(w-len(levelText)-2, 0, levelText, core.ColorCyan)

	if hud.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if s.restart {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", hud.Score))
	}
}

// epsilon absorbs float error when scaling edges that land on a cell boundary.
const epsilon = 1e-9

// viewport maps stage units to the board rows of a screen.
type viewport struct {
	sx, sy float64
	top    int
	rows   int
}

// cells converts a box to the cell rectangle it covers, at least one cell in
// size and clipped vertically to the board.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left*v.sx + epsilon))
	x1 := int(math.Ceil(b.Right*v.sx - epsilon))
	y0 := core.Clamp(int(math.Floor(b.Top*v.sy+epsilon)), 0, v.rows-1)
	y1 := core.Clamp(int(math.Ceil(b.Bottom*v.sy-epsilon)), 0, v.rows)
	return core.NewRect(x0, v.top+y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Frame is the board at one instant, in stage units, for graphical hosts.
type Frame struct {
	Width     float64
	Height    float64
	Player    core.Box
	Visual    jumper.PlayerVisual
	Obstacles []ObstacleFrame
	Restart   bool
}

// ObstacleFrame is one obstacle in a Frame.
type ObstacleFrame struct {
	Box    core.Box
	Flying bool
}

// Snapshot captures the board for drawing outside the terminal.
func (s *Stage) Snapshot() Frame {
	f := Frame{
		Width:     s.cfg.Stage.Width,
		Height:    s.cfg.Stage.Height,
		Player:    s.PlayerBox(),
		Visual:    s.visual,
		Obstacles: make([]ObstacleFrame, 0, len(s.sprites)),
		Restart:   s.restart,
	}
	for _, sp := range s.sprites {
		f.Obstacles = append(f.Obstacles, ObstacleFrame{Box: s.boxOf(sp), Flying: sp.params.Flying})
	}
	return f
}
