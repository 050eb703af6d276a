// Package window runs the jumper game in a desktop window with ebiten.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/session"
)

// Game adapts a session to ebiten's Update/Draw loop.
// ebiten calls Update at a fixed TPS, so each update advances the clock one tick.
type Game struct {
	session *session.Session
	step    time.Duration
	logger  *log.Logger
	touches []ebiten.TouchID
}

// NewGame wraps s. tps is the update rate the window runs at.
func NewGame(s *session.Session, tps int, logger *log.Logger) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session: s,
		step:    time.Second / time.Duration(tps),
		logger:  logger,
	}
}

// Update applies input and advances the game by one tick.
func (g *Game) Update() error {
	a := g.action()
	if a != core.ActionNone {
		g.logger.Debug("input", "action", a)
	}

	switch a {
	case core.ActionQuit:
		g.logger.Info("window closed", "score", g.session.State().Score)
		return ebiten.Termination
	case core.ActionJump:
		if g.session.State().GameOver {
			g.session.Restart()
		} else {
			g.session.Jump()
		}
	case core.ActionRestart:
		g.session.Restart()
	case core.ActionPause:
		g.session.TogglePause()
	}

	g.session.Advance(g.step)
	return nil
}

func (g *Game) action() core.Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return core.ActionQuit
	case inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		inpututil.IsKeyJustPressed(ebiten.KeyW),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		return core.ActionJump
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return core.ActionRestart
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		return core.ActionPause
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		return core.ActionJump
	}
	return core.ActionNone
}

// Draw paints the current frame in stage units.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	f := g.session.Frame()
	for _, s := range shapes(f) {
		b := s.box
		vector.DrawFilledRect(screen,
			float32(b.Left), float32(b.Top), float32(b.Width()), float32(b.Height()),
			rgba(s.color), false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Level: %d", f.Score, f.Level), 8, 8)

	switch {
	case f.GameOver:
		g.banner(screen, f, fmt.Sprintf("GAME OVER\n\nScore: %d\nPress R or click to restart", f.Score))
	case f.Paused:
		g.banner(screen, f, "PAUSED\n\nPress P to resume")
	}
}

func (g *Game) banner(screen *ebiten.Image, f session.Frame, msg string) {
	const w, h = 240, 80
	x := float32(f.Width-w) / 2
	y := float32(f.Height-h) / 2
	vector.DrawFilledRect(screen, x, y, w, h, shadeColor, false)
	ebitenutil.DebugPrintAt(screen, msg, int(x)+16, int(y)+12)
}

// Layout keeps the logical screen at stage size plus the ground strip;
// ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	f := g.session.Frame()
	return int(f.Width), int(f.Height) + groundHeight
}

// Run opens the window and blocks until it is closed.
func Run(s *session.Session, tps int, logger *log.Logger) error {
	g := NewGame(s, tps, logger)
	f := s.Frame()

	ebiten.SetWindowTitle("Jumper")
	ebiten.SetWindowSize(int(f.Width), int(f.Height)+groundHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(time.Second / g.step))

	defer s.Close()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
