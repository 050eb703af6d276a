// Package stage implements jumper.Presentation on a logical board measured in
// stage units. It owns obstacle motion and the player's jump arc, and rasterises
// the board into a core.Screen or a Frame for graphical hosts.
package stage

import (
	"time"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

// Clock supplies the current time. *sched.Scheduler satisfies it.
type Clock interface {
	Now() time.Duration
}

// Option configures a Stage.
type Option func(*Stage)

// WithoutTemplate makes the stage refuse to create obstacle visuals,
// as when the page that hosts the game lacks a pipe sprite.
func WithoutTemplate() Option {
	return func(s *Stage) {
		s.template = false
	}
}

// sprite is a moving obstacle visual.
type sprite struct {
	handle jumper.ObstacleHandle
	params jumper.ObstacleParams
	start  time.Duration // When the crossing began
}

// Stage is the board the game is played on.
type Stage struct {
	cfg      config.JumperConfig
	clock    Clock
	template bool

	visual    jumper.PlayerVisual
	jumpStart time.Duration
	lift      float64 // Height held by a crashed player

	sprites []*sprite // Creation order, oldest first
	next    jumper.ObstacleHandle

	frozen   bool
	frozenAt time.Duration
	restart  bool
}

// New creates a stage with the player running on the ground.
func New(cfg config.JumperConfig, clock Clock, opts ...Option) *Stage {
	s := &Stage{
		cfg:      cfg,
		clock:    clock,
		template: true,
		visual:   jumper.VisualRunning,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Width returns the board width in stage units.
func (s *Stage) Width() float64 { return s.cfg.Stage.Width }

// Height returns the board height in stage units.
func (s *Stage) Height() float64 { return s.cfg.Stage.Height }

// now returns the time obstacle motion is evaluated at.
func (s *Stage) now() time.Duration {
	if s.frozen {
		return s.frozenAt
	}
	return s.clock.Now()
}

// height returns how far the player is above the ground.
// The arc is a parabola peaking at JumpHeight halfway through the jump.
func (s *Stage) height() float64 {
	switch s.visual {
	case jumper.VisualCrashed:
		return s.lift
	case jumper.VisualJumping:
		d := s.cfg.Player.JumpDuration
		if d <= 0 {
			return 0
		}
		p := float64(s.clock.Now()-s.jumpStart) / float64(d)
		if p <= 0 || p >= 1 {
			return 0
		}
		return s.cfg.Player.JumpHeight * 4 * p * (1 - p)
	default:
		return 0
	}
}

// PlayerBox returns the player's box. A crashed player is drawn narrower and
// shifted right.
func (s *Stage) PlayerBox() core.Box {
	p := s.cfg.Player
	top := s.cfg.Stage.Height - p.Height - s.height()
	if s.visual == jumper.VisualCrashed {
		return core.NewBox(p.X+p.CrashedOffset, top, p.CrashedWidth, p.Height)
	}
	return core.NewBox(p.X, top, p.Width, p.Height)
}

// PlayerVisual returns the current visual state.
func (s *Stage) PlayerVisual() jumper.PlayerVisual {
	return s.visual
}

// SetPlayerVisual switches the player's visual. Entering Jumping starts the arc;
// entering Crashed holds the current height.
func (s *Stage) SetPlayerVisual(v jumper.PlayerVisual) {
	switch v {
	case jumper.VisualJumping:
		s.jumpStart = s.clock.Now()
	case jumper.VisualCrashed:
		s.lift = s.height()
	default:
		s.lift = 0
	}
	s.visual = v
}

// ObstacleBox returns the obstacle's box at the current time. The left edge
// moves linearly from the right edge of the board to just past the left edge
// over the crossing duration, and keeps going afterwards.
func (s *Stage) ObstacleBox(h jumper.ObstacleHandle) (core.Box, bool) {
	sp := s.find(h)
	if sp == nil {
		return core.Box{}, false
	}
	return s.boxOf(sp), true
}

func (s *Stage) boxOf(sp *sprite) core.Box {
	o := s.cfg.Obstacles
	w := s.cfg.Stage.Width
	left := w
	if d := sp.params.Crossing; d > 0 {
		elapsed := float64(s.now() - sp.start)
		left = w - (w+o.Width)*elapsed/float64(d)
	}
	top := s.cfg.Stage.Height - o.Height - sp.params.Offset
	return core.NewBox(left, top, o.Width, o.Height)
}

func (s *Stage) find(h jumper.ObstacleHandle) *sprite {
	for _, sp := range s.sprites {
		if sp.handle == h {
			return sp
		}
	}
	return nil
}

// CreateObstacleVisual starts a new obstacle at the right edge.
func (s *Stage) CreateObstacleVisual(p jumper.ObstacleParams) (jumper.ObstacleHandle, error) {
	if !s.template {
		return 0, jumper.ErrNoTemplate
	}
	s.next++
	s.sprites = append(s.sprites, &sprite{
		handle: s.next,
		params: p,
		start:  s.now(),
	})
	return s.next, nil
}

// RemoveObstacleVisual drops an obstacle. Unknown handles are ignored.
func (s *Stage) RemoveObstacleVisual(h jumper.ObstacleHandle) {
	for i, sp := range s.sprites {
		if sp.handle == h {
			s.sprites = append(s.sprites[:i], s.sprites[i+1:]...)
			return
		}
	}
}

// Obstacles returns the number of obstacle visuals on the board.
func (s *Stage) Obstacles() int {
	return len(s.sprites)
}

// FreezeObstacles stops all obstacle motion.
func (s *Stage) FreezeObstacles() {
	if s.frozen {
		return
	}
	s.frozen = true
	s.frozenAt = s.clock.Now()
}

// ResumeObstacles continues motion from where it was frozen.
func (s *Stage) ResumeObstacles() {
	if !s.frozen {
		return
	}
	paused := s.clock.Now() - s.frozenAt
	for _, sp := range s.sprites {
		sp.start += paused
	}
	s.frozen = false
}

// Frozen reports whether obstacle motion is stopped.
func (s *Stage) Frozen() bool {
	return s.frozen
}

// ShowRestart displays the restart affordance.
func (s *Stage) ShowRestart() { s.restart = true }

// HideRestart hides the restart affordance.
func (s *Stage) HideRestart() { s.restart = false }

// RestartShown reports whether the restart affordance is visible.
func (s *Stage) RestartShown() bool {
	return s.restart
}
