package jumper

import "github.com/vovakirdan/tui-jumper/internal/sched"

// stageLeft is the x coordinate of the stage's left edge.
const stageLeft = 0

// Loop is the per-frame collision and scoring pass.
type Loop struct {
	g     *Game
	frame sched.FrameID // Pending frame request, zero when stopped
}

// Start requests the first frame. Calling it while running does nothing.
func (l *Loop) Start() {
	if l.frame != 0 {
		return
	}
	l.frame = l.g.clock.RequestFrame(l.tick)
}

// Stop cancels the pending frame. Idempotent.
func (l *Loop) Stop() {
	l.g.clock.CancelFrame(l.frame)
	l.frame = 0
}

// Running reports whether a frame is pending.
func (l *Loop) Running() bool {
	return l.frame != 0
}

func (l *Loop) tick() {
	l.frame = 0
	if l.g.state.mode != ModePlaying {
		return
	}
	if l.step() {
		l.g.endGame()
		return
	}
	l.frame = l.g.clock.RequestFrame(l.tick)
}

// step processes every tracked obstacle, newest first, and reports a collision.
// Processing stops at the first collision.
func (l *Loop) step() bool {
	g := l.g
	player := g.pres.PlayerBox()
	playerHit := player.Shrink(g.cfg.Hitbox.PlayerShrink)

	for i := len(g.state.obstacles) - 1; i >= 0; i-- {
		o := g.state.obstacles[i]

		box, ok := g.pres.ObstacleBox(o.handle)
		if !ok {
			g.spawner.remove(i)
			continue
		}

		if box.Right < stageLeft {
			g.spawner.remove(i)
			continue
		}

		if !o.scored && box.Right < player.Left {
			g.credit(o)
		}

		if box.Shrink(g.cfg.Hitbox.ObstacleShrink).Intersects(playerHit) {
			return true
		}
	}
	return false
}
