package jumper

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/sched"
)

// Spawner creates obstacles on a periodic timer and schedules their fallback
// removal. At most one spawn timer is active at any time.
type Spawner struct {
	state  *State
	pres   Presentation
	clock  *sched.Scheduler
	cfg    config.ObstacleConfig
	rng    *rand.Rand
	logger *log.Logger

	timer    sched.TimerID // Active spawn timer, zero when stopped
	interval time.Duration

	onSpawn func(o *Obstacle)
}

func newSpawner(state *State, pres Presentation, clock *sched.Scheduler, cfg config.ObstacleConfig, rng *rand.Rand, logger *log.Logger) *Spawner {
	return &Spawner{
		state:  state,
		pres:   pres,
		clock:  clock,
		cfg:    cfg,
		rng:    rng,
		logger: logger,
	}
}

// Running reports whether the spawn timer is armed.
func (sp *Spawner) Running() bool {
	return sp.timer != 0
}

// Interval returns the current spawn cadence.
func (sp *Spawner) Interval() time.Duration {
	return sp.interval
}

// SpawnOne creates a single obstacle. It does nothing once the game is over
// or when the presentation cannot produce a visual.
func (sp *Spawner) SpawnOne() {
	if sp.state.mode == ModeGameOver {
		return
	}

	offset, flying := sp.pickOffset()
	crossing := sp.state.difficulty.CrossingDuration

	handle, err := sp.pres.CreateObstacleVisual(ObstacleParams{
		Crossing: crossing,
		Offset:   offset,
		Flying:   flying,
	})
	if err != nil {
		sp.logger.Warn("obstacle not spawned", "error", err)
		return
	}

	o := &Obstacle{
		id:        sp.state.newObstacleID(),
		handle:    handle,
		offset:    offset,
		flying:    flying,
		crossing:  crossing,
		createdAt: sp.clock.Now(),
	}
	id := o.id
	o.removal = sp.clock.AfterFunc(crossing+sp.cfg.FallbackSlack, func() {
		sp.expire(id)
	})
	sp.state.track(o)

	if sp.onSpawn != nil {
		sp.onSpawn(o)
	}
}

// pickOffset decides whether the next obstacle flies and at what elevation.
func (sp *Spawner) pickOffset() (float64, bool) {
	if sp.rng.Float64() >= sp.cfg.FlyingChance {
		return 0, false
	}
	span := sp.cfg.FlyingMax - sp.cfg.FlyingMin
	return sp.cfg.FlyingMin + sp.rng.Float64()*span, true
}

// Start arms the spawn timer at the given cadence, replacing any previous one,
// and spawns one obstacle right away.
func (sp *Spawner) Start(interval time.Duration) {
	sp.arm(interval)
	sp.SpawnOne()
}

// Retarget changes the cadence. A running timer is reissued without an
// immediate spawn; a stopped spawner only remembers the interval.
func (sp *Spawner) Retarget(interval time.Duration) {
	if sp.timer == 0 {
		sp.interval = interval
		return
	}
	sp.arm(interval)
}

func (sp *Spawner) arm(interval time.Duration) {
	sp.clock.Cancel(sp.timer)
	sp.interval = interval
	sp.timer = sp.clock.Every(interval, sp.SpawnOne)
}

// Stop cancels the spawn timer. Pending fallback removals are left alone.
func (sp *Spawner) Stop() {
	sp.clock.Cancel(sp.timer)
	sp.timer = 0
}

// Clear removes every tracked obstacle together with its visual and timer.
func (sp *Spawner) Clear() {
	for i := len(sp.state.obstacles) - 1; i >= 0; i-- {
		sp.remove(i)
	}
}

// remove drops the obstacle at index i.
func (sp *Spawner) remove(i int) {
	o := sp.state.obstacles[i]
	sp.clock.Cancel(o.removal)
	sp.pres.RemoveObstacleVisual(o.handle)
	sp.state.untrack(i)
}

// expire is the fallback removal. The obstacle may already be gone.
func (sp *Spawner) expire(id ObstacleID) {
	i := sp.state.indexOf(id)
	if i < 0 {
		return
	}
	sp.state.obstacles[i].removal = 0
	sp.remove(i)
	sp.logger.Debug("obstacle expired", "id", id, "active", len(sp.state.obstacles))
}
