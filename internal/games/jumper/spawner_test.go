package jumper

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/sched"
)

func newTestSpawner(pres Presentation, clock *sched.Scheduler, seed int64) (*Spawner, *State) {
	cfg := config.DefaultJumperConfig()
	state := &State{
		mode:       ModePlaying,
		difficulty: config.NewDifficultyCurve(cfg.Difficulty).At(0),
	}
	sp := newSpawner(state, pres, clock, cfg.Obstacles, rand.New(rand.NewSource(seed)), log.New(io.Discard))
	return sp, state
}

func TestSpawnerSingleTimer(t *testing.T) {
	clock := sched.New()
	sp, state := newTestSpawner(newFakePresentation(), clock, 1)

	sp.Start(time.Second)
	first := sp.timer
	sp.Start(2 * time.Second)
	if clock.Active(first) {
		t.Error("Start should cancel the previous spawn timer")
	}
	second := sp.timer

	sp.Retarget(500 * time.Millisecond)
	if clock.Active(second) {
		t.Error("Retarget should cancel the previous spawn timer")
	}
	if len(state.obstacles) != 2 {
		t.Errorf("obstacles = %d, expected 2 (Retarget must not spawn)", len(state.obstacles))
	}

	// One spawn timer plus one fallback timer per obstacle
	if got := clock.PendingTimers(); got != 3 {
		t.Errorf("PendingTimers() = %d, expected 3", got)
	}

	clock.AdvanceTimers(500 * time.Millisecond)
	if len(state.obstacles) != 3 {
		t.Errorf("obstacles = %d, expected 3 after one retargeted interval", len(state.obstacles))
	}

	sp.Stop()
	sp.Stop()
	if sp.Running() {
		t.Error("Running() = true after Stop")
	}
	clock.AdvanceTimers(time.Second)
	if len(state.obstacles) != 3 {
		t.Errorf("obstacles = %d, expected no spawns after Stop", len(state.obstacles))
	}
}

func TestSpawnerRetargetWhileStopped(t *testing.T) {
	clock := sched.New()
	sp, _ := newTestSpawner(newFakePresentation(), clock, 1)

	sp.Retarget(700 * time.Millisecond)
	if sp.Running() {
		t.Error("Retarget should not start a stopped spawner")
	}
	if sp.Interval() != 700*time.Millisecond {
		t.Errorf("Interval() = %v, expected 700ms", sp.Interval())
	}
	if clock.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d, expected 0", clock.PendingTimers())
	}
}

func TestSpawnerNoTemplate(t *testing.T) {
	pres := newFakePresentation()
	pres.template = false
	clock := sched.New()
	sp, state := newTestSpawner(pres, clock, 1)

	sp.Start(time.Second)
	clock.AdvanceTimers(3 * time.Second)

	if len(state.obstacles) != 0 {
		t.Errorf("obstacles = %d, expected 0 without a template", len(state.obstacles))
	}
	if !sp.Running() {
		t.Error("spawner should keep running after a failed spawn")
	}
	if state.nextID != 0 {
		t.Errorf("nextID = %d, failed spawns should not consume ids", state.nextID)
	}
}

func TestSpawnerFlyingDistribution(t *testing.T) {
	pres := newFakePresentation()
	sp, _ := newTestSpawner(pres, sched.New(), 42)

	const n = 2000
	for i := 0; i < n; i++ {
		sp.SpawnOne()
	}

	flying := 0
	for _, p := range pres.created {
		if !p.Flying {
			if p.Offset != 0 {
				t.Fatalf("ground obstacle with Offset = %v", p.Offset)
			}
			continue
		}
		flying++
		if p.Offset < 40 || p.Offset >= 190 {
			t.Fatalf("flying Offset = %v, expected within [40, 190)", p.Offset)
		}
	}

	ratio := float64(flying) / n
	if ratio < 0.15 || ratio > 0.25 {
		t.Errorf("flying ratio = %v, expected about 0.2", ratio)
	}
}

func TestSpawnerFallbackSkipsRemoved(t *testing.T) {
	pres := newFakePresentation()
	clock := sched.New()
	sp, state := newTestSpawner(pres, clock, 1)

	sp.SpawnOne()
	o := state.obstacles[0]
	removal := o.removal

	sp.remove(0)
	if clock.Active(removal) {
		t.Error("removing an obstacle should cancel its fallback timer")
	}

	// A stale fallback for an unknown id does nothing
	sp.expire(o.ID())
	if len(pres.removed) != 1 {
		t.Errorf("removed = %v, expected one removal", pres.removed)
	}
}

func TestSpawnerClear(t *testing.T) {
	pres := newFakePresentation()
	clock := sched.New()
	sp, state := newTestSpawner(pres, clock, 1)

	for i := 0; i < 4; i++ {
		sp.SpawnOne()
	}
	sp.Clear()

	if len(state.obstacles) != 0 {
		t.Errorf("obstacles = %d, expected 0", len(state.obstacles))
	}
	if len(pres.boxes) != 0 {
		t.Errorf("visuals = %d, expected 0", len(pres.boxes))
	}
	if clock.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d, expected 0", clock.PendingTimers())
	}
}
