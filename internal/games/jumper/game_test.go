package jumper

import (
	"testing"
	"time"
)

func TestStartSpawnsAndRuns(t *testing.T) {
	h := newHarness(t)
	h.game.Start()

	if h.game.Mode() != ModePlaying {
		t.Fatalf("Mode() = %v, expected %v", h.game.Mode(), ModePlaying)
	}
	if len(h.pres.created) != 1 {
		t.Errorf("obstacles created on start = %d, expected 1", len(h.pres.created))
	}
	if h.pres.created[0].Crossing != 1500*time.Millisecond {
		t.Errorf("Crossing = %v, expected 1.5s", h.pres.created[0].Crossing)
	}
	if !h.game.loop.Running() || !h.game.spawner.Running() {
		t.Error("loop and spawner should be running after Start")
	}
	if h.audio.starts != 1 {
		t.Errorf("GameStart cues = %d, expected 1", h.audio.starts)
	}
	if h.rec.events[0].Kind != EventStart {
		t.Errorf("first event = %v, expected %v", h.rec.events[0].Kind, EventStart)
	}

	// Start twice is a no-op
	h.game.Start()
	if len(h.pres.created) != 1 {
		t.Errorf("second Start spawned, created = %d", len(h.pres.created))
	}

	h.run(1600 * time.Millisecond)
	if len(h.pres.created) != 2 {
		t.Errorf("obstacles after one interval = %d, expected 2", len(h.pres.created))
	}
}

func TestScoringHappensOnce(t *testing.T) {
	h := newHarness(t)
	h.game.Start()

	// Trailing edge exactly on the player's leading edge does not score
	h.pres.place(1, -30)
	h.clock.Advance(frame)
	if h.game.Score() != 0 {
		t.Fatalf("Score() = %d, expected 0 when Right == player.Left", h.game.Score())
	}

	h.pres.place(1, -40)
	h.clock.Advance(frame)
	if h.game.Score() != 1 {
		t.Fatalf("Score() = %d, expected 1", h.game.Score())
	}
	o := h.game.state.obstacles[0]
	if !o.Scored() {
		t.Error("obstacle should be marked scored")
	}

	for i := 0; i < 5; i++ {
		h.clock.Advance(frame)
	}
	if h.game.Score() != 1 {
		t.Errorf("Score() = %d after more frames, expected 1", h.game.Score())
	}
	if n := h.rec.count(EventScore); n != 1 {
		t.Errorf("score events = %d, expected 1", n)
	}
}

func TestBoundaryRemoval(t *testing.T) {
	h := newHarness(t)
	h.game.Start()

	// Right edge exactly at zero stays tracked
	h.pres.place(1, -80)
	h.clock.Advance(frame)
	if got := h.game.Snapshot().Obstacles; got != 1 {
		t.Fatalf("Obstacles = %d, expected 1 while Right == 0", got)
	}

	h.pres.place(1, -81)
	h.clock.Advance(frame)
	if got := h.game.Snapshot().Obstacles; got != 0 {
		t.Errorf("Obstacles = %d, expected 0 once Right < 0", got)
	}
	if len(h.pres.removed) != 1 || h.pres.removed[0] != 1 {
		t.Errorf("removed = %v, expected [1]", h.pres.removed)
	}
	if h.clock.Active(0) {
		t.Error("zero timer should never be active")
	}
}

func TestFallbackRemoval(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	first := h.game.state.obstacles[0].ID()

	h.run(3490 * time.Millisecond)
	if h.game.state.indexOf(first) < 0 {
		t.Fatalf("obstacle removed before its fallback at %v", h.clock.Now())
	}

	h.run(10 * time.Millisecond)
	if h.game.state.indexOf(first) >= 0 {
		t.Errorf("obstacle still tracked at %v, expected fallback removal at 3.5s", h.clock.Now())
	}
	if h.pres.removed[0] != 1 {
		t.Errorf("first removed handle = %v, expected 1", h.pres.removed[0])
	}
	if h.game.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, expected %v", h.game.Mode(), ModePlaying)
	}
}

func TestCollisionEndsGame(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.run(1600 * time.Millisecond) // second obstacle

	// The older obstacle has passed the player, the newer one hits it.
	// Newest is processed first, so the older one never scores.
	h.pres.place(1, -40)
	h.pres.place(2, 100)
	h.clock.Advance(frame)

	if h.game.Mode() != ModeGameOver {
		t.Fatalf("Mode() = %v, expected %v", h.game.Mode(), ModeGameOver)
	}
	if h.game.Score() != 0 {
		t.Errorf("Score() = %d, expected 0 after collision", h.game.Score())
	}
	if h.game.spawner.Running() || h.game.loop.Running() {
		t.Error("spawner and loop should be stopped")
	}
	if h.clock.PendingFrames() != 0 {
		t.Errorf("PendingFrames() = %d, expected 0", h.clock.PendingFrames())
	}
	if !h.pres.frozen || !h.pres.restart || h.pres.visual != VisualCrashed {
		t.Errorf("presentation frozen=%v restart=%v visual=%v", h.pres.frozen, h.pres.restart, h.pres.visual)
	}
	if h.audio.overs != 1 {
		t.Errorf("GameOver cues = %d, expected 1", h.audio.overs)
	}
	if n := h.rec.count(EventGameOver); n != 1 {
		t.Errorf("game over events = %d, expected 1", n)
	}

	// Nothing spawns or scores after game over
	created := len(h.pres.created)
	h.run(5 * time.Second)
	if len(h.pres.created) != created {
		t.Errorf("created = %d after game over, expected %d", len(h.pres.created), created)
	}
	h.game.spawner.SpawnOne()
	if len(h.pres.created) != created {
		t.Error("SpawnOne should be a no-op in GameOver")
	}
}

func TestShrunkBoxesDoNotCollide(t *testing.T) {
	h := newHarness(t)
	h.game.Start()

	// Raw boxes overlap by a few units, shrunk hitboxes do not
	h.pres.place(1, 195)
	h.clock.Advance(frame)

	if h.game.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, expected %v", h.game.Mode(), ModePlaying)
	}
}

func TestDifficultyPushedOnScore(t *testing.T) {
	h := newHarness(t)
	h.game.Start()

	for i := 0; i < 5; i++ {
		h.game.spawner.SpawnOne()
	}
	for _, o := range h.game.state.obstacles[:5] {
		h.pres.place(o.handle, -40)
	}
	h.clock.Advance(frame)

	s := h.game.Snapshot()
	if s.Score != 5 || s.Level != 1 {
		t.Fatalf("Score, Level = %d, %d, expected 5, 1", s.Score, s.Level)
	}
	if s.SpawnInterval != 1520*time.Millisecond {
		t.Errorf("SpawnInterval = %v, expected 1.52s", s.SpawnInterval)
	}
	if h.game.spawner.Interval() != 1520*time.Millisecond {
		t.Errorf("spawner Interval() = %v, expected 1.52s", h.game.spawner.Interval())
	}

	h.game.spawner.SpawnOne()
	last := h.pres.created[len(h.pres.created)-1]
	if last.Crossing != 1420*time.Millisecond {
		t.Errorf("Crossing = %v, expected 1.42s", last.Crossing)
	}
}

func TestRestart(t *testing.T) {
	h := newHarness(t)
	h.game.Start()

	if h.game.Restart() {
		t.Error("Restart() while Playing should be a no-op")
	}

	h.pres.place(1, -40)
	h.clock.Advance(frame)
	h.game.spawner.SpawnOne()
	h.pres.place(2, 100)
	h.clock.Advance(frame)
	if h.game.Mode() != ModeGameOver || h.game.Score() != 1 {
		t.Fatalf("Mode, Score = %v, %d, expected game over with 1", h.game.Mode(), h.game.Score())
	}

	if !h.game.Restart() {
		t.Fatal("Restart() from GameOver should succeed")
	}
	s := h.game.Snapshot()
	if s.Mode != ModePlaying || s.Score != 0 || s.Level != 0 {
		t.Errorf("after restart Mode=%v Score=%d Level=%d", s.Mode, s.Score, s.Level)
	}
	if s.SpawnInterval != 1600*time.Millisecond || s.CrossingDuration != 1500*time.Millisecond {
		t.Errorf("after restart interval=%v crossing=%v", s.SpawnInterval, s.CrossingDuration)
	}
	// Old obstacles are gone; the restart spawns one fresh obstacle
	if s.Obstacles != 1 {
		t.Errorf("Obstacles = %d, expected 1", s.Obstacles)
	}
	if _, ok := h.pres.boxes[1]; ok {
		t.Error("old obstacle visual should be removed")
	}
	if h.pres.frozen || h.pres.restart || h.pres.visual != VisualRunning {
		t.Errorf("presentation frozen=%v restart=%v visual=%v", h.pres.frozen, h.pres.restart, h.pres.visual)
	}
	if !h.game.loop.Running() || !h.game.spawner.Running() {
		t.Error("loop and spawner should run after restart")
	}
	if h.audio.starts != 2 {
		t.Errorf("GameStart cues = %d, expected 2", h.audio.starts)
	}
}

func TestJump(t *testing.T) {
	h := newHarness(t)

	if h.game.Jump() {
		t.Error("Jump() before Start should be a no-op")
	}
	h.game.Start()

	if !h.game.Jump() {
		t.Fatal("Jump() should start a jump")
	}
	if !h.game.Snapshot().Airborne || h.pres.visual != VisualJumping {
		t.Errorf("Airborne=%v visual=%v", h.game.Snapshot().Airborne, h.pres.visual)
	}
	if h.game.Jump() {
		t.Error("Jump() while airborne should be a no-op")
	}
	if h.audio.jumps != 1 {
		t.Errorf("Jump cues = %d, expected 1", h.audio.jumps)
	}

	h.run(490 * time.Millisecond)
	if !h.game.Snapshot().Airborne {
		t.Error("player landed early")
	}
	h.run(10 * time.Millisecond)
	if h.game.Snapshot().Airborne || h.pres.visual != VisualRunning {
		t.Errorf("after landing Airborne=%v visual=%v", h.game.Snapshot().Airborne, h.pres.visual)
	}
	if !h.game.Jump() {
		t.Error("Jump() after landing should work")
	}
}

func TestJumpWhileGameOver(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.game.Jump()

	h.pres.place(1, 100)
	h.clock.Advance(frame)
	if h.game.Mode() != ModeGameOver {
		t.Fatalf("Mode() = %v, expected %v", h.game.Mode(), ModeGameOver)
	}
	if h.game.Snapshot().Airborne {
		t.Error("game over should cancel the jump")
	}

	if h.game.Jump() {
		t.Error("Jump() in GameOver should be a no-op")
	}
	h.run(time.Second)
	if h.pres.visual != VisualCrashed {
		t.Errorf("visual = %v, expected %v", h.pres.visual, VisualCrashed)
	}
}

func TestAudioErrorsIgnored(t *testing.T) {
	h := newHarness(t)
	h.audio.err = errAudio
	h.game.Start()

	if !h.game.Jump() {
		t.Error("Jump() should succeed despite audio failure")
	}
	if h.game.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, expected %v", h.game.Mode(), ModePlaying)
	}
}

func TestShutdownCancelsEverything(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.game.Jump()
	h.run(100 * time.Millisecond)

	h.game.Shutdown()
	h.game.Shutdown()

	if h.clock.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d, expected 0", h.clock.PendingTimers())
	}
	if h.clock.PendingFrames() != 0 {
		t.Errorf("PendingFrames() = %d, expected 0", h.clock.PendingFrames())
	}
}

func TestEventsCarryState(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.pres.place(1, -40)
	h.run(50 * time.Millisecond)

	var score Event
	for _, e := range h.rec.events {
		if e.Kind == EventScore {
			score = e
		}
	}
	if score.Score != 1 || score.Obstacle != 1 || score.Active != 1 {
		t.Errorf("score event = %+v", score)
	}
	if score.At != frame {
		t.Errorf("score event At = %v, expected %v", score.At, frame)
	}
}
