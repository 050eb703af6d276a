// Package jumper implements the core of a side-scrolling jump game: obstacle
// spawning, the per-frame collision and scoring pass, score-driven difficulty
// and the Playing/GameOver state machine.
//
// The package holds no rendering code. Geometry is read through a Presentation
// and all timing runs on a sched.Scheduler owned by the caller's goroutine.
package jumper

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/sched"
)

// Options configures a Game.
type Options struct {
	Config       config.JumperConfig
	Presentation Presentation
	Clock        *sched.Scheduler
	Audio        Audio       // nil plays nothing
	Logger       *log.Logger // nil discards
	Seed         int64       // 0 seeds from the current time
	Observers    []Observer
}

// Game is the state machine that owns the spawner, the loop and the state.
type Game struct {
	cfg       config.JumperConfig
	curve     *config.DifficultyCurve
	state     *State
	pres      Presentation
	clock     *sched.Scheduler
	audio     Audio
	logger    *log.Logger
	observers []Observer

	spawner   *Spawner
	loop      *Loop
	jumpTimer sched.TimerID // Landing timer, zero on the ground
	started   bool
}

// New creates a game. It does nothing until Start is called.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	audio := opts.Audio
	if audio == nil {
		audio = NopAudio{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = sched.New()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	curve := config.NewDifficultyCurve(opts.Config.Difficulty)
	g := &Game{
		cfg:       opts.Config,
		curve:     curve,
		state:     &State{mode: ModePlaying, difficulty: curve.At(0)},
		pres:      opts.Presentation,
		clock:     clock,
		audio:     audio,
		logger:    logger,
		observers: opts.Observers,
	}
	g.spawner = newSpawner(g.state, g.pres, clock, opts.Config.Obstacles, rand.New(rand.NewSource(seed)), logger)
	g.spawner.onSpawn = func(o *Obstacle) {
		g.emit(Event{Kind: EventSpawn, Obstacle: o.id})
	}
	g.loop = &Loop{g: g}
	return g
}

// AddObserver registers an observer for subsequent events.
func (g *Game) AddObserver(o Observer) {
	g.observers = append(g.observers, o)
}

// Start enters Playing for the first time. Later calls do nothing; use Restart.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.begin()
}

// Restart leaves GameOver for a fresh Playing session.
// It reports false and does nothing while a game is in progress.
func (g *Game) Restart() bool {
	if !g.started || g.state.mode != ModeGameOver {
		return false
	}
	g.begin()
	return true
}

func (g *Game) begin() {
	g.spawner.Stop()
	g.spawner.Clear()
	g.cancelJump()

	g.state.reset(g.curve.At(0))
	g.pres.ResumeObstacles()
	g.pres.SetPlayerVisual(VisualRunning)
	g.pres.HideRestart()

	g.play("start", g.audio.GameStart)
	g.logger.Info("game started", "crossing", g.state.difficulty.CrossingDuration, "interval", g.state.difficulty.SpawnInterval)
	g.emit(Event{Kind: EventStart})

	g.loop.Start()
	g.spawner.Start(g.state.difficulty.SpawnInterval)
}

// Jump starts a jump. It reports false when the player is already airborne
// or the game is over.
func (g *Game) Jump() bool {
	if !g.started || g.state.mode != ModePlaying || g.state.airborne {
		return false
	}
	g.state.airborne = true
	g.pres.SetPlayerVisual(VisualJumping)
	g.play("jump", g.audio.Jump)
	g.jumpTimer = g.clock.AfterFunc(g.cfg.Player.JumpDuration, g.land)
	g.emit(Event{Kind: EventJump})
	return true
}

func (g *Game) land() {
	g.jumpTimer = 0
	g.state.airborne = false
	if g.state.mode == ModePlaying {
		g.pres.SetPlayerVisual(VisualRunning)
	}
}

func (g *Game) cancelJump() {
	g.clock.Cancel(g.jumpTimer)
	g.jumpTimer = 0
	g.state.airborne = false
}

// credit scores an obstacle the player has passed and pushes the new
// difficulty to the spawner.
func (g *Game) credit(o *Obstacle) {
	o.scored = true
	g.state.score++
	d := g.curve.At(g.state.score)
	if d.Level != g.state.difficulty.Level {
		g.logger.Info("level up", "level", d.Level, "crossing", d.CrossingDuration, "interval", d.SpawnInterval)
	}
	g.state.difficulty = d
	g.spawner.Retarget(d.SpawnInterval)
	g.logger.Debug("scored", "score", g.state.score, "active", len(g.state.obstacles))
	g.emit(Event{Kind: EventScore, Obstacle: o.id})
}

// endGame performs the Playing to GameOver transition.
func (g *Game) endGame() {
	if g.state.mode == ModeGameOver {
		return
	}
	g.state.mode = ModeGameOver
	g.spawner.Stop()
	g.loop.Stop()
	g.cancelJump()

	g.pres.FreezeObstacles()
	g.pres.SetPlayerVisual(VisualCrashed)
	g.play("game over", g.audio.GameOver)
	g.pres.ShowRestart()

	g.logger.Info("game over", "score", g.state.score, "level", g.state.difficulty.Level)
	g.emit(Event{Kind: EventGameOver})
}

// Shutdown cancels every timer and frame the game owns. Idempotent.
func (g *Game) Shutdown() {
	g.spawner.Stop()
	g.loop.Stop()
	g.cancelJump()
	for _, o := range g.state.obstacles {
		g.clock.Cancel(o.removal)
		o.removal = 0
	}
}

// Snapshot returns a read-only copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return g.state.snapshot()
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.state.mode
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.score
}

func (g *Game) play(cue string, fn func() error) {
	if err := fn(); err != nil {
		g.logger.Debug("audio cue failed", "cue", cue, "error", err)
	}
}

func (g *Game) emit(e Event) {
	if len(g.observers) == 0 {
		return
	}
	e.At = g.clock.Now()
	e.Score = g.state.score
	e.Level = g.state.difficulty.Level
	e.Active = len(g.state.obstacles)
	for _, o := range g.observers {
		o.Observe(e)
	}
}
