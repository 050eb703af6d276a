// Package session wires a scheduler, a stage and a game into the single object
// every host drives. A Session is owned by one goroutine.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/sched"
	"github.com/vovakirdan/tui-jumper/internal/stage"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// maxStep caps a single clock advance so a stalled host does not teleport
// obstacles through the player.
const maxStep = 100 * time.Millisecond

// Options configures a Session.
type Options struct {
	Config  config.JumperConfig
	Runtime core.RuntimeConfig
	Host    string // Journal host label
	Audio   jumper.Audio
	Logger  *log.Logger
	Store   storage.RunSaver // nil disables the journal
	Stage   []stage.Option
}

// Session is one player's game.
type Session struct {
	clock   *sched.Scheduler
	stage   *stage.Stage
	game    *jumper.Game
	journal *storage.Journal
	logger  *log.Logger
	paused  bool
	closed  bool
}

// Frame is everything a graphical host needs to draw one frame.
type Frame struct {
	stage.Frame
	Score    int
	Level    int
	GameOver bool
	Paused   bool
}

// New creates a session and starts its game.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	clock := sched.New()
	st := stage.New(opts.Config, clock, opts.Stage...)

	s := &Session{
		clock:  clock,
		stage:  st,
		logger: logger,
	}

	var observers []jumper.Observer
	if opts.Store != nil {
		s.journal = storage.NewJournal(opts.Store, opts.Host, seed, logger)
		observers = append(observers, s.journal)
	}

	s.game = jumper.New(jumper.Options{
		Config:       opts.Config,
		Presentation: st,
		Clock:        clock,
		Audio:        opts.Audio,
		Logger:       logger,
		Seed:         seed,
		Observers:    observers,
	})
	s.game.Start()
	return s
}

// Observe registers an additional observer.
func (s *Session) Observe(o jumper.Observer) {
	s.game.AddObserver(o)
}

// Advance moves the game forward by dt and runs one frame.
// Nothing happens while paused or after Close.
func (s *Session) Advance(dt time.Duration) {
	if s.paused || s.closed {
		return
	}
	if dt > maxStep {
		dt = maxStep
	}
	s.clock.Advance(dt)
}

// Jump requests a jump. Ignored while paused.
func (s *Session) Jump() bool {
	if s.paused || s.closed {
		return false
	}
	return s.game.Jump()
}

// Restart starts a new game after a game over.
func (s *Session) Restart() bool {
	if s.closed {
		return false
	}
	s.paused = false
	return s.game.Restart()
}

// TogglePause stops or resumes the clock. Only a game in progress can pause.
// Returns the new paused state.
func (s *Session) TogglePause() bool {
	if s.paused {
		s.paused = false
	} else if s.game.Mode() == jumper.ModePlaying {
		s.paused = true
	}
	return s.paused
}

// Paused reports whether the clock is stopped.
func (s *Session) Paused() bool {
	return s.paused
}

// Render draws the session into a screen buffer.
func (s *Session) Render(dst *core.Screen) {
	snap := s.game.Snapshot()
	s.stage.Render(dst, stage.HUD{Score: snap.Score, Level: snap.Level, Paused: s.paused})
}

// State returns the host-facing game state.
func (s *Session) State() core.GameState {
	snap := s.game.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		Level:    snap.Level,
		GameOver: snap.Mode == jumper.ModeGameOver,
		Paused:   s.paused,
	}
}

// Snapshot returns the game state in detail.
func (s *Session) Snapshot() jumper.Snapshot {
	return s.game.Snapshot()
}

// Frame captures the board and HUD for graphical hosts.
func (s *Session) Frame() Frame {
	snap := s.game.Snapshot()
	return Frame{
		Frame:    s.stage.Snapshot(),
		Score:    snap.Score,
		Level:    snap.Level,
		GameOver: snap.Mode == jumper.ModeGameOver,
		Paused:   s.paused,
	}
}

// Now returns the session's game time.
func (s *Session) Now() time.Duration {
	return s.clock.Now()
}

// Close stops the game and journals a run in progress. Idempotent.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.game.Shutdown()
	if s.journal != nil {
		s.journal.Close(s.clock.Now())
	}
	s.logger.Debug("session closed", "at", s.clock.Now())
}
