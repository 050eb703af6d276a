package storage

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

// RunSaver persists finished runs. *Store satisfies it.
type RunSaver interface {
	SaveRun(r Run) (int64, error)
}

// Journal observes a game and records every run it sees end.
// Save failures are logged; the game keeps running without a journal.
type Journal struct {
	saver  RunSaver
	host   string
	seed   int64
	logger *log.Logger

	active  bool
	startAt time.Duration
	last    jumper.Event
	jumps   int
	spawned int
}

var _ jumper.Observer = (*Journal)(nil)

// NewJournal creates a journal for one session.
func NewJournal(saver RunSaver, host string, seed int64, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Journal{saver: saver, host: host, seed: seed, logger: logger}
}

// Observe implements jumper.Observer.
func (j *Journal) Observe(e jumper.Event) {
	switch e.Kind {
	case jumper.EventStart:
		j.active = true
		j.startAt = e.At
		j.jumps = 0
		j.spawned = 0
	case jumper.EventJump:
		j.jumps++
	case jumper.EventSpawn:
		j.spawned++
	case jumper.EventGameOver:
		j.last = e
		j.finish(EndCollision)
		return
	}
	j.last = e
}

// Close records a run still in progress as quit at game time at. Idempotent.
func (j *Journal) Close(at time.Duration) {
	if at > j.last.At {
		j.last.At = at
	}
	j.finish(EndQuit)
}

func (j *Journal) finish(reason string) {
	if !j.active {
		return
	}
	j.active = false

	run := Run{
		Host:      j.host,
		Seed:      j.seed,
		Score:     j.last.Score,
		Level:     j.last.Level,
		Jumps:     j.jumps,
		Spawned:   j.spawned,
		Duration:  j.last.At - j.startAt,
		EndReason: reason,
	}
	if _, err := j.saver.SaveRun(run); err != nil {
		j.logger.Warn("run not journaled", "error", err)
		return
	}
	j.logger.Debug("run journaled", "score", run.Score, "reason", reason)
}
