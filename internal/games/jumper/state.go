package jumper

import (
	"time"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/sched"
)

// Mode is the game's top-level state.
type Mode int

const (
	ModePlaying Mode = iota
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ObstacleID identifies an obstacle for the lifetime of a game.
type ObstacleID uint64

// Obstacle is a tracked hazard. Its horizontal position lives in the
// Presentation; the game only keeps bookkeeping.
type Obstacle struct {
	id        ObstacleID
	handle    ObstacleHandle
	scored    bool
	offset    float64
	flying    bool
	crossing  time.Duration
	createdAt time.Duration
	removal   sched.TimerID // fallback removal timer
}

// ID returns the obstacle's identity.
func (o *Obstacle) ID() ObstacleID { return o.id }

// Scored reports whether the obstacle has been credited.
func (o *Obstacle) Scored() bool { return o.scored }

// Flying reports whether the obstacle is elevated.
func (o *Obstacle) Flying() bool { return o.flying }

// State holds everything mutable about a game. Fields are unexported;
// mutation goes through the spawner, the loop and the game.
type State struct {
	score      int
	mode       Mode
	difficulty config.Difficulty
	airborne   bool
	obstacles  []*Obstacle // ordered oldest first
	nextID     ObstacleID
}

// reset returns the state to a fresh Playing session.
func (s *State) reset(d config.Difficulty) {
	s.score = 0
	s.mode = ModePlaying
	s.difficulty = d
	s.airborne = false
	s.obstacles = s.obstacles[:0]
}

func (s *State) newObstacleID() ObstacleID {
	s.nextID++
	return s.nextID
}

func (s *State) track(o *Obstacle) {
	s.obstacles = append(s.obstacles, o)
}

// untrack removes the obstacle at index i, keeping creation order.
func (s *State) untrack(i int) {
	copy(s.obstacles[i:], s.obstacles[i+1:])
	s.obstacles[len(s.obstacles)-1] = nil
	s.obstacles = s.obstacles[:len(s.obstacles)-1]
}

func (s *State) indexOf(id ObstacleID) int {
	for i, o := range s.obstacles {
		if o.id == id {
			return i
		}
	}
	return -1
}

// Snapshot is a read-only copy of the game state for hosts.
type Snapshot struct {
	Score            int
	Level            int
	Mode             Mode
	Airborne         bool
	Obstacles        int
	CrossingDuration time.Duration
	SpawnInterval    time.Duration
}

func (s *State) snapshot() Snapshot {
	return Snapshot{
		Score:            s.score,
		Level:            s.difficulty.Level,
		Mode:             s.mode,
		Airborne:         s.airborne,
		Obstacles:        len(s.obstacles),
		CrossingDuration: s.difficulty.CrossingDuration,
		SpawnInterval:    s.difficulty.SpawnInterval,
	}
}
