package jumper

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// ErrNoTemplate is returned by a Presentation that has nothing to draw
// obstacles with. The spawner treats it as a warning, never as fatal.
var ErrNoTemplate = errors.New("jumper: no obstacle template")

// ObstacleHandle identifies an obstacle's visual inside a Presentation.
type ObstacleHandle uint64

// ObstacleParams describes a visual to create for a new obstacle.
type ObstacleParams struct {
	Crossing time.Duration // Time to traverse the stage
	Offset   float64       // Elevation above the ground, zero for ground pipes
	Flying   bool
}

// PlayerVisual is the player's presentation state.
type PlayerVisual int

const (
	VisualRunning PlayerVisual = iota
	VisualJumping
	VisualCrashed
)

// String returns a human-readable name for the visual state.
func (v PlayerVisual) String() string {
	switch v {
	case VisualRunning:
		return "running"
	case VisualJumping:
		return "jumping"
	case VisualCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Presentation owns rendering and obstacle motion. The game reads geometry only
// through it and never touches presentation internals.
type Presentation interface {
	// PlayerBox returns the player's current box in stage units.
	PlayerBox() core.Box

	// ObstacleBox returns the obstacle's current box; false if the visual is gone.
	ObstacleBox(h ObstacleHandle) (core.Box, bool)

	SetPlayerVisual(v PlayerVisual)

	// CreateObstacleVisual starts a new obstacle crossing the stage.
	CreateObstacleVisual(p ObstacleParams) (ObstacleHandle, error)

	// RemoveObstacleVisual drops a visual. Unknown handles are ignored.
	RemoveObstacleVisual(h ObstacleHandle)

	// FreezeObstacles stops all obstacle motion; ResumeObstacles undoes it.
	FreezeObstacles()
	ResumeObstacles()

	ShowRestart()
	HideRestart()
}

// Audio plays cosmetic cues. Errors are logged and otherwise ignored.
type Audio interface {
	Jump() error
	GameOver() error
	GameStart() error
}

// NopAudio is an Audio that plays nothing.
type NopAudio struct{}

func (NopAudio) Jump() error      { return nil }
func (NopAudio) GameOver() error  { return nil }
func (NopAudio) GameStart() error { return nil }

// EventKind classifies an observation emitted by the game.
type EventKind int

const (
	EventStart EventKind = iota
	EventJump
	EventSpawn
	EventScore
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventJump:
		return "jump"
	case EventSpawn:
		return "spawn"
	case EventScore:
		return "score"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is an observation for telemetry and tests.
type Event struct {
	Kind     EventKind
	At       time.Duration // Scheduler time
	Score    int
	Level    int
	Active   int        // Tracked obstacles after the event
	Obstacle ObstacleID // Set for spawn and score events
}

// Observer receives game events synchronously on the game's goroutine.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(e Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) {
	f(e)
}
