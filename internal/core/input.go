package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keys, taps and clicks all collapse to these before reaching the game.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, W, Up, tap, click
	ActionRestart           // R key - restart game after game over
	ActionPause             // P - pause/unpause the clock
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionScreenshot        // Ctrl+S - dump the screen buffer
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
