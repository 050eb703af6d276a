package core

// RuntimeConfig contains configuration passed to a session at initialization.
// Hosts use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second the host advances the clock at
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game as seen by hosts.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current difficulty level
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the host has stopped the clock
}
