package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Stage: StageConfig{
			Width:  800,
			Height: 500,
		},
		Player: PlayerConfig{
			X:             50,
			Width:         150,
			Height:        150,
			CrashedWidth:  75,
			CrashedOffset: 50,
			JumpHeight:    180,
			JumpDuration:  500 * time.Millisecond,
		},
		Obstacles: ObstacleConfig{
			Width:         80,
			Height:        80,
			FlyingChance:  0.2,
			FlyingMin:     40,
			FlyingMax:     190,
			FallbackSlack: 2 * time.Second,
		},
		Hitbox: HitboxConfig{
			PlayerShrink:   0.28,
			ObstacleShrink: 0.22,
		},
		Difficulty: DifficultyConfig{
			LevelEvery:        5,
			BaseCrossing:      1500 * time.Millisecond,
			CrossingStep:      80 * time.Millisecond,
			MinCrossing:       800 * time.Millisecond,
			BaseSpawnInterval: 1600 * time.Millisecond,
			SpawnStep:         80 * time.Millisecond,
			MinSpawnInterval:  800 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML, suitable for writing out as a
// starting point for a custom config.
func DefaultYAML() []byte {
	return defaultJumperYAML
}
