// Package config provides YAML-based game configuration loading and the
// score-driven difficulty curve for the jumper game.
package config

import "time"

// JumperConfig contains all tunable parameters for the jumper game.
// Sizes and positions are in stage units (the stage is a fixed logical board
// that hosts scale to their own resolution).
type JumperConfig struct {
	Stage      StageConfig      `yaml:"stage"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Hitbox     HitboxConfig     `yaml:"hitbox"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// StageConfig defines the logical play field.
type StageConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite and its jump.
type PlayerConfig struct {
	X             float64       `yaml:"x"`
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	CrashedWidth  float64       `yaml:"crashed_width"`  // Sprite width after game over
	CrashedOffset float64       `yaml:"crashed_offset"` // Horizontal shift after game over
	JumpHeight    float64       `yaml:"jump_height"`
	JumpDuration  time.Duration `yaml:"jump_duration"`
}

// ObstacleConfig defines pipe sizes and spawn variation.
type ObstacleConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	FlyingChance  float64       `yaml:"flying_chance"`  // Probability of an elevated pipe
	FlyingMin     float64       `yaml:"flying_min"`     // Lowest elevation of a flying pipe
	FlyingMax     float64       `yaml:"flying_max"`     // Exclusive upper elevation bound
	FallbackSlack time.Duration `yaml:"fallback_slack"` // Added to crossing duration for forced removal
}

// HitboxConfig defines how much each sprite is shrunk before collision tests.
type HitboxConfig struct {
	PlayerShrink   float64 `yaml:"player_shrink"`
	ObstacleShrink float64 `yaml:"obstacle_shrink"`
}

// DifficultyConfig defines the score-driven difficulty curve.
type DifficultyConfig struct {
	LevelEvery        int           `yaml:"level_every"` // Points per difficulty level
	BaseCrossing      time.Duration `yaml:"base_crossing"`
	CrossingStep      time.Duration `yaml:"crossing_step"`
	MinCrossing       time.Duration `yaml:"min_crossing"`
	BaseSpawnInterval time.Duration `yaml:"base_spawn_interval"`
	SpawnStep         time.Duration `yaml:"spawn_step"`
	MinSpawnInterval  time.Duration `yaml:"min_spawn_interval"`
}
