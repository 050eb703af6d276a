package config

import "time"

// Difficulty is the set of parameters derived from a score.
type Difficulty struct {
	Level            int
	CrossingDuration time.Duration // Time for an obstacle to cross the stage
	SpawnInterval    time.Duration // Time between spawns
}

// DifficultyCurve maps scores to difficulty parameters.
// It holds no state besides its configuration; At is a pure function.
type DifficultyCurve struct {
	cfg DifficultyConfig
}

// NewDifficultyCurve creates a curve from the given configuration.
func NewDifficultyCurve(cfg DifficultyConfig) *DifficultyCurve {
	return &DifficultyCurve{cfg: cfg}
}

// Level returns floor(score / level_every). Negative scores count as zero.
func (c *DifficultyCurve) Level(score int) int {
	if score < 0 {
		score = 0
	}
	every := c.cfg.LevelEvery
	if every <= 0 {
		every = 1 // Prevent division by zero
	}
	return score / every
}

// At returns the difficulty parameters for the given score.
// Both durations shrink linearly with level and clamp at their floors.
func (c *DifficultyCurve) At(score int) Difficulty {
	level := c.Level(score)
	return Difficulty{
		Level:            level,
		CrossingDuration: stepDown(c.cfg.BaseCrossing, c.cfg.CrossingStep, c.cfg.MinCrossing, level),
		SpawnInterval:    stepDown(c.cfg.BaseSpawnInterval, c.cfg.SpawnStep, c.cfg.MinSpawnInterval, level),
	}
}

// stepDown returns max(floor, base - level*step).
func stepDown(base, step, floor time.Duration, level int) time.Duration {
	return max(floor, base-time.Duration(level)*step)
}
