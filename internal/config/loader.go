package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadJumper loads the jumper configuration.
// Search order: customPath -> ~/.jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default
func LoadJumper(customPath string) (JumperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("jumper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/jumper.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Keys missing from the document keep their default values.
func Parse(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JumperConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return JumperConfig{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range parameter at once.
func (c JumperConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	fraction := func(name string, v float64) {
		if v < 0 || v >= 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1), got %v", name, v))
		}
	}

	positive("stage.width", c.Stage.Width)
	positive("stage.height", c.Stage.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.crashed_width", c.Player.CrashedWidth)
	positive("player.jump_duration", c.Player.JumpDuration.Seconds())
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.height", c.Obstacles.Height)
	if c.Obstacles.FlyingChance < 0 || c.Obstacles.FlyingChance > 1 {
		errs = append(errs, fmt.Errorf("obstacles.flying_chance must be in [0, 1], got %v", c.Obstacles.FlyingChance))
	}
	if c.Obstacles.FlyingMax < c.Obstacles.FlyingMin {
		errs = append(errs, fmt.Errorf("obstacles.flying_max (%v) is below flying_min (%v)", c.Obstacles.FlyingMax, c.Obstacles.FlyingMin))
	}
	if c.Obstacles.FallbackSlack < 0 {
		errs = append(errs, fmt.Errorf("obstacles.fallback_slack must not be negative, got %v", c.Obstacles.FallbackSlack))
	}
	fraction("hitbox.player_shrink", c.Hitbox.PlayerShrink)
	fraction("hitbox.obstacle_shrink", c.Hitbox.ObstacleShrink)

	d := c.Difficulty
	if d.LevelEvery <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.level_every must be positive, got %d", d.LevelEvery))
	}
	positive("difficulty.min_crossing", d.MinCrossing.Seconds())
	positive("difficulty.min_spawn_interval", d.MinSpawnInterval.Seconds())
	if d.BaseCrossing < d.MinCrossing {
		errs = append(errs, fmt.Errorf("difficulty.base_crossing (%v) is below min_crossing (%v)", d.BaseCrossing, d.MinCrossing))
	}
	if d.BaseSpawnInterval < d.MinSpawnInterval {
		errs = append(errs, fmt.Errorf("difficulty.base_spawn_interval (%v) is below min_spawn_interval (%v)", d.BaseSpawnInterval, d.MinSpawnInterval))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}
