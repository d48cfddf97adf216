package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".campus-runner"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.campus-runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseRunner(data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := ParseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseRunner decodes YAML on top of the default configuration and validates it.
func ParseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("field size must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	case c.Field.GroundHeight < 0 || c.Field.GroundHeight >= c.Field.Height:
		return fmt.Errorf("ground_height %g out of range", c.Field.GroundHeight)
	case c.Physics.PlayerWidth <= 0 || c.Physics.PlayerHeight <= 0:
		return fmt.Errorf("player size must be positive")
	case c.Speed.Initial <= 0:
		return fmt.Errorf("speed.initial must be positive, got %g", c.Speed.Initial)
	case c.Speed.Increment < 0:
		return fmt.Errorf("speed.increment must not be negative, got %g", c.Speed.Increment)
	case c.Spawn.IntervalMS <= 0:
		return fmt.Errorf("spawn.interval_ms must be positive, got %d", c.Spawn.IntervalMS)
	case c.Spawn.ObstacleChance < 0 || c.Spawn.ObstacleChance > 1:
		return fmt.Errorf("spawn.obstacle_chance must be within [0, 1], got %g", c.Spawn.ObstacleChance)
	case c.Exam.Chance < 0 || c.Exam.Chance > 1:
		return fmt.Errorf("exam.chance must be within [0, 1], got %g", c.Exam.Chance)
	case c.Exam.SpawnScale <= 0:
		return fmt.Errorf("exam.spawn_scale must be positive, got %g", c.Exam.SpawnScale)
	case c.Progression.SemesterSpan <= 0 || c.Progression.KnowledgeDivisor <= 0:
		return fmt.Errorf("progression spans must be positive")
	case c.Progression.ContinueCost < 0:
		return fmt.Errorf("progression.continue_cost must not be negative")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}
