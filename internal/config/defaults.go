package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       400,
			GroundHeight: 30,
		},
		Physics: PhysicsConfig{
			Gravity:      1.0,
			PlayerX:      50,
			PlayerWidth:  30,
			PlayerHeight: 50,
		},
		Speed: SpeedConfig{
			Initial:   5.0,
			Increment: 0.0001,
		},
		Spawn: SpawnConfig{
			IntervalMS:     1500,
			ObstacleChance: 0.8,
			FlyingOffset:   80,
			FlyingJitter:   60,
			PowerupOffset:  40,
			PowerupJitter:  60,
			PowerupSize:    30,
		},
		Effects: EffectsConfig{
			SpeedBoost: 1.5,
		},
		Exam: ExamConfig{
			Chance:     0.0005,
			DurationMS: 10000,
			SpawnScale: 0.5,
		},
		Progression: ProgressionConfig{
			SemesterSpan:       1000,
			KnowledgeDivisor:   100,
			ContinueCost:       50,
			ContinueInvincible: 3000,
		},
		Input: InputConfig{
			DragThreshold: 50,
			CrouchHoldMS:  300,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
