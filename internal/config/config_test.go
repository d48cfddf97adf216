package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseRunner(GetDefaultYAML())
	if err != nil {
		t.Fatalf("ParseRunner(embedded) failed: %v", err)
	}

	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded defaults differ from DefaultRunnerConfig():\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestParseRunnerPartialOverride(t *testing.T) {
	data := []byte("speed:\n  initial: 7.5\nspawn:\n  interval_ms: 900\n")

	cfg, err := ParseRunner(data)
	if err != nil {
		t.Fatalf("ParseRunner() failed: %v", err)
	}

	if cfg.Speed.Initial != 7.5 {
		t.Errorf("Speed.Initial = %v, expected 7.5", cfg.Speed.Initial)
	}
	if cfg.Spawn.IntervalMS != 900 {
		t.Errorf("Spawn.IntervalMS = %d, expected 900", cfg.Spawn.IntervalMS)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != 1.0 {
		t.Errorf("Physics.Gravity = %v, expected default 1.0", cfg.Physics.Gravity)
	}
}

func TestParseRunnerRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero speed", "speed:\n  initial: 0\n"},
		{"negative increment", "speed:\n  increment: -1\n"},
		{"obstacle chance above one", "spawn:\n  obstacle_chance: 1.5\n"},
		{"zero interval", "spawn:\n  interval_ms: 0\n"},
		{"ground taller than field", "field:\n  ground_height: 500\n"},
		{"not yaml", "speed: [unterminated"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseRunner([]byte(tc.data)); err == nil {
				t.Error("ParseRunner() should fail")
			}
		})
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("exam:\n  chance: 0.25\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Exam.Chance != 0.25 {
		t.Errorf("Exam.Chance = %v, expected 0.25", cfg.Exam.Chance)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	cfg, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadRunner() should fail for a missing custom path")
	}
	if cfg != DefaultRunnerConfig() {
		t.Error("LoadRunner() should still return defaults on error")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	t.Run("fixed disables ramp", func(t *testing.T) {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, DifficultyFixed)
		if cfg.Speed.Increment != 0 {
			t.Errorf("Speed.Increment = %v, expected 0", cfg.Speed.Increment)
		}
		if cfg.Speed.Initial != DefaultRunnerConfig().Speed.Initial {
			t.Error("fixed preset should not change initial speed")
		}
	})

	t.Run("hard is faster than easy", func(t *testing.T) {
		easy := DefaultRunnerConfig()
		hard := DefaultRunnerConfig()
		ApplyRunnerPreset(&easy, DifficultyEasy)
		ApplyRunnerPreset(&hard, DifficultyHard)

		if hard.Speed.Initial <= easy.Speed.Initial {
			t.Errorf("hard speed %v should exceed easy speed %v", hard.Speed.Initial, easy.Speed.Initial)
		}
		if hard.Spawn.IntervalMS >= easy.Spawn.IntervalMS {
			t.Errorf("hard interval %d should be shorter than easy %d", hard.Spawn.IntervalMS, easy.Spawn.IntervalMS)
		}
	})

	t.Run("unknown preset is ignored", func(t *testing.T) {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, ParsePreset("nightmare"))
		if cfg != DefaultRunnerConfig() {
			t.Error("unknown preset should leave config untouched")
		}
	})
}
