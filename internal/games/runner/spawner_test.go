package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/campus-runner/internal/config"
)

func newTestSpawner(seed int64) (*Spawner, *config.RunnerConfig) {
	cfg := config.DefaultRunnerConfig()
	return NewSpawner(rand.New(rand.NewSource(seed)), &cfg), &cfg
}

func TestSpawnerInterval(t *testing.T) {
	s, _ := newTestSpawner(1)

	due := 0
	for range 14 {
		due += s.Advance(100)
	}
	if due != 0 {
		t.Fatalf("spawned after 1400ms, want nothing before 1500ms")
	}
	if got := s.Advance(100); got != 1 {
		t.Fatalf("Advance at 1500ms = %d, want 1", got)
	}
	if got := s.Advance(3000); got != 2 {
		t.Errorf("Advance(3000) = %d, want 2", got)
	}
}

func TestSpawnerExamHalvesInterval(t *testing.T) {
	s, _ := newTestSpawner(1)

	s.Advance(1400)
	s.SetExamSession(true)
	if got := s.IntervalMS(); got != 750 {
		t.Fatalf("exam interval = %.0f, want 750", got)
	}
	// Switching re-arms, so the 1400ms already elapsed is gone
	if got := s.Advance(700); got != 0 {
		t.Errorf("Advance(700) after re-arm = %d, want 0", got)
	}
	if got := s.Advance(50); got != 1 {
		t.Errorf("Advance at 750ms = %d, want 1", got)
	}

	s.SetExamSession(false)
	if got := s.IntervalMS(); got != 1500 {
		t.Errorf("interval after exam = %.0f, want 1500", got)
	}
}

func TestSpawnerDisabled(t *testing.T) {
	s, cfg := newTestSpawner(1)
	cfg.Spawn.IntervalMS = 0
	if got := s.Advance(1e6); got != 0 {
		t.Errorf("Advance with zero interval = %d, want 0", got)
	}
}

func TestSpawnPlacement(t *testing.T) {
	s, cfg := newTestSpawner(9)
	groundY := cfg.Field.GroundY()

	for _, def := range Obstacles() {
		for range 50 {
			o := s.SpawnObstacle(def)
			if o.X != cfg.Field.Width {
				t.Fatalf("%s spawned at x=%.1f, want %.1f", def.Type, o.X, cfg.Field.Width)
			}
			if !def.Flying {
				if o.Y+o.Height != groundY {
					t.Fatalf("%s bottom at %.1f, want ground %.1f", def.Type, o.Y+o.Height, groundY)
				}
				continue
			}
			if o.Y > groundY-80 || o.Y <= groundY-140 {
				t.Fatalf("flying obstacle top at %.1f, want in (%.0f, %.0f]", o.Y, groundY-140, groundY-80)
			}
		}
	}

	for _, def := range Powerups() {
		p := s.SpawnPowerup(def)
		if p.Width != 30 || p.Height != 30 {
			t.Errorf("%s size %.0fx%.0f, want 30x30", def.Type, p.Width, p.Height)
		}
		if p.Y > groundY-40 || p.Y <= groundY-100 {
			t.Errorf("%s top at %.1f, want in (%.0f, %.0f]", def.Type, p.Y, groundY-100, groundY-40)
		}
	}
}

func TestSpawnObstacleShare(t *testing.T) {
	s, _ := newTestSpawner(5)

	const n = 20000
	obstacles := 0
	for range n {
		o, p := s.Spawn()
		if (o == nil) == (p == nil) {
			t.Fatal("Spawn must produce exactly one entity")
		}
		if o != nil {
			obstacles++
		}
	}
	share := float64(obstacles) / n
	if share < 0.78 || share > 0.82 {
		t.Errorf("obstacle share %.3f, want about 0.8", share)
	}
}
