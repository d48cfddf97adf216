package runner

import (
	"math/rand"

	"github.com/vovakirdan/campus-runner/internal/config"
)

// Spawner decides when and what to spawn at the right edge of the field.
type Spawner struct {
	rng       *rand.Rand
	cfg       *config.RunnerConfig
	elapsedMS float64
	exam      bool
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg *config.RunnerConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Rearm restarts the spawn interval from zero.
func (s *Spawner) Rearm() {
	s.elapsedMS = 0
}

// SetExamSession switches between the normal and the exam interval.
// Switching re-arms the interval.
func (s *Spawner) SetExamSession(active bool) {
	s.exam = active
	s.Rearm()
}

// IntervalMS returns the current time between spawns.
func (s *Spawner) IntervalMS() float64 {
	interval := float64(s.cfg.Spawn.IntervalMS)
	if s.exam {
		interval *= s.cfg.Exam.SpawnScale
	}
	return interval
}

// Advance moves the spawn clock forward and returns how many spawns are due.
func (s *Spawner) Advance(dtMS float64) int {
	interval := s.IntervalMS()
	if interval <= 0 {
		return 0
	}

	s.elapsedMS += dtMS
	due := 0
	for s.elapsedMS >= interval {
		s.elapsedMS -= interval
		due++
	}
	return due
}

// Spawn produces exactly one entity: an obstacle or a powerup.
func (s *Spawner) Spawn() (*Obstacle, *Powerup) {
	if s.rng.Float64() < s.cfg.Spawn.ObstacleChance {
		o := s.SpawnObstacle(selectObstacle(s.rng))
		return &o, nil
	}
	p := s.SpawnPowerup(selectPowerup(s.rng))
	return nil, &p
}

// SpawnObstacle places an obstacle of the given kind at the right edge.
func (s *Spawner) SpawnObstacle(def ObstacleDef) Obstacle {
	groundY := s.cfg.Field.GroundY()

	y := groundY - def.Height
	if def.Flying {
		y = groundY - s.cfg.Spawn.FlyingOffset - s.rng.Float64()*s.cfg.Spawn.FlyingJitter
	}

	return Obstacle{
		Type:   def.Type,
		X:      s.cfg.Field.Width,
		Y:      y,
		Width:  def.Width,
		Height: def.Height,
		Points: def.Points,
		Flying: def.Flying,
	}
}

// SpawnPowerup places a powerup of the given kind at the right edge.
func (s *Spawner) SpawnPowerup(def PowerupDef) Powerup {
	size := s.cfg.Spawn.PowerupSize
	return Powerup{
		Type:       def.Type,
		Effect:     def.Effect,
		X:          s.cfg.Field.Width,
		Y:          s.cfg.Field.GroundY() - s.cfg.Spawn.PowerupOffset - s.rng.Float64()*s.cfg.Spawn.PowerupJitter,
		Width:      size,
		Height:     size,
		DurationMS: def.DurationMS,
		Points:     def.Points,
	}
}
