// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// RunnerConfig contains all tunables of the runner simulation.
type RunnerConfig struct {
	Field       FieldConfig       `yaml:"field"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Speed       SpeedConfig       `yaml:"speed"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Effects     EffectsConfig     `yaml:"effects"`
	Exam        ExamConfig        `yaml:"exam"`
	Progression ProgressionConfig `yaml:"progression"`
	Input       InputConfig       `yaml:"input"`
}

// FieldConfig defines the logical playfield in field units.
// The renderer scales the field to whatever terminal size is available.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y coordinate of the ground surface.
func (f FieldConfig) GroundY() float64 {
	return f.Height - f.GroundHeight
}

// PhysicsConfig defines the player's body and vertical motion.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Added to vertical velocity per tick
	PlayerX      float64 `yaml:"player_x"`      // Fixed horizontal position
	PlayerWidth  float64 `yaml:"player_width"`  // Standing width
	PlayerHeight float64 `yaml:"player_height"` // Standing height
}

// SpeedConfig defines the scroll speed ramp.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`   // Field units per tick before character multiplier
	Increment float64 `yaml:"increment"` // Added every tick while running
}

// SpawnConfig defines obstacle and powerup spawning.
type SpawnConfig struct {
	IntervalMS     int     `yaml:"interval_ms"`     // Time between spawn attempts
	ObstacleChance float64 `yaml:"obstacle_chance"` // Probability a spawn is an obstacle
	FlyingOffset   float64 `yaml:"flying_offset"`   // Flying obstacle lift above ground
	FlyingJitter   float64 `yaml:"flying_jitter"`   // Random extra lift for flying obstacles
	PowerupOffset  float64 `yaml:"powerup_offset"`  // Powerup lift above ground
	PowerupJitter  float64 `yaml:"powerup_jitter"`  // Random extra lift for powerups
	PowerupSize    float64 `yaml:"powerup_size"`    // Powerup width and height
}

// EffectsConfig defines powerup effect magnitudes.
type EffectsConfig struct {
	SpeedBoost float64 `yaml:"speed_boost"` // Speed multiplier while boosted
}

// ExamConfig defines the random exam session modifier.
type ExamConfig struct {
	Chance     float64 `yaml:"chance"`      // Per-tick trigger probability
	DurationMS int     `yaml:"duration_ms"` // Session length
	SpawnScale float64 `yaml:"spawn_scale"` // Spawn interval multiplier during a session
}

// ProgressionConfig defines score tiers and the knowledge economy.
type ProgressionConfig struct {
	SemesterSpan       int `yaml:"semester_span"`        // Score per semester
	KnowledgeDivisor   int `yaml:"knowledge_divisor"`    // Score per knowledge point
	ContinueCost       int `yaml:"continue_cost"`        // Knowledge spent to continue
	ContinueInvincible int `yaml:"continue_invincible"` // Invincibility after continue (ms)
}

// InputConfig defines input translation thresholds.
type InputConfig struct {
	DragThreshold float64 `yaml:"drag_threshold"` // Vertical drag (field units) that counts as crouch
	CrouchHoldMS  int     `yaml:"crouch_hold_ms"` // Keyboard crouch release window
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
