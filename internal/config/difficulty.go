package config

// presetScale holds the multipliers a preset applies to the defaults.
type presetScale struct {
	speed     float64 // initial speed
	increment float64 // per-tick speed increment
	interval  float64 // spawn interval
	exam      float64 // exam session chance
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {speed: 0.8, increment: 0.5, interval: 1.25, exam: 0.5},
	DifficultyNormal: {speed: 1.0, increment: 1.0, interval: 1.0, exam: 1.0},
	DifficultyHard:   {speed: 1.3, increment: 2.0, interval: 0.8, exam: 2.0},
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the configured values but disables the speed ramp.
// Unknown presets leave the config untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Speed.Increment = 0
		return
	}

	scale, ok := presetScales[preset]
	if !ok {
		return
	}

	cfg.Speed.Initial *= scale.speed
	cfg.Speed.Increment *= scale.increment
	cfg.Spawn.IntervalMS = int(float64(cfg.Spawn.IntervalMS) * scale.interval)
	if cfg.Spawn.IntervalMS < 1 {
		cfg.Spawn.IntervalMS = 1
	}
	cfg.Exam.Chance = clampF(cfg.Exam.Chance*scale.exam, 0, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
