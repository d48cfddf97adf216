package core

import "slices"

// RuntimeConfig is what the platform tells a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the part of a run the platform layer cares about.
type GameState struct {
	Score       int  // Current score
	GameOver    bool // Whether the game has ended
	Paused      bool // Whether the game is paused
	CanContinue bool // Whether a game over may be resumed
}

// Event is a notable thing that happened during a tick.
// The platform uses events for side effects such as sound cues.
type Event int

const (
	EventNone Event = iota
	EventJump
	EventSpeedBoost
	EventInvincible
	EventPoints
	EventExamStart
	EventExamEnd
	EventSemester
	EventGameOver
	EventContinue
)

var eventNames = map[Event]string{
	EventNone:       "None",
	EventJump:       "Jump",
	EventSpeedBoost: "SpeedBoost",
	EventInvincible: "Invincible",
	EventPoints:     "Points",
	EventExamStart:  "ExamStart",
	EventExamEnd:    "ExamEnd",
	EventSemester:   "Semester",
	EventGameOver:   "GameOver",
	EventContinue:   "Continue",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "Unknown"
}

// StepResult is the outcome of one tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result carries the given event.
func (r StepResult) Has(e Event) bool {
	return slices.Contains(r.Events, e)
}
