package core

// Action is a semantic input, decoupled from keys, mouse gestures or SSH.
type Action uint8

const (
	ActionNone        Action = iota
	ActionJump               // Space, Up, W or a tap
	ActionCrouchStart        // Down, S or a downward drag
	ActionCrouchEnd          // Crouch released
	ActionConfirm            // Enter
	ActionBack               // B or Escape
	ActionRestart            // R after game over
	ActionContinue           // C after game over, costs knowledge
	ActionQuit               // Q or Ctrl+C
	ActionPause              // P toggles pause

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:        "None",
	ActionJump:        "Jump",
	ActionCrouchStart: "CrouchStart",
	ActionCrouchEnd:   "CrouchEnd",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionContinue:    "Continue",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}
