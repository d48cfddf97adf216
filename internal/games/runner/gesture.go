package runner

import "github.com/vovakirdan/campus-runner/internal/core"

// GestureTracker turns press/move/release pointer events into runner
// actions. A tap jumps; a vertical drag past the threshold crouches until
// the pointer is released. Y grows downwards.
type GestureTracker struct {
	threshold float64
	startY    float64
	pressed   bool
	crouching bool
}

// NewGestureTracker creates a tracker. threshold is in field units.
func NewGestureTracker(threshold float64) *GestureTracker {
	return &GestureTracker{threshold: threshold}
}

// Start records a press at y.
func (t *GestureTracker) Start(y float64) {
	t.pressed = true
	t.crouching = false
	t.startY = y
}

// Move reports ActionCrouchStart the first time a downward drag passes the
// threshold.
func (t *GestureTracker) Move(y float64) core.Action {
	if !t.pressed || t.crouching {
		return core.ActionNone
	}
	if y-t.startY > t.threshold {
		t.crouching = true
		return core.ActionCrouchStart
	}
	return core.ActionNone
}

// End finishes the gesture: a crouch is released, anything else was a tap.
func (t *GestureTracker) End() core.Action {
	if !t.pressed {
		return core.ActionNone
	}
	t.pressed = false
	if t.crouching {
		t.crouching = false
		return core.ActionCrouchEnd
	}
	return core.ActionJump
}

// Crouching reports whether the current gesture is a crouch.
func (t *GestureTracker) Crouching() bool {
	return t.crouching
}

// CrouchLatch emulates a held crouch key on terminals that only report
// presses. Every press (or auto-repeat) extends the hold; once no press
// arrives for the hold window the crouch is released.
type CrouchLatch struct {
	holdMS  float64
	leftMS  float64
	holding bool
}

// NewCrouchLatch creates a latch with the given hold window.
func NewCrouchLatch(holdMS float64) *CrouchLatch {
	return &CrouchLatch{holdMS: holdMS}
}

// Press registers a crouch key press. Returns ActionCrouchStart when the
// crouch begins.
func (l *CrouchLatch) Press() core.Action {
	l.leftMS = l.holdMS
	if l.holding {
		return core.ActionNone
	}
	l.holding = true
	return core.ActionCrouchStart
}

// Advance moves the latch clock. Returns ActionCrouchEnd when the hold lapses.
func (l *CrouchLatch) Advance(dtMS float64) core.Action {
	if !l.holding {
		return core.ActionNone
	}
	l.leftMS -= dtMS
	if l.leftMS > 0 {
		return core.ActionNone
	}
	l.holding = false
	return core.ActionCrouchEnd
}

// Release ends the crouch immediately, e.g. when the player jumps.
func (l *CrouchLatch) Release() core.Action {
	if !l.holding {
		return core.ActionNone
	}
	l.holding = false
	return core.ActionCrouchEnd
}

// Holding reports whether the latch is engaged.
func (l *CrouchLatch) Holding() bool {
	return l.holding
}
