package runner

import (
	"github.com/elliotchance/orderedmap/v2"
)

// EffectKind identifies a timed effect. Each kind targets one piece of state,
// so at most one effect per kind is active.
type EffectKind int

const (
	KindSpeedBoost EffectKind = iota
	KindInvincibility
	KindExamSession
)

// String returns the HUD label for the effect kind.
func (k EffectKind) String() string {
	switch k {
	case KindSpeedBoost:
		return "Coffee"
	case KindInvincibility:
		return "Invincible"
	case KindExamSession:
		return "Exam"
	default:
		return "?"
	}
}

// TimedEffect is an active effect with the action that undoes it.
type TimedEffect struct {
	Kind      EffectKind
	StartedAt float64 // Game clock, ms
	ExpiresAt float64 // Game clock, ms
	revert    func()
}

// Remaining returns the milliseconds left at the given time.
func (e *TimedEffect) Remaining(now float64) float64 {
	return max(e.ExpiresAt-now, 0)
}

// Effects coordinates the active timed effects against the game clock.
//
// A grant for a kind that is already active only pushes its expiry out to
// the later of the two deadlines. The first grant's apply/revert pair stays
// in charge, so the baseline it captured is restored exactly once.
type Effects struct {
	active *orderedmap.OrderedMap[EffectKind, *TimedEffect]
}

// NewEffects creates an empty coordinator.
func NewEffects() *Effects {
	return &Effects{
		active: orderedmap.NewOrderedMap[EffectKind, *TimedEffect](),
	}
}

// Grant activates an effect of kind for durationMS starting at now.
// apply runs only when the kind was not already active; revert runs on expiry.
// Returns true if a new effect was started rather than an existing one extended.
func (e *Effects) Grant(kind EffectKind, now, durationMS float64, apply, revert func()) bool {
	expires := now + durationMS

	if cur, ok := e.active.Get(kind); ok {
		cur.ExpiresAt = max(cur.ExpiresAt, expires)
		return false
	}

	if apply != nil {
		apply()
	}
	e.active.Set(kind, &TimedEffect{
		Kind:      kind,
		StartedAt: now,
		ExpiresAt: expires,
		revert:    revert,
	})
	return true
}

// Expire reverts and removes every effect due at now, in activation order.
// Returns the kinds that ended.
func (e *Effects) Expire(now float64) []EffectKind {
	var due []EffectKind
	for el := e.active.Front(); el != nil; el = el.Next() {
		if el.Value.ExpiresAt <= now {
			due = append(due, el.Key)
		}
	}

	for _, kind := range due {
		eff, _ := e.active.Get(kind)
		e.active.Delete(kind)
		if eff.revert != nil {
			eff.revert()
		}
	}
	return due
}

// Active reports whether an effect of kind is running.
func (e *Effects) Active(kind EffectKind) bool {
	_, ok := e.active.Get(kind)
	return ok
}

// Get returns the active effect of kind.
func (e *Effects) Get(kind EffectKind) (*TimedEffect, bool) {
	return e.active.Get(kind)
}

// Len returns the number of active effects.
func (e *Effects) Len() int {
	return e.active.Len()
}

// Status lists the active effects with their remaining time, in activation order.
func (e *Effects) Status(now float64) []EffectStatus {
	status := make([]EffectStatus, 0, e.active.Len())
	for el := e.active.Front(); el != nil; el = el.Next() {
		status = append(status, EffectStatus{
			Kind:        el.Key,
			RemainingMS: el.Value.Remaining(now),
		})
	}
	return status
}

// Discard drops every effect without reverting. Used when the run state is
// rebuilt from scratch anyway.
func (e *Effects) Discard() {
	e.active = orderedmap.NewOrderedMap[EffectKind, *TimedEffect]()
}

// EffectStatus is a read-only view of an active effect.
type EffectStatus struct {
	Kind        EffectKind
	RemainingMS float64
}
