package runner

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// Errors returned by progression operations.
var (
	ErrUnknownCharacter      = errors.New("runner: unknown character")
	ErrLocked                = errors.New("runner: character is locked")
	ErrInsufficientKnowledge = errors.New("runner: not enough knowledge")
	ErrNotGameOver           = errors.New("runner: run is not over")
)

// Progress is the cross-run state kept by the progress store.
type Progress struct {
	HighScore int
	Knowledge int
	Unlocked  []CharacterID
}

// DefaultProgress is what a new player starts with.
func DefaultProgress() Progress {
	return Progress{Unlocked: []CharacterID{StarterCharacter}}
}

// IsUnlocked reports whether the character id is in the unlock set.
func (p Progress) IsUnlocked(id CharacterID) bool {
	return slices.Contains(p.Unlocked, id)
}

// Sanitize returns a copy with negative counters zeroed, unknown and duplicate
// ids dropped, and the starter character always unlocked.
func (p Progress) Sanitize() Progress {
	out := Progress{
		HighScore: max(p.HighScore, 0),
		Knowledge: max(p.Knowledge, 0),
		Unlocked:  []CharacterID{StarterCharacter},
	}
	for _, id := range p.Unlocked {
		if _, ok := CharacterByID(id); !ok {
			continue
		}
		if !slices.Contains(out.Unlocked, id) {
			out.Unlocked = append(out.Unlocked, id)
		}
	}
	return out
}

// clone returns a deep copy.
func (p Progress) clone() Progress {
	p.Unlocked = slices.Clone(p.Unlocked)
	return p
}

// ProgressStore persists progress between runs.
type ProgressStore interface {
	Load() (Progress, error)
	Save(Progress) error
}

// ProgressUpdater is implemented by stores shared between sessions. Update
// runs fn on the stored progress and writes the result in one transaction.
// An error from fn aborts the write; Update then returns it with the stored
// progress unchanged.
type ProgressUpdater interface {
	Update(fn func(Progress) (Progress, error)) (Progress, error)
}

// errUnchanged aborts an update that has nothing to write.
var errUnchanged = errors.New("runner: progress unchanged")

// RunRecord summarises a finished run for history.
type RunRecord struct {
	ID        string
	Character CharacterID
	Score     int
	Earned    int
	Semester  int
	Dodged    int
	Collected int
	Continues int
}

// RunRecorder is implemented by stores that keep run history.
type RunRecorder interface {
	RecordRun(RunRecord) error
}

// Progression owns the persistent progress and the character selection.
// Writes go through to the store; store failures are logged, never fatal.
type Progression struct {
	store    ProgressStore
	logger   *log.Logger
	progress Progress
	selected CharacterID
}

// NewProgression loads progress from store, falling back to defaults when
// the store is nil, empty or unreadable. A nil logger discards.
func NewProgression(store ProgressStore, logger *log.Logger) *Progression {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Progression{
		store:    store,
		logger:   logger,
		progress: DefaultProgress(),
		selected: StarterCharacter,
	}
	p.Reload()
	return p
}

// Reload re-reads progress from the store.
func (p *Progression) Reload() {
	if p.store == nil {
		return
	}

	loaded, err := p.store.Load()
	if err != nil {
		p.logger.Warn("could not load progress, using defaults", "error", err)
		p.progress = DefaultProgress()
	} else {
		p.progress = loaded.Sanitize()
	}

	if !p.progress.IsUnlocked(p.selected) {
		p.selected = StarterCharacter
	}
}

// Progress returns a copy of the current progress.
func (p *Progression) Progress() Progress {
	return p.progress.clone()
}

// Knowledge returns the current knowledge balance.
func (p *Progression) Knowledge() int {
	return p.progress.Knowledge
}

// HighScore returns the best score so far.
func (p *Progression) HighScore() int {
	return p.progress.HighScore
}

// Selected returns the selected character id.
func (p *Progression) Selected() CharacterID {
	return p.selected
}

// Select chooses the character for the next run. It must be unlocked.
func (p *Progression) Select(id CharacterID) error {
	if _, ok := CharacterByID(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
	}
	if !p.progress.IsUnlocked(id) {
		return fmt.Errorf("%w: %q", ErrLocked, id)
	}
	p.selected = id
	return nil
}

// Unlock spends the character's unlock cost and persists immediately.
// Unlocking an already unlocked character is a no-op. On failure neither
// the progress nor the store is touched.
func (p *Progression) Unlock(id CharacterID) error {
	c, ok := CharacterByID(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
	}

	err := p.apply(func(cur *Progress) error {
		if cur.IsUnlocked(id) {
			return errUnchanged
		}
		if cur.Knowledge < c.UnlockCost {
			return fmt.Errorf("%w: %s needs %d, have %d", ErrInsufficientKnowledge, c.Name, c.UnlockCost, cur.Knowledge)
		}
		cur.Knowledge -= c.UnlockCost
		cur.Unlocked = append(cur.Unlocked, id)
		return nil
	})
	if err != nil {
		return err
	}
	p.logger.Info("character unlocked", "character", id, "knowledge", p.progress.Knowledge)
	return nil
}

// Settle credits a finished run: adds earned knowledge, raises the high
// score if beaten, and persists. Returns true if the high score changed.
func (p *Progression) Settle(score, earned int) bool {
	var beaten bool
	//nolint:errcheck // Settle never fails; store errors are logged by apply
	p.apply(func(cur *Progress) error {
		cur.Knowledge += earned
		beaten = score > cur.HighScore
		if beaten {
			cur.HighScore = score
		}
		return nil
	})
	return beaten
}

// Spend removes knowledge and persists. It fails without side effects when
// the balance is too low.
func (p *Progression) Spend(amount int) error {
	return p.apply(func(cur *Progress) error {
		if cur.Knowledge < amount {
			return fmt.Errorf("%w: need %d, have %d", ErrInsufficientKnowledge, amount, cur.Knowledge)
		}
		cur.Knowledge -= amount
		return nil
	})
}

// apply changes the progress with fn and persists the result. A
// ProgressUpdater runs fn on its latest stored copy in one transaction.
// Errors from fn are returned with nothing written; store errors are logged
// and the change is kept locally.
func (p *Progression) apply(fn func(*Progress) error) error {
	updater, ok := p.store.(ProgressUpdater)
	if !ok {
		next := p.progress.clone()
		if err := fn(&next); err != nil {
			return ignoreUnchanged(err)
		}
		p.progress = next
		p.save()
		return nil
	}

	var fnErr error
	next, err := updater.Update(func(cur Progress) (Progress, error) {
		cur = cur.Sanitize()
		fnErr = fn(&cur)
		return cur, fnErr
	})
	switch {
	case fnErr != nil:
		// next is the stored copy, still worth caching
		p.progress = next.Sanitize()
		return ignoreUnchanged(fnErr)
	case err != nil:
		p.logger.Warn("could not update progress", "error", err)
		next = p.progress.clone()
		if err := fn(&next); err != nil {
			return ignoreUnchanged(err)
		}
	}
	p.progress = next.Sanitize()
	return nil
}

func ignoreUnchanged(err error) error {
	if errors.Is(err, errUnchanged) {
		return nil
	}
	return err
}

// Record appends a run to the history if the store keeps one.
func (p *Progression) Record(rec RunRecord) {
	recorder, ok := p.store.(RunRecorder)
	if !ok {
		return
	}
	if err := recorder.RecordRun(rec); err != nil {
		p.logger.Warn("could not record run", "run", rec.ID, "error", err)
	}
}

// save writes progress through to the store.
func (p *Progression) save() {
	if p.store == nil {
		return
	}
	if err := p.store.Save(p.progress.clone()); err != nil {
		p.logger.Warn("could not save progress", "error", err)
	}
}
