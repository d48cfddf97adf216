package runner

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestProgressSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   Progress
		want Progress
	}{
		{
			name: "empty",
			in:   Progress{},
			want: DefaultProgress(),
		},
		{
			name: "negative counters",
			in:   Progress{HighScore: -5, Knowledge: -1},
			want: DefaultProgress(),
		},
		{
			name: "unknown and duplicate ids",
			in: Progress{Knowledge: 10, Unlocked: []CharacterID{
				"wizard", CharacterMedical, CharacterMedical, CharacterStem,
			}},
			want: Progress{Knowledge: 10, Unlocked: []CharacterID{CharacterStem, CharacterMedical}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Sanitize()
			if got.HighScore != tt.want.HighScore || got.Knowledge != tt.want.Knowledge ||
				!slices.Equal(got.Unlocked, tt.want.Unlocked) {
				t.Errorf("Sanitize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProgressionLoadFailureFallsBack(t *testing.T) {
	store := &memStore{
		progress: Progress{Knowledge: 500},
		loadErr:  errors.New("disk on fire"),
	}
	p := NewProgression(store, quietLogger())

	got := p.Progress()
	if got.Knowledge != 0 || !slices.Equal(got.Unlocked, []CharacterID{StarterCharacter}) {
		t.Errorf("progress after load failure = %+v, want defaults", got)
	}
}

func TestProgressionUnlock(t *testing.T) {
	store := &memStore{progress: Progress{Knowledge: 200, Unlocked: []CharacterID{CharacterStem}}}
	p := NewProgression(store, quietLogger())

	if err := p.Unlock(CharacterMedical); err != nil {
		t.Fatalf("Unlock(medical): %v", err)
	}
	if p.Knowledge() != 50 || store.progress.Knowledge != 50 {
		t.Errorf("knowledge = %d (stored %d), want 50", p.Knowledge(), store.progress.Knowledge)
	}
	if !store.progress.IsUnlocked(CharacterMedical) {
		t.Error("unlock not persisted")
	}

	saves := store.saves
	if err := p.Unlock(CharacterMedical); err != nil {
		t.Errorf("re-unlock = %v, want nil", err)
	}
	if store.saves != saves || p.Knowledge() != 50 {
		t.Error("re-unlock should be a no-op")
	}

	if err := p.Unlock(CharacterHumanities); err != nil {
		t.Fatalf("Unlock(humanities): %v", err)
	}
	if err := p.Unlock(CharacterHumanities); err != nil {
		t.Errorf("re-unlock humanities: %v", err)
	}
	if p.Knowledge() != 0 {
		t.Errorf("knowledge = %d, want 0", p.Knowledge())
	}

	if err := p.Unlock("wizard"); !errors.Is(err, ErrUnknownCharacter) {
		t.Errorf("Unlock(unknown) = %v, want ErrUnknownCharacter", err)
	}
}

func TestProgressionSelect(t *testing.T) {
	store := &memStore{progress: Progress{Unlocked: []CharacterID{CharacterStem, CharacterHumanities}}}
	p := NewProgression(store, quietLogger())

	tests := []struct {
		id      CharacterID
		wantErr error
	}{
		{CharacterHumanities, nil},
		{CharacterMedical, ErrLocked},
		{"wizard", ErrUnknownCharacter},
		{CharacterStem, nil},
	}
	for _, tt := range tests {
		err := p.Select(tt.id)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Select(%s) = %v, want %v", tt.id, err, tt.wantErr)
		}
		if err == nil && p.Selected() != tt.id {
			t.Errorf("selected = %s, want %s", p.Selected(), tt.id)
		}
	}
}

func TestProgressionSettle(t *testing.T) {
	store := &memStore{progress: Progress{HighScore: 300}}
	p := NewProgression(store, quietLogger())

	if p.Settle(200, 2) {
		t.Error("lower score reported as a new high score")
	}
	if !p.Settle(450, 4) {
		t.Error("higher score not reported")
	}
	if store.progress.HighScore != 450 || store.progress.Knowledge != 6 {
		t.Errorf("stored progress = %+v, want high 450 knowledge 6", store.progress)
	}
}

func TestProgressionWithoutStore(t *testing.T) {
	p := NewProgression(nil, quietLogger())
	p.Settle(120, 1)
	p.Record(RunRecord{ID: "x"})
	if p.Knowledge() != 1 || p.HighScore() != 120 {
		t.Errorf("in-memory progression = %+v", p.Progress())
	}
}
