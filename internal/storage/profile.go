package storage

import "github.com/vovakirdan/campus-runner/internal/games/runner"

// Profile binds a Store to one profile name so it can back a runner game.
type Profile struct {
	store *Store
	name  string
}

// Profile returns the progress store for the named profile.
// An empty name selects DefaultProfile.
func (s *Store) Profile(name string) *Profile {
	if name == "" {
		name = DefaultProfile
	}
	return &Profile{store: s, name: name}
}

// Name returns the profile name.
func (p *Profile) Name() string {
	return p.name
}

// Load implements runner.ProgressStore.
func (p *Profile) Load() (runner.Progress, error) {
	return p.store.LoadProgress(p.name)
}

// Save implements runner.ProgressStore.
func (p *Profile) Save(progress runner.Progress) error {
	return p.store.SaveProgress(p.name, progress)
}

// Update implements runner.ProgressUpdater.
func (p *Profile) Update(fn func(runner.Progress) (runner.Progress, error)) (runner.Progress, error) {
	return p.store.UpdateProgress(p.name, fn)
}

// RecordRun implements runner.RunRecorder.
func (p *Profile) RecordRun(r runner.RunRecord) error {
	_, err := p.store.RecordRun(p.name, r)
	return err
}

var (
	_ runner.ProgressStore   = (*Profile)(nil)
	_ runner.ProgressUpdater = (*Profile)(nil)
	_ runner.RunRecorder     = (*Profile)(nil)
)
