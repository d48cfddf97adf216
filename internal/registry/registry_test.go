package registry_test

import (
	"testing"

	"github.com/vovakirdan/campus-runner/internal/registry"

	_ "github.com/vovakirdan/campus-runner/internal/games/runner"
)

func TestRunnerRegistered(t *testing.T) {
	games := registry.List()

	found := false
	for _, info := range games {
		if info.ID == "runner" {
			found = true
			if info.Title != "Campus Runner" {
				t.Errorf("Title = %q, want Campus Runner", info.Title)
			}
		}
	}
	if !found {
		t.Errorf("runner missing from List: %+v", games)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	registry.Register("runner", func() registry.Game { return nil })
}
