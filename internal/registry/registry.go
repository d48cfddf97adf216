// Package registry lists the games built into the binary. Game packages
// register themselves from init, so the CLI finds them through a blank import.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/campus-runner/internal/core"
)

// Game is a fixed-tick simulation driven by the platform layer. It knows
// nothing about terminals: it reads abstract actions and draws into a Screen.
type Game interface {
	// ID is the stable identifier used on the command line.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State reports score, pause and game over.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new game instance.
type Factory func() Game

var (
	mu     sync.RWMutex
	titles = map[string]string{}
)

// Register adds a game under id, reading its title from a fresh instance.
// Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := titles[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	titles[id] = f().Title()
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(titles))
	for id, title := range titles {
		out = append(out, GameInfo{ID: id, Title: title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}
