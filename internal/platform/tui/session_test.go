package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/campus-runner/internal/config"
	"github.com/vovakirdan/campus-runner/internal/core"
	"github.com/vovakirdan/campus-runner/internal/games/runner"
)

type memStore struct {
	progress runner.Progress
	saves    int
}

func (s *memStore) Load() (runner.Progress, error) { return s.progress, nil }

func (s *memStore) Save(p runner.Progress) error {
	s.progress = p
	s.saves++
	return nil
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

// newTestGame returns a game that never spawns anything.
func newTestGame(store runner.ProgressStore) *runner.Game {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.IntervalMS = 0
	cfg.Exam.Chance = 0

	opts := []runner.Option{runner.WithConfig(cfg)}
	if store != nil {
		opts = append(opts, runner.WithStore(store))
	}
	return runner.New(opts...)
}

func sendKeys(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

func TestMenuUnlockNeedsKnowledge(t *testing.T) {
	store := &memStore{progress: runner.DefaultProgress()}
	game := newTestGame(store)
	menu := NewMenuModel(game.Progression(), testRuntime())

	// Humanities is second and costs 50
	model := sendKeys(t, menu, "down", "enter")
	m := model.(MenuModel)

	if m.Started() {
		t.Fatal("locked character started a run")
	}
	if !m.messageErr || !strings.Contains(m.message, "Need 50 knowledge") {
		t.Errorf("message = %q (err %v)", m.message, m.messageErr)
	}
	if store.saves != 0 {
		t.Errorf("failed unlock saved %d times", store.saves)
	}
}

func TestMenuUnlockAndStart(t *testing.T) {
	store := &memStore{progress: runner.Progress{Knowledge: 60, Unlocked: []runner.CharacterID{runner.CharacterStem}}}
	game := newTestGame(store)
	menu := NewMenuModel(game.Progression(), testRuntime())

	model := sendKeys(t, menu, "down", "u")
	m := model.(MenuModel)
	if m.messageErr {
		t.Fatalf("unlock failed: %s", m.message)
	}
	if store.progress.Knowledge != 10 || !store.progress.IsUnlocked(runner.CharacterHumanities) {
		t.Errorf("stored progress = %+v", store.progress)
	}

	m = sendKeys(t, m, "enter").(MenuModel)
	if !m.Started() {
		t.Fatal("unlocked character did not start")
	}
	if game.Progression().Selected() != runner.CharacterHumanities {
		t.Errorf("selected = %s", game.Progression().Selected())
	}
}

func TestMenuCursorBounds(t *testing.T) {
	game := newTestGame(nil)
	menu := NewMenuModel(game.Progression(), testRuntime())

	m := sendKeys(t, menu, "up", "up").(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving up from the top", m.cursor)
	}
	m = sendKeys(t, m, "down", "down", "down", "down").(MenuModel)
	if m.cursor != len(runner.Characters())-1 {
		t.Errorf("cursor = %d, want last", m.cursor)
	}
}

func TestGameModelKeys(t *testing.T) {
	game := newTestGame(nil)
	gm := NewGameModel(game, testRuntime(), nil)
	gm.Init()

	model, _ := gm.Update(keyMsg(" "))
	m := model.(GameModel)
	if !m.inputFrame.Has(core.ActionJump) {
		t.Fatal("space did not queue a jump")
	}

	model, _ = m.Update(TickMsg{})
	m = model.(GameModel)
	if !m.inputFrame.Empty() {
		t.Error("input not cleared after a tick")
	}
	if game.RunState().Tick != 1 {
		t.Errorf("tick = %d, want 1", game.RunState().Tick)
	}

	// Restart is ignored while running
	model, _ = m.Update(keyMsg("r"))
	m = model.(GameModel)
	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart queued during a run")
	}

	// Esc pauses a run, a second Esc while paused goes back
	model, _ = m.Update(keyMsg("esc"))
	model, _ = model.Update(TickMsg{})
	m = model.(GameModel)
	if !m.State().Paused {
		t.Fatal("esc did not pause")
	}
	if m.BackToMenu() {
		t.Fatal("first esc left the game")
	}
	model, _ = m.Update(keyMsg("esc"))
	if !model.(GameModel).BackToMenu() {
		t.Error("esc while paused did not go back")
	}
}

func TestGameModelCrouchLatch(t *testing.T) {
	game := newTestGame(nil)
	gm := NewGameModel(game, testRuntime(), nil)
	gm.Init()

	model, _ := gm.Update(keyMsg("down"))
	model, _ = model.Update(TickMsg{})
	if !game.Snapshot().Player.Crouching {
		t.Fatal("down did not crouch")
	}

	// The latch releases after the hold window without further presses
	hold := game.Config().Input.CrouchHoldMS
	ticks := hold*testRuntime().TickRate/1000 + 2
	for range ticks {
		model, _ = model.Update(TickMsg{})
	}
	if game.Snapshot().Player.Crouching {
		t.Error("crouch not released after the hold window")
	}
}

func TestGameModelJumpReleasesCrouch(t *testing.T) {
	game := newTestGame(nil)
	gm := NewGameModel(game, testRuntime(), nil)
	gm.Init()

	model, _ := gm.Update(keyMsg("down"))
	model, _ = model.Update(TickMsg{})
	if !game.Snapshot().Player.Crouching {
		t.Fatal("down did not crouch")
	}

	model, _ = model.Update(keyMsg(" "))
	m := model.(GameModel)
	if !m.inputFrame.Has(core.ActionCrouchEnd) || !m.inputFrame.Has(core.ActionJump) {
		t.Fatal("jump did not release the crouch")
	}
	if m.latch.Holding() {
		t.Error("latch still holding after a jump")
	}

	m.Update(TickMsg{})
	p := game.Snapshot().Player
	if p.Crouching || !p.Jumping {
		t.Errorf("player crouching %v jumping %v, want a standing jump", p.Crouching, p.Jumping)
	}
}

func TestGameModelZeroTickRate(t *testing.T) {
	game := newTestGame(nil)
	rt := testRuntime()
	rt.TickRate = 0
	gm := NewGameModel(game, rt, nil)
	gm.Init()
	if gm.config.TickRate != 60 {
		t.Fatalf("tick rate = %d, want 60", gm.config.TickRate)
	}

	model, _ := gm.Update(keyMsg("down"))
	model, _ = model.Update(TickMsg{})
	if !game.Snapshot().Player.Crouching {
		t.Error("crouch released on the first tick")
	}
	if !model.(GameModel).latch.Holding() {
		t.Error("latch lapsed on the first tick")
	}
}

func TestGameModelLostMouseRelease(t *testing.T) {
	game := newTestGame(nil)
	gm := NewGameModel(game, testRuntime(), nil)
	gm.Init()

	model, _ := gm.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Y: 5})
	model, _ = model.Update(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft, Y: 15})
	model, _ = model.Update(TickMsg{})

	// A new press without a release in between
	model, _ = model.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Y: 5})
	m := model.(GameModel)
	if !m.inputFrame.Has(core.ActionCrouchEnd) {
		t.Fatal("dangling drag crouch not ended")
	}
	if m.gesture.Crouching() {
		t.Error("new gesture starts crouched")
	}
}

func TestGameModelMouseDrag(t *testing.T) {
	game := newTestGame(nil)
	gm := NewGameModel(game, testRuntime(), nil)
	gm.Init()

	model, _ := gm.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Y: 5})
	model, _ = model.Update(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft, Y: 15})
	m := model.(GameModel)
	if !m.inputFrame.Has(core.ActionCrouchStart) {
		t.Fatal("downward drag did not crouch")
	}

	model, _ = m.Update(TickMsg{})
	model, _ = model.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Y: 15})
	m = model.(GameModel)
	if !m.inputFrame.Has(core.ActionCrouchEnd) {
		t.Error("release after a drag did not end the crouch")
	}
}

func TestSessionFlow(t *testing.T) {
	game := newTestGame(nil)
	var model tea.Model = NewSessionModel(game, nil, "tester", testRuntime(), nil)

	// Tab opens the scoreboard, esc returns without quitting
	model = sendKeys(t, model, "tab")
	if s := model.(SessionModel); s.screen != screenScores {
		t.Fatalf("screen = %d, want scores", s.screen)
	}
	model = sendKeys(t, model, "esc")
	s := model.(SessionModel)
	if s.screen != screenMenu || s.quitting {
		t.Fatalf("after esc: screen %d quitting %v", s.screen, s.quitting)
	}

	// Enter starts the run with the starter character
	model = sendKeys(t, model, "enter")
	if s := model.(SessionModel); s.screen != screenGame {
		t.Fatalf("screen = %d, want game", s.screen)
	}
	model, _ = model.Update(TickMsg{})
	if game.RunState().Tick != 1 {
		t.Errorf("tick = %d, want 1", game.RunState().Tick)
	}

	// Pause, then back to the menu
	model = sendKeys(t, model, "p")
	model, _ = model.Update(TickMsg{})
	model = sendKeys(t, model, "b")
	if s := model.(SessionModel); s.screen != screenMenu {
		t.Fatalf("screen = %d, want menu", s.screen)
	}

	// Stale ticks are ignored by the menu
	model, cmd := model.Update(TickMsg{})
	if cmd != nil {
		t.Error("menu rescheduled a tick")
	}

	model, cmd = model.Update(keyMsg("q"))
	if !model.(SessionModel).quitting || cmd == nil {
		t.Error("q did not quit the session")
	}
}
