package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/campus-runner/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// KeyMapper translates key messages into game and menu actions.
// Bindings are checked in order, first match wins.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	bind := func(keys ...string) key.Binding { return key.NewBinding(key.WithKeys(keys...)) }

	return &KeyMapper{
		game: []actionBinding{
			{bind("ctrl+c", "q"), core.ActionQuit},
			{bind(" ", "up", "w"), core.ActionJump},
			{bind("down", "s"), core.ActionCrouchStart},
			{bind("p"), core.ActionPause},
			{bind("b", "esc"), core.ActionBack},
			{bind("r"), core.ActionRestart},
			{bind("c"), core.ActionContinue},
			{bind("enter"), core.ActionConfirm},
		},
		menu: []menuBinding{
			{bind("ctrl+c", "q"), MenuActionQuit},
			{bind("up", "w", "k"), MenuActionUp},
			{bind("down", "s", "j"), MenuActionDown},
			{bind("enter", " "), MenuActionSelect},
			{bind("u"), MenuActionUnlock},
			{bind("tab"), MenuActionScoreboard},
			{bind("b", "esc"), MenuActionBack},
		},
	}
}

// MapKey returns the game action for msg and whether it asks to quit.
// Crouch keys yield ActionCrouchStart only; terminals send no key release,
// so the caller holds the crouch with a latch.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MenuAction is an input on the character select screen.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionUnlock
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction returns the menu action for msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
