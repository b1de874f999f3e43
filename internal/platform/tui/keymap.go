package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Keys without a binding map to ActionAnyKey; the start screen waits for one.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	case "enter":
		return core.ActionConfirm, false
	}
	return core.ActionAnyKey, false
}

// MapKeyToFrame records a key on the frame. Direction keys go to the hold
// tracker instead, since terminals never report releases.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, hold *core.HoldTracker, c core.Clock) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	switch action {
	case core.ActionLeft, core.ActionRight:
		hold.Press(action, c.Now())
	default:
		frame.Set(action)
	}
	frame.Set(core.ActionAnyKey)
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
