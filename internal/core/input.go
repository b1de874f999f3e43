package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move left while held
	ActionRight          // Right arrow, D, L - move right while held
	ActionUp             // Up arrow, W, K - menu navigation
	ActionDown           // Down arrow, S, J - menu navigation
	ActionAnyKey         // Any key press; dismisses the start screen
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionPause          // P key - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionAnyKey:
		return "AnyKey"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Held keys (Left/Right) and discrete presses share the same set.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// DefaultHoldWindow covers the gap between the first key event and the
// terminal's auto-repeat.
const DefaultHoldWindow = 550 * time.Millisecond

// HoldTracker turns discrete key events into held-key state.
// Terminals report presses and auto-repeats but never releases, so a
// direction counts as held until the window passes without another event
// for it, or until the opposite direction is pressed.
type HoldTracker struct {
	window time.Duration
	until  map[Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		until:  make(map[Action]time.Time),
	}
}

// Press records a key event for a holdable action at time now.
func (h *HoldTracker) Press(a Action, now time.Time) {
	switch a {
	case ActionLeft:
		delete(h.until, ActionRight)
	case ActionRight:
		delete(h.until, ActionLeft)
	}
	h.until[a] = now.Add(h.window)
}

// Release forgets all held actions.
func (h *HoldTracker) Release() {
	for k := range h.until {
		delete(h.until, k)
	}
}

// Held reports whether a is still considered held at time now.
func (h *HoldTracker) Held(a Action, now time.Time) bool {
	deadline, ok := h.until[a]
	return ok && now.Before(deadline)
}

// Apply sets every action still held at now on the frame and drops
// expired entries.
func (h *HoldTracker) Apply(f *InputFrame, now time.Time) {
	for a, deadline := range h.until {
		if now.Before(deadline) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}
