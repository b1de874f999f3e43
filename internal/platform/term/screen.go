// Package term is a raw-terminal front-end built on tcell. It implements
// engine.Frontend for the synchronous runner.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Screen drives a tcell screen. Events are read by a background goroutine
// and consumed by Poll and WaitKey on the game goroutine.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	hold   *core.HoldTracker
	clock  core.Clock
}

// New opens the controlling terminal. Hold windows are measured on clock;
// nil means the system clock.
func New(clock core.Clock, holdWindow time.Duration) (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	return NewWithScreen(scr, clock, holdWindow)
}

// NewWithScreen wraps an existing tcell screen, such as a simulation screen.
func NewWithScreen(scr tcell.Screen, clock core.Clock, holdWindow time.Duration) (*Screen, error) {
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("term: cannot initialise screen: %w", err)
	}
	scr.HideCursor()
	scr.Clear()

	if clock == nil {
		clock = core.SystemClock{}
	}

	s := &Screen{
		screen: scr,
		events: make(chan tcell.Event, 100),
		hold:   core.NewHoldTracker(holdWindow),
		clock:  clock,
	}
	go s.pump()
	return s, nil
}

func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		s.events <- ev
	}
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Poll drains pending events into this frame's input.
func (s *Screen) Poll(now time.Time) (core.InputFrame, bool) {
	frame := core.NewInputFrame()
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return frame, true
			}
			if s.apply(ev, now, &frame) {
				return frame, true
			}
		default:
			s.hold.Apply(&frame, now)
			return frame, false
		}
	}
}

// apply folds one event into frame. Returns true on quit.
func (s *Screen) apply(ev tcell.Event, now time.Time, frame *core.InputFrame) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := keyAction(ev)
		switch action {
		case core.ActionQuit:
			return true
		case core.ActionLeft, core.ActionRight:
			s.hold.Press(action, now)
		default:
			frame.Set(action)
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

// WaitKey blocks for a key press. Auto-repeats of a direction that was held
// when the wait began are skipped, so a key held through a crash does not
// dismiss the game-over screen.
func (s *Screen) WaitKey(ctx context.Context) (core.Action, error) {
	defer s.hold.Release()
	for {
		select {
		case <-ctx.Done():
			return core.ActionNone, ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return core.ActionQuit, nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := keyAction(ev)
				now := s.clock.Now()
				if s.hold.Held(action, now) {
					s.hold.Press(action, now)
					continue
				}
				if action == core.ActionQuit {
					return core.ActionQuit, nil
				}
				return core.ActionAnyKey, nil
			case *tcell.EventResize:
				s.screen.Sync()
			}
		}
	}
}

// Present draws a frame and flushes it to the terminal.
func (s *Screen) Present(scr *core.Screen) error {
	s.screen.Clear()
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			c := scr.GetCell(x, y)
			if c.Rune == ' ' {
				continue
			}
			s.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	s.screen.Show()
	return nil
}

// keyAction maps a key event to a game action.
func keyAction(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return core.ActionLeft
		case 'd', 'D', 'l':
			return core.ActionRight
		case 'p', 'P', ' ':
			return core.ActionPause
		case 'q', 'Q':
			return core.ActionQuit
		case 'r', 'R':
			return core.ActionRestart
		}
	}
	return core.ActionAnyKey
}

// styleFor maps the palette to terminal colours.
func styleFor(c core.Color) tcell.Style {
	st := tcell.StyleDefault
	switch c {
	case core.ColorRed:
		return st.Foreground(tcell.ColorMaroon)
	case core.ColorGreen:
		return st.Foreground(tcell.ColorGreen)
	case core.ColorYellow:
		return st.Foreground(tcell.ColorYellow)
	case core.ColorBlue:
		return st.Foreground(tcell.ColorNavy)
	case core.ColorCyan:
		return st.Foreground(tcell.ColorTeal)
	case core.ColorWhite:
		return st.Foreground(tcell.ColorWhite)
	case core.ColorBrightRed:
		return st.Foreground(tcell.ColorRed)
	case core.ColorBrightGreen:
		return st.Foreground(tcell.ColorLime)
	case core.ColorBrightBlue:
		return st.Foreground(tcell.ColorBlue)
	case core.ColorGray:
		return st.Foreground(tcell.ColorGray)
	}
	return st
}
