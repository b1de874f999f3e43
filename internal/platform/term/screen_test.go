package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func newSim(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	return newSimWithClock(t, nil)
}

func newSimWithClock(t *testing.T, clock core.Clock) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewWithScreen(sim, clock, 500*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(s.Close)
	return s, sim
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Action
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionRight},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), core.ActionLeft},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), core.ActionRight},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), core.ActionPause},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), core.ActionRestart},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.ActionAnyKey},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.ActionAnyKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyAction(tt.ev); got != tt.want {
				t.Errorf("keyAction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyHoldsDirections(t *testing.T) {
	s, _ := newSim(t)
	now := time.Now()

	frame := core.NewInputFrame()
	if quit := s.apply(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), now, &frame); quit {
		t.Fatal("left should not quit")
	}
	s.hold.Apply(&frame, now)
	if !frame.Has(core.ActionLeft) {
		t.Error("left should be held on the frame it was pressed")
	}

	later := core.NewInputFrame()
	s.hold.Apply(&later, now.Add(200*time.Millisecond))
	if !later.Has(core.ActionLeft) {
		t.Error("left should stay held inside the window")
	}

	expired := core.NewInputFrame()
	s.hold.Apply(&expired, now.Add(time.Second))
	if expired.Has(core.ActionLeft) {
		t.Error("left should be released after the window")
	}

	if !s.apply(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now, &frame) {
		t.Error("q should quit")
	}
}

func TestWaitKey(t *testing.T) {
	s, sim := newSim(t)

	sim.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := s.WaitKey(ctx)
	if err != nil || got != core.ActionAnyKey {
		t.Fatalf("WaitKey = %v, %v; want any key", got, err)
	}

	sim.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	got, err = s.WaitKey(ctx)
	if err != nil || got != core.ActionQuit {
		t.Fatalf("WaitKey = %v, %v; want quit", got, err)
	}
}

func TestWaitKeyMeasuresHoldOnInjectedClock(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s, sim := newSimWithClock(t, clock)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Left held through the crash: its auto-repeat is skipped.
	frame := core.NewInputFrame()
	s.apply(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), clock.Now(), &frame)
	sim.PostEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	sim.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if got, err := s.WaitKey(ctx); err != nil || got != core.ActionQuit {
		t.Fatalf("WaitKey = %v, %v; want the repeat skipped and quit", got, err)
	}

	// Once the clock passes the window, the same key counts as a fresh press.
	s.apply(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), clock.Now(), &frame)
	clock.Advance(time.Second)
	sim.PostEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if got, err := s.WaitKey(ctx); err != nil || got != core.ActionAnyKey {
		t.Fatalf("WaitKey = %v, %v; want any key after the window", got, err)
	}
}

func TestWaitKeyCancelled(t *testing.T) {
	s, _ := newSim(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.WaitKey(ctx); err == nil {
		t.Error("expected context error")
	}
}

func TestPresent(t *testing.T) {
	s, sim := newSim(t)

	scr := core.NewScreen(80, 24)
	scr.SetColor(3, 4, '█', core.ColorBlue)
	scr.DrawText(0, 0, "Score: 9")
	if err := s.Present(scr); err != nil {
		t.Fatalf("Present: %v", err)
	}

	r, _, style, _ := sim.GetContent(3, 4)
	if r != '█' {
		t.Errorf("cell rune = %q", r)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.ColorNavy {
		t.Errorf("cell colour = %v, want navy", fg)
	}
	if r, _, _, _ := sim.GetContent(7, 0); r != '9' {
		t.Errorf("text cell = %q, want '9'", r)
	}
}
