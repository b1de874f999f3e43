package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	clock := core.NewManualClock(epoch)
	return NewSessionModel(Session{
		Store:   openStore(t),
		Player:  "bob",
		Clock:   clock,
		Options: registry.Options{Config: quietConfig(), Clock: clock},
	}, screenCfg)
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(nil, screenCfg)
	view := m.View()
	for _, id := range []string{dodge.IDDefault, dodge.IDClassic} {
		info, ok := registry.Info(id)
		if !ok {
			t.Fatalf("%s not registered", id)
		}
		if !strings.Contains(view, info.Title) {
			t.Errorf("menu missing %q", info.Title)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, screenCfg)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Error("select should quit the menu program")
	}
	if m.Selected() == nil || m.Selected().GameID != dodge.IDClassic {
		t.Errorf("selected %+v, want %s", m.Selected(), dodge.IDClassic)
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	m := newTestSession(t)
	if !strings.Contains(m.View(), "D O D G E") {
		t.Fatal("session should open on the menu")
	}

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("view = %v, want game", m.view)
	}
	if cmd == nil {
		t.Error("entering a game should start ticking")
	}
	if !strings.Contains(m.View(), "Press any key to start") {
		t.Error("game start screen not shown")
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("esc on the start screen should return to the menu, view = %v", m.view)
	}

	// A tick left over from the game must not disturb the menu.
	m, _ = sendSession(t, m, TickMsg(epoch))
	if m.view != viewMenu || m.quitting {
		t.Error("stale tick changed the menu")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)
	if _, err := m.session.Store.SaveScore(dodge.IDDefault, "carol", 42); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("view = %v, want scores", m.view)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "carol", "42"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard missing %q", want)
		}
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("view = %v, want menu", m.view)
	}
	if !strings.Contains(m.View(), "best 42") {
		t.Error("menu should show the new best score")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)
	m, cmd := sendSession(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestScoreboardCyclesVariants(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(dodge.IDDefault, "dave", 7); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewScoreboardModel(store, dodge.IDDefault, 100, 30)
	if !strings.Contains(m.View(), "1 games") {
		t.Error("stats line missing")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("second variant should be empty")
	}
}
