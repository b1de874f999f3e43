package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

var screenCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func quietConfig() *config.DodgeConfig {
	cfg := config.DefaultDodgeConfig()
	cfg.Blocks.SpawnOdds = 0
	cfg.PowerUps.SpawnOdds = 0
	return &cfg
}

// crashConfig gives a world one player wide with a block every frame.
func crashConfig() *config.DodgeConfig {
	cfg := config.DefaultDodgeConfig()
	cfg.World.Width = cfg.Player.Size
	cfg.Blocks.SpawnOdds = 1
	cfg.PowerUps.SpawnOdds = 0
	return &cfg
}

func newTestModel(t *testing.T, cfg *config.DodgeConfig, store *storage.Store) (GameModel, *dodge.Game, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(epoch)
	game := dodge.New(registry.Options{Config: cfg, Clock: clock})
	m := NewGameModel(game, Session{Store: store, Player: "alice", Clock: clock}, screenCfg)
	return m, game, clock
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = send(t, m, TickMsg(epoch))
	return m
}

func startModel(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = send(t, m, runeKey("x"))
	m = tick(t, m)
	if !m.State().Started {
		t.Fatal("game did not start after a key")
	}
	return m
}

func TestGameModelStartScreen(t *testing.T) {
	m, _, _ := newTestModel(t, quietConfig(), nil)

	if !strings.Contains(m.View(), "Press any key to start") {
		t.Error("start screen not shown")
	}
	m = tick(t, m)
	if m.State().Started {
		t.Error("game started without a key")
	}
	startModel(t, m)
}

func TestGameModelHeldMovement(t *testing.T) {
	m, game, clock := newTestModel(t, quietConfig(), nil)
	m = startModel(t, m)
	x0 := game.Player().X

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)
	m = tick(t, m)
	if got, want := game.Player().X, x0-14; got != want {
		t.Errorf("x after two held frames = %v, want %v", got, want)
	}

	clock.Advance(time.Second)
	tick(t, m)
	if got, want := game.Player().X, x0-14; got != want {
		t.Errorf("x after release = %v, want %v", got, want)
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t, quietConfig(), nil)
	m, cmd := send(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelBackOnlyWhenIdle(t *testing.T) {
	m, _, _ := newTestModel(t, quietConfig(), nil)
	m = startModel(t, m)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while running")
	}

	m = tick(t, m) // consume the stray key
	m, _ = send(t, m, runeKey("p"))
	m = tick(t, m)
	if !m.State().Paused {
		t.Fatal("p should pause")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestGameModelSavesScoreOnceAndRestarts(t *testing.T) {
	store := openStore(t)
	m, game, _ := newTestModel(t, crashConfig(), store)
	m = startModel(t, m)

	for i := 0; i < 200 && !m.State().GameOver; i++ {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("expected a crash")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over message not shown")
	}

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	scores, err := store.TopScores(dodge.IDDefault, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Player != "alice" || scores[0].Score != 0 {
		t.Errorf("saved %+v", scores[0])
	}

	m, _ = send(t, m, runeKey("r"))
	m = tick(t, m)
	if m.State().GameOver || m.State().Started {
		t.Errorf("after restart state = %+v, want fresh start screen", m.State())
	}
	if game.Phase() != dodge.PhaseStart {
		t.Errorf("phase = %v, want start", game.Phase())
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	m, game, _ := newTestModel(t, quietConfig(), nil)
	m = startModel(t, m)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)
	x := game.Player().X

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !m.State().Started || game.Player().X != x {
		t.Error("resize should not reset the game")
	}
	if lines := strings.Split(m.View(), "\n"); len(lines) != 40 {
		t.Errorf("view has %d lines, want 40", len(lines))
	}
}
