package registry

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

type stubGame struct {
	id    string
	speed float64
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stubFactory(id string) Factory {
	return func(opts Options) Game {
		return &stubGame{id: id, speed: opts.GameConfig().Blocks.InitialSpeed}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", "second", stubFactory("test_b"))
	Register("test_a", "first", stubFactory("test_a"))

	if !Exists("test_a") || Exists("test_missing") {
		t.Error("Exists() gave the wrong answer")
	}

	info, ok := Info("test_a")
	if !ok || info.Title != "Stub test_a" || info.Description != "first" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	list := List()
	var ids []string
	for _, g := range list {
		ids = append(ids, g.ID)
	}
	posA, posB := -1, -1
	for i, id := range ids {
		switch id {
		case "test_a":
			posA = i
		case "test_b":
			posB = i
		}
	}
	if posA < 0 || posB < 0 || posA > posB {
		t.Errorf("List() should be sorted by ID, got %v", ids)
	}

	if _, err := Create("test_missing", Options{}); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestCreatePassesOptions(t *testing.T) {
	Register("test_opts", "", stubFactory("test_opts"))

	cfg := config.DefaultDodgeConfig()
	cfg.Blocks.InitialSpeed = 42
	g, err := Create("test_opts", Options{Config: &cfg})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.(*stubGame).speed != 42 {
		t.Error("factory did not receive the config")
	}

	g, _ = Create("test_opts", Options{})
	if g.(*stubGame).speed != config.DefaultDodgeConfig().Blocks.InitialSpeed {
		t.Error("nil config should fall back to defaults")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", "", stubFactory("test_dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", "", stubFactory("test_dup"))
}

func TestOptionsClockDefault(t *testing.T) {
	if _, ok := (Options{}).GameClock().(core.SystemClock); !ok {
		t.Error("nil clock should default to SystemClock")
	}
}
