package window

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

func heldKeys(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, h := range keys {
			if h == k {
				return true
			}
		}
		return false
	}
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name    string
		held    []ebiten.Key
		pressed []ebiten.Key
		want    []core.Action
		quit    bool
		restart bool
	}{
		{name: "nothing"},
		{name: "hold left", held: []ebiten.Key{ebiten.KeyArrowLeft}, want: []core.Action{core.ActionLeft}},
		{name: "hold both", held: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowRight}, want: []core.Action{core.ActionLeft, core.ActionRight}},
		{name: "any key", pressed: []ebiten.Key{ebiten.KeyX}, want: []core.Action{core.ActionAnyKey}},
		{name: "pause", pressed: []ebiten.Key{ebiten.KeyP}, want: []core.Action{core.ActionPause, core.ActionAnyKey}},
		{name: "escape", pressed: []ebiten.Key{ebiten.KeyEscape}, quit: true},
		{name: "restart", pressed: []ebiten.Key{ebiten.KeyR}, restart: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ctl := readInput(heldKeys(tt.held...), tt.pressed)
			for _, a := range tt.want {
				if !in.Has(a) {
					t.Errorf("missing %v", a)
				}
			}
			if len(tt.want) == 0 && (in.Has(core.ActionLeft) || in.Has(core.ActionRight)) {
				t.Error("unexpected movement")
			}
			if ctl.quit != tt.quit || ctl.restart != tt.restart {
				t.Errorf("control = %+v", ctl)
			}
		})
	}
}

func TestHUDLines(t *testing.T) {
	snap := dodge.Snapshot{Score: 12, Speed: 5.3}
	lines := hudLines(snap)
	if len(lines) != 2 || lines[0] != "Score: 12" || lines[1] != "Speed: 5.3" {
		t.Errorf("hud = %q", lines)
	}

	snap.ShieldLeft = 2500 * time.Millisecond
	lines = hudLines(snap)
	if len(lines) != 3 || lines[2] != "Shield: 2.5s" {
		t.Errorf("hud with shield = %q", lines)
	}
}
