package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// control carries the requests that never reach the game.
type control struct {
	quit    bool
	restart bool
}

// readInput builds a frame from the held-key query and the keys pressed
// since the previous frame.
func readInput(held func(ebiten.Key) bool, pressed []ebiten.Key) (core.InputFrame, control) {
	in := core.NewInputFrame()
	var ctl control

	if held(ebiten.KeyArrowLeft) || held(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if held(ebiten.KeyArrowRight) || held(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}

	for _, k := range pressed {
		switch k {
		case ebiten.KeyEscape, ebiten.KeyQ:
			ctl.quit = true
		case ebiten.KeyR:
			ctl.restart = true
		case ebiten.KeyP, ebiten.KeySpace:
			in.Set(core.ActionPause)
		}
		in.Set(core.ActionAnyKey)
	}
	return in, ctl
}
