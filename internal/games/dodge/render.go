package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	BlockChar  = '▓'
)

// Render draws the current frame. The world is scaled to the screen so any
// terminal size shows the whole playfield.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == PhaseStart {
		g.drawStartScreen(dst)
		return
	}

	for _, p := range g.powerUps {
		dst.DrawRect(g.toCells(dst, p.Box()), p.Kind.Glyph(), core.ColorGreen)
	}
	for _, b := range g.blocks {
		dst.DrawRect(g.toCells(dst, b.Box()), BlockChar, core.ColorRed)
	}

	playerColor := core.ColorBlue
	if g.player.ShieldActive(g.displayNow()) {
		playerColor = core.ColorBrightGreen
	}
	dst.DrawRect(g.toCells(dst, g.player.Box()), PlayerChar, playerColor)

	g.drawHUD(dst)

	switch {
	case g.phase == PhaseGameOver:
		dst.DrawMessage([]string{
			"GAME OVER",
			fmt.Sprintf("Your score: %d", g.score),
			"R: restart  Q: quit",
		}, core.ColorWhite)
	case g.paused:
		dst.DrawMessage([]string{"PAUSED", "Press P to resume"}, core.ColorYellow)
	}
}

func (g *Game) drawStartScreen(dst *core.Screen) {
	dst.DrawMessage([]string{
		"DODGE THE BLOCKS",
		"",
		"Press any key to start",
		"←/→ move  P pause  Q quit",
	}, core.ColorCyan)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorWhite)

	right := fmt.Sprintf(" Spd: %.1f ", g.difficulty.Speed())
	if remaining := g.player.ShieldRemaining(g.displayNow()); remaining > 0 {
		right = fmt.Sprintf(" Shield %.1fs%s", remaining.Seconds(), right)
	}
	x := dst.Width() - len([]rune(right)) - 1
	dst.DrawTextColor(x, 0, right, core.ColorGray)
}

// toCells maps a world-space box to the screen cells it covers. Anything in
// the world covers at least one cell.
func (g *Game) toCells(dst *core.Screen, b core.Box) core.Rect {
	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	x0 := int(math.Floor(b.X * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
