// Package window is a desktop front-end built on Ebitengine. It draws the
// world in pixels at its native size and reads real key state, so held
// keys need no emulation.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// Game is a registered game that can describe itself in world units.
type Game interface {
	registry.Game
	Snapshot() dodge.Snapshot
}

// Options configure a window run.
type Options struct {
	FPS    int
	Seed   int64
	Logger *log.Logger

	// OnEvent receives every event the game emits.
	OnEvent func(core.Event)

	// OnGameOver is called once per finished game with the final score.
	OnGameOver func(score int)
}

// Palette
var (
	colorBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorPlayer     = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colorShielded   = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	colorBlock      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorPowerUp    = color.RGBA{R: 0, G: 160, B: 0, A: 255}
	colorPanel      = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// Window adapts a Game to ebiten.Game.
type Window struct {
	game     Game
	opts     Options
	reported bool
	runtime  core.RuntimeConfig
}

// New creates a window front-end for game.
func New(game Game, opts Options) *Window {
	if opts.FPS <= 0 {
		opts.FPS = core.DefaultTickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	w := &Window{game: game, opts: opts}
	snap := game.Snapshot()
	w.runtime = core.RuntimeConfig{
		ScreenW:  int(snap.WorldW),
		ScreenH:  int(snap.WorldH),
		TickRate: opts.FPS,
		Seed:     opts.Seed,
	}
	game.Reset(w.runtime)
	return w
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(w *Window) error {
	ebiten.SetWindowSize(w.runtime.ScreenW, w.runtime.ScreenH)
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetTPS(w.opts.FPS)

	if err := ebiten.RunGame(w); err != nil && err != ebiten.Termination {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update advances one frame.
func (w *Window) Update() error {
	in, ctl := readInput(ebiten.IsKeyPressed, inpututil.AppendJustPressedKeys(nil))
	if ctl.quit {
		w.opts.Logger.Info("player quit", "score", w.game.State().Score)
		return ebiten.Termination
	}

	if w.game.State().GameOver {
		if ctl.restart {
			w.opts.Seed++
			w.runtime.Seed = w.opts.Seed
			w.game.Reset(w.runtime)
			w.reported = false
		}
		return nil
	}

	res := w.game.Step(in)
	for _, e := range res.Events {
		w.opts.Logger.Debug("event", "kind", e.Kind, "score", e.Score)
		if w.opts.OnEvent != nil {
			w.opts.OnEvent(e)
		}
	}
	if res.State.GameOver && !w.reported {
		w.reported = true
		w.opts.Logger.Info("game over", "score", res.State.Score)
		if w.opts.OnGameOver != nil {
			w.opts.OnGameOver(res.State.Score)
		}
	}
	return nil
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	screen.Fill(colorBackground)

	if snap.Phase == dodge.PhaseStart {
		drawLines(screen, snap, "DODGE THE BLOCKS", "", "Press any key to start", "Arrows move  P pause  Esc quit")
		return
	}

	for _, p := range snap.PowerUps {
		fillBox(screen, p.Box, colorPowerUp)
	}
	for _, b := range snap.Blocks {
		fillBox(screen, b, colorBlock)
	}
	playerColor := colorPlayer
	if snap.Shielded {
		playerColor = colorShielded
	}
	fillBox(screen, snap.Player, playerColor)

	for i, line := range hudLines(snap) {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*16)
	}

	switch {
	case snap.Phase == dodge.PhaseGameOver:
		drawLines(screen, snap, "GAME OVER", fmt.Sprintf("Your score: %d", snap.Score), "R restart  Esc quit")
	case snap.Paused:
		drawLines(screen, snap, "PAUSED", "Press P to resume")
	}
}

// Layout keeps the logical screen at world size; ebiten scales the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.runtime.ScreenW, w.runtime.ScreenH
}

func fillBox(dst *ebiten.Image, b core.Box, c color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

// debugGlyphW and debugGlyphH are the debug font's cell size.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// drawLines shows a centred panel of text.
func drawLines(dst *ebiten.Image, snap dodge.Snapshot, lines ...string) {
	widest := 0
	for _, l := range lines {
		widest = core.Max(widest, len([]rune(l)))
	}
	panelW := float32(widest*debugGlyphW + 40)
	panelH := float32(len(lines)*debugGlyphH + 24)
	x := (float32(snap.WorldW) - panelW) / 2
	y := (float32(snap.WorldH) - panelH) / 2
	vector.DrawFilledRect(dst, x, y, panelW, panelH, colorPanel, false)

	for i, l := range lines {
		lx := int(snap.WorldW)/2 - len([]rune(l))*debugGlyphW/2
		ly := int(y) + 12 + i*debugGlyphH
		ebitenutil.DebugPrintAt(dst, l, lx, ly)
	}
}

// hudLines formats the corner readout.
func hudLines(snap dodge.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Speed: %.1f", snap.Speed),
	}
	if snap.ShieldLeft > 0 {
		lines = append(lines, fmt.Sprintf("Shield: %.1fs", snap.ShieldLeft.Seconds()))
	}
	return lines
}
