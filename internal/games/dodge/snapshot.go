package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// ItemView is a power-up as seen by a renderer.
type ItemView struct {
	Box  core.Box
	Kind PowerUpKind
}

// Snapshot captures the complete game state in world units, for determinism
// testing and for front-ends that draw pixels instead of cells.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	Paused       bool
	Score        int
	Speed        float64
	WorldW       float64
	WorldH       float64
	Player       core.Box
	Shielded     bool
	ShieldLeft   time.Duration
	Blocks       []core.Box
	PowerUps     []ItemView
	SpeedSteps   int
	LiveEntities int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Paused:     g.paused,
		Score:      g.score,
		Speed:      g.difficulty.Speed(),
		WorldW:     g.cfg.World.Width,
		WorldH:     g.cfg.World.Height,
		Player:     g.player.Box(),
		Shielded:   g.player.ShieldActive(g.displayNow()),
		ShieldLeft: g.player.ShieldRemaining(g.displayNow()),
		Blocks:     make([]core.Box, 0, len(g.blocks)),
		PowerUps:   make([]ItemView, 0, len(g.powerUps)),
		SpeedSteps: g.difficulty.Steps(),
	}
	for _, b := range g.blocks {
		s.Blocks = append(s.Blocks, b.Box())
	}
	for _, p := range g.powerUps {
		s.PowerUps = append(s.PowerUps, ItemView{Box: p.Box(), Kind: p.Kind})
	}
	s.LiveEntities = len(s.Blocks) + len(s.PowerUps)
	return s
}
