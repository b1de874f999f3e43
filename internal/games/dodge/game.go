// Package dodge implements Dodge the Blocks: the player slides along the
// bottom of the world avoiding falling blocks and collecting shield power-ups.
package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// Variant identifiers.
const (
	IDDefault = "dodge"
	IDClassic = "dodge_classic"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseStart    Phase = iota // Waiting for any key
	PhaseRunning               // Simulation advancing
	PhaseGameOver              // Terminal; shows the final score
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game implements the dodge simulation. It is driven one frame at a time by
// Step and owns every entity; nothing here touches I/O.
type Game struct {
	id    string
	title string
	cfg   config.DodgeConfig
	clock core.Clock

	runtime    core.RuntimeConfig
	phase      Phase
	paused     bool
	pausedAt   time.Time
	player     Player
	blocks     []Block
	powerUps   []PowerUp
	spawner    *Spawner
	difficulty *config.DifficultyManager
	score      int
	tick       uint64
}

// New creates the default variant: the fall speed steps once each time the
// score crosses a multiple of the configured interval.
func New(opts registry.Options) *Game {
	return newGame(IDDefault, "Dodge the Blocks", opts.GameConfig(), opts.GameClock())
}

// NewClassic creates the classic variant: the fall speed keeps rising on
// every frame the score sits on a multiple of the interval.
func NewClassic(opts registry.Options) *Game {
	cfg := opts.GameConfig()
	cfg.Difficulty.Policy = config.StepEveryFrame
	return newGame(IDClassic, "Dodge the Blocks (Classic)", cfg, opts.GameClock())
}

func newGame(id, title string, cfg config.DodgeConfig, clock core.Clock) *Game {
	g := &Game{
		id:         id,
		title:      title,
		cfg:        cfg,
		clock:      clock,
		difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.Blocks.InitialSpeed),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// Config returns the tuning the game runs with.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

// Reset starts a fresh game on the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.phase = PhaseStart
	g.paused = false
	g.pausedAt = time.Time{}
	g.player = NewPlayer(g.cfg)
	g.blocks = nil
	g.powerUps = nil
	g.score = 0
	g.tick = 0
	g.difficulty.Reset()

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, g.cfg)
	} else {
		g.spawner.Reset(runtime.Seed)
	}
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseStart:
		if in.Has(core.ActionAnyKey) {
			g.phase = PhaseRunning
			return g.result(core.Event{Kind: core.EventStarted})
		}
		return g.result()
	case PhaseGameOver:
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	now := g.clock.Now()
	var events []core.Event

	g.blocks, g.powerUps = g.spawner.Spawn(g.blocks, g.powerUps, g.difficulty.Speed())

	if in.Has(core.ActionLeft) {
		g.player.Move(DirLeft)
	}
	if in.Has(core.ActionRight) {
		g.player.Move(DirRight)
	}

	var crashed bool
	events, crashed = g.updateBlocks(now, events)
	if crashed {
		g.phase = PhaseGameOver
		events = append(events, core.Event{Kind: core.EventCrash, Score: g.score})
		return g.result(events...)
	}

	events = g.updatePowerUps(now, events)

	if g.player.CheckShield(now) {
		events = append(events, core.Event{Kind: core.EventShieldOff, Score: g.score})
	}

	if g.difficulty.Update(g.score) {
		events = append(events, core.Event{Kind: core.EventSpeedUp, Score: g.score})
	}

	return g.result(events...)
}

// updateBlocks moves every block, scores the ones that left the world and
// resolves collisions. It returns true when an unshielded hit ends the game;
// the remaining blocks are left untouched for the final frame.
func (g *Game) updateBlocks(now time.Time, events []core.Event) ([]core.Event, bool) {
	playerBox := g.player.Box()
	shielded := g.player.ShieldActive(now)

	live := g.blocks[:0]
	for i, b := range g.blocks {
		b.Fall()

		if b.Y > g.cfg.World.Height {
			g.score++
			events = append(events, core.Event{Kind: core.EventScored, Score: g.score})
			continue
		}

		if b.Box().Overlaps(playerBox) {
			if shielded {
				events = append(events, core.Event{Kind: core.EventShieldBlocked, Score: g.score})
				continue
			}
			live = append(live, b)
			live = append(live, g.blocks[i+1:]...)
			g.blocks = live
			return events, true
		}

		live = append(live, b)
	}
	g.blocks = live
	return events, false
}

// updatePowerUps moves every power-up and applies the ones the player touches.
func (g *Game) updatePowerUps(now time.Time, events []core.Event) []core.Event {
	playerBox := g.player.Box()

	live := g.powerUps[:0]
	for _, p := range g.powerUps {
		p.Fall()

		if p.Y > g.cfg.World.Height {
			continue
		}

		if p.Box().Overlaps(playerBox) {
			switch p.Kind {
			case PowerUpShield:
				g.player.ActivateShield(now)
				events = append(events, core.Event{Kind: core.EventShieldOn, Score: g.score})
			}
			continue
		}

		live = append(live, p)
	}
	g.powerUps = live
	return events
}

// togglePause flips the pause flag. Time spent paused is added back to the
// shield so a pause never shortens it.
func (g *Game) togglePause() {
	now := g.clock.Now()
	if !g.paused {
		g.paused = true
		g.pausedAt = now
		return
	}
	g.paused = false
	g.player.ShiftShield(now.Sub(g.pausedAt))
}

// displayNow is the time used to show the shield timer; it stands still
// while paused.
func (g *Game) displayNow() time.Time {
	if g.paused {
		return g.pausedAt
	}
	return g.clock.Now()
}

func (g *Game) result(events ...core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Started:  g.phase != PhaseStart,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Speed returns the fall speed newly spawned blocks receive.
func (g *Game) Speed() float64 {
	return g.difficulty.Speed()
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Blocks returns a copy of the live blocks.
func (g *Game) Blocks() []Block {
	return append([]Block(nil), g.blocks...)
}

// PowerUps returns a copy of the live power-ups.
func (g *Game) PowerUps() []PowerUp {
	return append([]PowerUp(nil), g.powerUps...)
}

func init() {
	registry.Register(IDDefault, "Dodge falling blocks; speed rises every 10 points",
		func(opts registry.Options) registry.Game {
			return New(opts)
		})
	registry.Register(IDClassic, "Classic pacing; speed keeps rising while the score sits on a multiple of 10",
		func(opts registry.Options) registry.Game {
			return NewClassic(opts)
		})
}
