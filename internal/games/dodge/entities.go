package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Direction is a horizontal move request.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Player is the avatar at the bottom of the world.
type Player struct {
	X, Y  float64 // Top-left corner
	Size  float64
	Speed float64 // Units moved per frame while a direction is held
	MaxX  float64 // World width minus size

	Shielded          bool
	ShieldActivatedAt time.Time
	ShieldDuration    time.Duration
}

// NewPlayer places the avatar horizontally centred, just above the bottom edge.
func NewPlayer(cfg config.DodgeConfig) Player {
	size := cfg.Player.Size
	return Player{
		X:              cfg.World.Width/2 - size/2,
		Y:              cfg.World.Height - size - cfg.Player.BottomMargin,
		Size:           size,
		Speed:          cfg.Player.Speed,
		MaxX:           cfg.World.Width - size,
		ShieldDuration: cfg.Shield.Duration(),
	}
}

// Move shifts the player one frame's worth in dir, clamped to the world.
func (p *Player) Move(dir Direction) {
	dx := p.Speed
	if dir == DirLeft {
		dx = -dx
	}
	p.X = core.ClampF(p.X+dx, 0, p.MaxX)
}

// Box returns the player's hitbox.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

// ActivateShield turns the shield on, restarting its timer at now.
func (p *Player) ActivateShield(now time.Time) {
	p.Shielded = true
	p.ShieldActivatedAt = now
}

// ShieldActive reports whether the shield protects the player at now.
// A shield activated at T covers [T, T+duration).
func (p Player) ShieldActive(now time.Time) bool {
	return p.Shielded && now.Sub(p.ShieldActivatedAt) < p.ShieldDuration
}

// ShieldRemaining returns how long the shield still lasts at now.
func (p Player) ShieldRemaining(now time.Time) time.Duration {
	if !p.ShieldActive(now) {
		return 0
	}
	return p.ShieldDuration - now.Sub(p.ShieldActivatedAt)
}

// CheckShield clears an expired shield. Returns true if it expired on this call.
func (p *Player) CheckShield(now time.Time) bool {
	if p.Shielded && !p.ShieldActive(now) {
		p.Shielded = false
		return true
	}
	return false
}

// ShiftShield pushes the shield timer forward by d (time spent paused).
func (p *Player) ShiftShield(d time.Duration) {
	if p.Shielded && d > 0 {
		p.ShieldActivatedAt = p.ShieldActivatedAt.Add(d)
	}
}

// Block is a falling obstacle. Its speed is fixed when it spawns.
type Block struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Fall advances the block by one frame.
func (b *Block) Fall() {
	b.Y += b.Speed
}

// Box returns the block's hitbox.
func (b Block) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Size, b.Size)
}

// PowerUpKind identifies what a power-up does when collected.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota // Temporary immunity to blocks
)

// powerUpKinds lists every kind the spawner can pick from.
var powerUpKinds = []PowerUpKind{PowerUpShield}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpShield:
		return '◆'
	default:
		return '?'
	}
}

// PowerUp is a falling collectible.
type PowerUp struct {
	X, Y  float64
	Size  float64
	Speed float64
	Kind  PowerUpKind
}

// Fall advances the power-up by one frame.
func (p *PowerUp) Fall() {
	p.Y += p.Speed
}

// Box returns the power-up's hitbox.
func (p PowerUp) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}
