package dodge

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// Spawner runs the per-frame spawn trials. Its only state is the RNG, so a
// seed fully determines what appears and where.
type Spawner struct {
	rng      *rand.Rand
	worldW   float64
	blocks   config.BlockConfig
	powerUps config.PowerUpConfig
}

// NewSpawner creates a spawner for the given world and seed.
func NewSpawner(seed int64, cfg config.DodgeConfig) *Spawner {
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		worldW:   cfg.World.Width,
		blocks:   cfg.Blocks,
		powerUps: cfg.PowerUps,
	}
}

// Reset reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Spawn runs one frame of trials: a block with probability 1/BlockOdds at
// the given fall speed, then a power-up with probability 1/PowerUpOdds.
// New entities start at the top edge and are appended to the collections.
func (s *Spawner) Spawn(blocks []Block, powerUps []PowerUp, speed float64) ([]Block, []PowerUp) {
	if s.trial(s.blocks.SpawnOdds) {
		blocks = append(blocks, Block{
			X:     s.randomX(s.blocks.Size),
			Size:  s.blocks.Size,
			Speed: speed,
		})
	}

	if s.trial(s.powerUps.SpawnOdds) {
		powerUps = append(powerUps, PowerUp{
			X:     s.randomX(s.powerUps.Size),
			Size:  s.powerUps.Size,
			Speed: s.powerUps.Speed,
			Kind:  powerUpKinds[s.rng.Intn(len(powerUpKinds))],
		})
	}

	return blocks, powerUps
}

// trial succeeds with probability 1/odds. Odds of 0 never succeed.
func (s *Spawner) trial(odds int) bool {
	return odds > 0 && s.rng.Intn(odds) == 0
}

// randomX picks a whole-unit offset in [0, worldW - size].
func (s *Spawner) randomX(size float64) float64 {
	span := int(s.worldW - size)
	if span <= 0 {
		return 0
	}
	return float64(s.rng.Intn(span + 1))
}
