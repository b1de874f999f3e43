package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

func TestSpawnerOdds(t *testing.T) {
	tests := []struct {
		name       string
		blockOdds  int
		powerOdds  int
		wantBlocks int
		wantPowers int
	}{
		{"disabled", 0, 0, 0, 0},
		{"always", 1, 1, 100, 100},
		{"blocks only", 1, 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultDodgeConfig()
			cfg.Blocks.SpawnOdds = tt.blockOdds
			cfg.PowerUps.SpawnOdds = tt.powerOdds
			s := NewSpawner(1, cfg)

			var blocks []Block
			var powers []PowerUp
			for i := 0; i < 100; i++ {
				blocks, powers = s.Spawn(blocks, powers, 5)
			}
			if len(blocks) != tt.wantBlocks || len(powers) != tt.wantPowers {
				t.Errorf("got %d blocks %d power-ups, want %d %d",
					len(blocks), len(powers), tt.wantBlocks, tt.wantPowers)
			}
		})
	}
}

func TestSpawnerPlacement(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Blocks.SpawnOdds = 1
	cfg.PowerUps.SpawnOdds = 1
	s := NewSpawner(42, cfg)

	var blocks []Block
	var powers []PowerUp
	for i := 0; i < 500; i++ {
		blocks, powers = s.Spawn(blocks, powers, 6.5)
	}

	for _, b := range blocks {
		if b.X < 0 || b.X > 750 || b.Y != 0 {
			t.Fatalf("block out of range: %+v", b)
		}
		if b.Speed != 6.5 {
			t.Fatalf("block speed %v, want current speed 6.5", b.Speed)
		}
	}
	for _, p := range powers {
		if p.X < 0 || p.X > 750 || p.Y != 0 {
			t.Fatalf("power-up out of range: %+v", p)
		}
		if p.Speed != 4 || p.Kind != PowerUpShield {
			t.Fatalf("unexpected power-up %+v", p)
		}
	}
}

func TestSpawnerRoughFrequency(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := NewSpawner(2024, cfg)

	var blocks []Block
	var powers []PowerUp
	const frames = 20000
	for i := 0; i < frames; i++ {
		blocks, powers = s.Spawn(blocks, powers, 5)
	}

	// Expect about 1000 blocks (1/20) and 40 power-ups (1/500).
	if len(blocks) < 850 || len(blocks) > 1150 {
		t.Errorf("blocks = %d, want about 1000", len(blocks))
	}
	if len(powers) < 15 || len(powers) > 70 {
		t.Errorf("power-ups = %d, want about 40", len(powers))
	}
}

func TestSpawnerReset(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Blocks.SpawnOdds = 1
	s := NewSpawner(5, cfg)

	first, _ := s.Spawn(nil, nil, 5)
	s.Spawn(nil, nil, 5)
	s.Reset(5)
	again, _ := s.Spawn(nil, nil, 5)

	if first[0].X != again[0].X {
		t.Errorf("reset did not replay: %v vs %v", first[0].X, again[0].X)
	}
}
