package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in tuning, matching defaults/dodge.yaml.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
			FPS:    30,
		},
		Player: PlayerConfig{
			Size:         50,
			Speed:        7,
			BottomMargin: 10,
		},
		Blocks: BlockConfig{
			Size:         50,
			InitialSpeed: 5,
			SpawnOdds:    20,
		},
		PowerUps: PowerUpConfig{
			Size:      50,
			Speed:     4,
			SpawnOdds: 500,
		},
		Shield: ShieldConfig{
			DurationMS: 5000,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			Policy:    StepOncePerCrossing,
			Every:     10,
			Increment: 0.1,
		},
		Input: InputConfig{
			HoldWindowMS: 550,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `dodge config` dumps.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
