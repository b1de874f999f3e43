// Package config provides YAML-based game configuration loading and
// difficulty management for the dodge game.
package config

import (
	"fmt"
	"time"
)

// DodgeConfig contains all tuning for the dodge game.
// Distances are world units; speeds are world units per frame.
type DodgeConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Blocks     BlockConfig      `yaml:"blocks"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Shield     ShieldConfig     `yaml:"shield"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// WorldConfig defines the simulated playfield.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"` // Frame rate the speeds are tuned for
}

// PlayerConfig defines the avatar.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between avatar and bottom edge
}

// BlockConfig defines falling obstacles.
type BlockConfig struct {
	Size         float64 `yaml:"size"`
	InitialSpeed float64 `yaml:"initial_speed"`
	SpawnOdds    int     `yaml:"spawn_odds"` // One spawn per N frames on average; 0 disables
}

// PowerUpConfig defines falling power-ups.
type PowerUpConfig struct {
	Size      float64 `yaml:"size"`
	Speed     float64 `yaml:"speed"`
	SpawnOdds int     `yaml:"spawn_odds"`
}

// ShieldConfig defines the shield power-up effect.
type ShieldConfig struct {
	DurationMS int `yaml:"duration_ms"`
}

// Duration returns the shield lifetime.
func (s ShieldConfig) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"` // How long a key event counts as held
}

// HoldWindow returns the configured hold window.
func (i InputConfig) HoldWindow() time.Duration {
	return time.Duration(i.HoldWindowMS) * time.Millisecond
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled   bool       `yaml:"enabled"`
	Policy    StepPolicy `yaml:"policy"`
	Every     int        `yaml:"every"`     // Score interval that triggers a step
	Increment float64    `yaml:"increment"` // Fall speed added per step
	MaxSpeed  float64    `yaml:"max_speed"` // 0 = unlimited
}

// StepPolicy selects when a difficulty step fires.
type StepPolicy string

const (
	// StepOncePerCrossing fires once each time the score reaches a new
	// positive multiple of Every.
	StepOncePerCrossing StepPolicy = "once_per_crossing"

	// StepEveryFrame fires on every frame whose score is a positive
	// multiple of Every, for as long as the score stays there.
	StepEveryFrame StepPolicy = "every_frame"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate checks that the config describes a playable game.
func (c DodgeConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.World.FPS <= 0:
		return fmt.Errorf("config: world fps must be positive, got %d", c.World.FPS)
	case c.Player.Size <= 0 || c.Player.Size > c.World.Width:
		return fmt.Errorf("config: player size %v does not fit world width %v", c.Player.Size, c.World.Width)
	case c.Player.Size+c.Player.BottomMargin > c.World.Height:
		return fmt.Errorf("config: player does not fit world height %v", c.World.Height)
	case c.Player.Speed < 0:
		return fmt.Errorf("config: player speed must not be negative")
	case c.Blocks.Size <= 0 || c.Blocks.Size > c.World.Width:
		return fmt.Errorf("config: block size %v does not fit world width %v", c.Blocks.Size, c.World.Width)
	case c.PowerUps.Size <= 0 || c.PowerUps.Size > c.World.Width:
		return fmt.Errorf("config: power-up size %v does not fit world width %v", c.PowerUps.Size, c.World.Width)
	case c.Blocks.SpawnOdds < 0 || c.PowerUps.SpawnOdds < 0:
		return fmt.Errorf("config: spawn odds must not be negative")
	case c.Shield.DurationMS <= 0:
		return fmt.Errorf("config: shield duration must be positive")
	}

	if c.Difficulty.Enabled {
		if c.Difficulty.Every <= 0 {
			return fmt.Errorf("config: difficulty.every must be positive")
		}
		switch c.Difficulty.Policy {
		case StepOncePerCrossing, StepEveryFrame:
		default:
			return fmt.Errorf("config: unknown difficulty policy %q", c.Difficulty.Policy)
		}
	}
	return nil
}
