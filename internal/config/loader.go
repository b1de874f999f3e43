package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const dodgeFile = "dodge.yaml"

// LoadDodge loads the dodge configuration.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadDodge(customPath string) (DodgeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseDodge(data)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User config directory, then local configs directory. Broken files
	// here are skipped rather than fatal.
	for _, path := range []string{userConfigPath(dodgeFile), filepath.Join("configs", dodgeFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseDodge(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseDodge(defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseDodge decodes YAML over the defaults and validates the result.
func parseDodge(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DodgeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyDodgePreset modifies the config based on a difficulty preset.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Blocks.SpawnOdds = 30
		cfg.Blocks.InitialSpeed = 4
		cfg.PowerUps.SpawnOdds = 300
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Blocks.SpawnOdds = 12
		cfg.Blocks.InitialSpeed = 6.5
		cfg.PowerUps.SpawnOdds = 800
	default:
		cfg.Difficulty.Enabled = true
	}
}
