package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/audio"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// loadGameConfig resolves --config and --difficulty into the tuning every
// variant is created with.
func loadGameConfig() (config.DodgeConfig, error) {
	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		return config.DodgeConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DodgeConfig{}, err
	}
	if flagDifficulty != "" {
		config.ApplyDodgePreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return config.DodgeConfig{}, err
	}
	return cfg, nil
}

// newLogger writes to --log-file when given, otherwise to fallback.
// Full-screen front-ends pass io.Discard so logs can't tear the display.
// The returned func closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openStore opens the scores database; the game still runs without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openSound returns the speaker for --sound, or a silent player.
func openSound(logger *log.Logger) audio.Player {
	if flagSound <= 0 {
		return audio.Nop{}
	}
	spk, err := audio.NewSpeaker(min(flagSound, 1))
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return audio.Nop{}
	}
	return spk
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig(cfg config.DodgeConfig) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cfg),
		Seed:     flagSeed,
	}
}

func tickRate(cfg config.DodgeConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	if cfg.World.FPS > 0 {
		return cfg.World.FPS
	}
	return core.DefaultTickRate
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// playerName names local players in the scores table.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// variantArg returns the variant named by args, defaulting to dodge.
func variantArg(args []string) (string, error) {
	id := "dodge"
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q (run 'dodge list' to see them)", id)
	}
	return id, nil
}
