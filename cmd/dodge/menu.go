package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a variant and Tab for
the high scores. Leaving a game (Esc on the start screen, while paused
or after game over) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

Examples:
  dodge menu
  dodge menu --fps 60
  dodge menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("dodge", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound := openSound(logger)
	defer sound.Close()

	session := tui.Session{
		Store:      store,
		Player:     playerName(),
		Logger:     logger,
		Sound:      sound,
		HoldWindow: cfg.Input.HoldWindow(),
		Options:    registry.Options{Config: &cfg},
	}
	return tui.RunSession(session, runtimeConfig(cfg))
}
