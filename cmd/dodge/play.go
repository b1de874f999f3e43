package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/audio"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/engine"
	"github.com/vovakirdan/tui-dodge/internal/platform/term"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/platform/window"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: dodge).

Controls:
  Left/Right, A/D, H/L  - Move
  P/Space               - Pause
  R                     - Restart (after game over, tui only)
  Esc/B                 - Leave (start screen, paused or game over)
  Q/Ctrl+C              - Quit

Front-ends:
  tui     - Bubble Tea in the current terminal (default)
  term    - tcell full-screen terminal, one game per run
  window  - 800x600 desktop window

Difficulty options:
  easy    - Fewer blocks, slower start, more shields
  normal  - The configured tuning
  hard    - More blocks, faster start, fewer shields
  fixed   - No speed progression

Examples:
  dodge play
  dodge play dodge_classic
  dodge play --difficulty hard --seed 42
  dodge play --frontend window --sound 0.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Front-end: tui, term, window")
}

// playSetup is what every front-end needs for one local run.
type playSetup struct {
	game   registry.Game
	cfg    config.DodgeConfig
	logger *log.Logger
	store  *storage.Store
	sound  audio.Player
	player string
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("dodge", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, registry.Options{Config: &cfg})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	setup := playSetup{
		game:   game,
		cfg:    cfg,
		logger: logger,
		store:  openStore(logger),
		sound:  openSound(logger),
		player: playerName(),
	}
	defer setup.sound.Close()
	if setup.store != nil {
		defer setup.store.Close()
	}

	switch flagFrontend {
	case "tui":
		err = playTUI(setup)
	case "term":
		err = playTerm(setup)
	case "window":
		err = playWindow(setup)
	default:
		err = fmt.Errorf("unknown frontend %q (want tui, term or window)", flagFrontend)
	}

	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func playTUI(s playSetup) error {
	session := tui.Session{
		Store:      s.store,
		Player:     s.player,
		Logger:     s.logger,
		Sound:      s.sound,
		HoldWindow: s.cfg.Input.HoldWindow(),
		Options:    registry.Options{Config: &s.cfg},
	}
	return tui.Run(s.game, session, runtimeConfig(s.cfg))
}

func playTerm(s playSetup) error {
	clock := core.SystemClock{}
	scr, err := term.New(clock, s.cfg.Input.HoldWindow())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &engine.Runner{
		Game:     s.game,
		Frontend: scr,
		Clock:    clock,
		FPS:      tickRate(s.cfg),
		Seed:     seed(),
		Logger:   s.logger,
		OnEvent:  func(e core.Event) { s.sound.Play(e.Kind) },
	}
	res, err := runner.Run(ctx)
	scr.Close()
	if err != nil {
		return err
	}

	if s.game.State().GameOver {
		saveScore(s, res.Score)
		fmt.Printf("Game over! Your score: %d\n", res.Score)
	}
	return nil
}

func playWindow(s playSetup) error {
	wg, ok := s.game.(window.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run in a window", s.game.ID())
	}

	w := window.New(wg, window.Options{
		FPS:        tickRate(s.cfg),
		Seed:       seed(),
		Logger:     s.logger,
		OnEvent:    func(e core.Event) { s.sound.Play(e.Kind) },
		OnGameOver: func(score int) { saveScore(s, score) },
	})
	return window.Run(w)
}

func saveScore(s playSetup, score int) {
	s.logger.Info("game over", "game", s.game.ID(), "player", s.player, "score", score)
	if s.store == nil {
		return
	}
	if _, err := s.store.SaveScore(s.game.ID(), s.player, score); err != nil {
		s.logger.Warn("could not save score", "error", err)
	}
}
