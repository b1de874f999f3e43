package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the variant menu and its
own game. Scores are stored per server, recorded under the SSH user name,
so everyone shares one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  dodge serve                           # Listen on :23234 with auto-generated key
  dodge serve --ssh :2222               # Listen on port 2222
  dodge serve --host-key ./my_host_key  # Use specific host key
  dodge serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	game, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("dodge-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.FPS = tickRate(game)
	cfg.Game = &game
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting dodge SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
