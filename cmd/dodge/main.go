// dodge is a small real-time arcade game: dodge the falling blocks, grab
// shields, and see how long you last.
//
// Usage:
//
//	dodge list               - List game variants
//	dodge play [variant]     - Play a variant (default: dodge)
//	dodge menu               - Pick variants from an interactive menu
//	dodge scores [variant]   - Show high scores
//	dodge serve              - Start SSH server for remote play
//	dodge config             - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/dodge.db)
//	--config <path>      - Load game tuning from a YAML file
//	--difficulty <name>  - Apply a preset: easy, normal, hard, fixed
//	--sound <volume>     - Play cues at this volume in [0, 1] (default: off)
//	--log-file <path>    - Write logs to a file
//	--debug              - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      float64
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge the Blocks - a tiny arcade game for your terminal",
	Long: `Dodge the Blocks: move left and right to avoid falling blocks.
Every block that falls past you scores a point, and the blocks speed up
as your score grows. Green diamonds give you a five second shield.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  dodge play
  dodge play dodge_classic --difficulty hard
  dodge play --frontend window
  dodge serve --ssh :2222
  dodge scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.arcade/dodge.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.Float64Var(&flagSound, "sound", 0, "Sound volume in [0, 1] (0 = off)")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
