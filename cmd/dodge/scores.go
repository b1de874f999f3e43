package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for a variant (default: dodge).

Examples:
  dodge scores
  dodge scores dodge_classic --limit 20
  dodge scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}
	info, _ := registry.Info(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig(defaultTuning())
		_, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dodge play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-16s  %s\n", i+1, entry.Score, entry.Player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load stats: %v\n", err)
	}
	return nil
}
