package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game variants",
	Long:  `Shows every registered variant of the game with a short description.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return nil
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'dodge play <id>' to play a variant.")
	return nil
}
