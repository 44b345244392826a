package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jly-arcade/internal/registry"
	"github.com/vovakirdan/jly-arcade/internal/words"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games and word lists.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Word lists:")
	for _, name := range words.Available() {
		bank, err := words.Load(name)
		if err != nil {
			fmt.Printf("  %-*s  (broken: %v)\n", maxIDLen, name, err)
			continue
		}
		fmt.Printf("  %-*s  %d words\n", maxIDLen, name, bank.Len())
	}

	fmt.Println()
	fmt.Println("Run 'jly play <id>' to play a game.")
}
