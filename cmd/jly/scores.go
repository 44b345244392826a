package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jly-arcade/internal/registry"
	"github.com/vovakirdan/jly-arcade/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores and all-time totals for the specified game.

Scores only outlive a session when --db points at a file.

Examples:
  jly scores shooter --db ~/.jly/scores.db
  jly scores runner --db ~/.jly/scores.db --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'jly list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	if flagDBPath == "" || flagDBPath == storage.MemoryPath {
		fmt.Fprintln(os.Stderr, "Note: the in-memory database starts empty; use --db <file> to read saved scores.")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'jly play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-6s  %s\n", "Rank", "Score", "Hits", "Acc", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-6s  %s\n", "----", "-----", "----", "---", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-5d  %-5s  %-6s  %s\n",
			i+1, entry.Score, entry.Hits,
			fmt.Sprintf("%.0f%%", entry.Accuracy()*100),
			entry.Duration.Round(time.Second),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	// All-time totals
	sum, err := store.Summary(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d over %d rounds, %d hits, %d wrong, %d crashes, %s played\n",
		sum.BestScore, sum.Rounds, sum.Hits, sum.Wrong, sum.Collisions, sum.PlayTime.Round(time.Second))
}
