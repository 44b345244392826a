package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jly-arcade/internal/core"
	"github.com/vovakirdan/jly-arcade/internal/games/jly"
	"github.com/vovakirdan/jly-arcade/internal/platform/tui"
	"github.com/vovakirdan/jly-arcade/internal/registry"
)

var (
	flagConfig string
	flagWords  string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  J              - Fire "j"
  L / Y          - Fire "ly"
  Space          - Fire the last choice again (retry after game over)
  Left/Right     - Move the target lock
  Mouse click    - Left half fires "j", right half fires "ly"
  P/Esc          - Pause
  R              - Restart (after game over)
  Ctrl+S         - Save a screenshot to ~/.jly/screenshots
  Q/Ctrl+C       - Quit

Examples:
  jly play shooter
  jly play runner
  jly play runner --words hu
  jly play shooter --config ./my-shooter.yaml
  jly play shooter --seed 42 --log jly.log --debug`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagWords, "words", "", "Word list to use instead of the game's own (see 'jly list')")
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags hands --config and --words to the game package before creation.
func applyGameFlags(gameID string) {
	jly.SetConfigPath(gameID, flagConfig)
	jly.SetWordList(flagWords)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'jly list' to see available games.")
		os.Exit(1)
	}

	applyGameFlags(gameID)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if it cannot be opened
	store := openStore()

	// Run the game
	release := holdLogs(os.Stderr)
	runErr := tui.Run(game, store, logger, runtimeConfig())
	release()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
