// jly is a pair of terminal spelling games about the Hungarian j/ly choice.
//
// Usage:
//
//	jly list              - List available games
//	jly play <game>       - Play a game (shooter or runner)
//	jly menu              - Start menu to pick games interactively
//	jly scores <game>     - Show high scores for a game
//	jly config <game>     - Print the default YAML config of a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: in-memory)
//	--log <path>    - Write logs to a file
//	--debug         - Log every game event
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/jly-arcade/internal/games/jly"
	"github.com/vovakirdan/jly-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

var (
	logger  = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "jly"})
	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jly",
	Short: "J/LY - spelling arcade games in your terminal",
	Long: `J/LY is a pair of terminal arcade games about one spelling question:
does the word take "j" or "ly"? Every falling meteor or oncoming crate
hides the answer; fire the right one before it reaches you.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores
  config   - Print a game's default config

Examples:
  jly list
  jly play shooter
  jly play runner --words hu
  jly menu --db ~/.jly/scores.db
  jly scores runner`,
	PersistentPreRunE: setupLogger,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryPath, "Path to scores database (:memory: keeps scores for this run only)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every game event")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger points the logger at --log and picks the level.
// Without a log file only warnings reach stderr, so the game screen stays clean.
func setupLogger(_ *cobra.Command, _ []string) error {
	level := log.WarnLevel
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(f)
		level = log.InfoLevel
	}
	if flagDebug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	return nil
}

// holdLogs buffers log output while a full-screen program owns the terminal.
// The returned release func points the logger back at out and writes
// everything held so far to it. With --log set nothing is held.
func holdLogs(out io.Writer) (release func()) {
	if flagLogPath != "" {
		return func() {}
	}
	var held bytes.Buffer
	logger.SetOutput(&held)
	return func() {
		logger.SetOutput(out)
		_, _ = out.Write(held.Bytes())
	}
}

// openStore opens the score database, or returns nil if it cannot be opened.
// The games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
