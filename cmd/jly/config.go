package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jly-arcade/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print or check a game config",
	Long: `Print the built-in YAML config of a game, ready to copy and edit.

With --check, load the given file on top of the defaults and report
whether it is valid. Configs are looked up in this order:
  --config <path>, ~/.jly/configs/<game>.yaml, ./configs/<game>.yaml

Examples:
  jly config shooter > my-shooter.yaml
  jly config shooter --check my-shooter.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this config file instead of printing the default")
}

func runConfig(_ *cobra.Command, args []string) error {
	variant := args[0]
	if _, ok := config.Default(variant); !ok {
		return fmt.Errorf("unknown game %q", variant)
	}

	if flagCheck == "" {
		_, err := os.Stdout.Write(config.GetDefaultYAML(variant))
		return err
	}

	cfg, err := config.Load(variant, flagCheck)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (%q, %s spawns, %s shots, %d lives)\n",
		flagCheck, cfg.Title, cfg.Spawn.Cadence, cfg.Shot.Mode, cfg.Rules.MaxLives)
	return nil
}
