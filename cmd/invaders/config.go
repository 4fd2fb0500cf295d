package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config YAML",
	Long: `Print the built-in configuration for a game (default: invaders).
Save it to ~/.invaders/configs/<game>.yaml or pass it with --config
to tweak the playfield, formation and difficulty.

Examples:
  invaders config > ~/.invaders/configs/invaders.yaml
  invaders config > my-invaders.yaml && invaders play --config my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no default config for %q\n", gameID)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
