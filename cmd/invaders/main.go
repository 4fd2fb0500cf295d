// invaders marches a Space Invaders formation across your terminal.
//
// Usage:
//
//	invaders list               - List available games
//	invaders play [game]        - Play a game (default: invaders)
//	invaders serve              - Start SSH server for remote play
//	invaders history [game]     - Show recorded runs
//	invaders config [game]      - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible runs
//	--db <path>        - Set database path (default: ~/.invaders/runs.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultGame = "invaders"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders formation in your terminal",
	Long: `invaders runs the classic invader formation march in your terminal.

The formation sweeps sideways, drops a row at each wall and reverses,
speeding up wave after wave until it reaches the ground.

Available commands:
  list     - Show all available games
  play     - Play a game
  serve    - Start SSH server for remote play
  history  - View recorded runs
  config   - Print the default config YAML

Examples:
  invaders play
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders history --tui`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
