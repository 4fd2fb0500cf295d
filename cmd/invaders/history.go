package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
	flagHistoryID    string
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show recorded runs",
	Long: `Display the most recent runs for a game (default: invaders),
newest first, followed by the longest run.

Examples:
  invaders history
  invaders history --limit 50
  invaders history --tui
  invaders history --id 2f1c9a4e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse runs interactively")
	historyCmd.Flags().StringVar(&flagHistoryID, "id", "", "Show a single run by ID")
}

func runHistory(_ *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryID != "" {
		run, err := store.RunByID(flagHistoryID)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
			os.Exit(1)
		}
		if run == nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: no run with ID %q\n", flagHistoryID)
			os.Exit(1)
		}
		printRun(run)
		return
	}

	if flagHistoryTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, gameID, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(gameID, flagHistoryLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'invaders play %s' to record the first run!\n", gameID)
		return
	}

	fmt.Printf("  %-16s  %-14s  %5s  %5s  %5s  %6s  %s\n",
		"Date", "Outcome", "Waves", "Steps", "Drops", "Killed", "Time")
	fmt.Printf("  %-16s  %-14s  %5s  %5s  %5s  %6s  %s\n",
		"----", "-------", "-----", "-----", "-----", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-14s  %5d  %5d  %5d  %6d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome,
			r.Waves, r.Steps, r.Descents, r.Killed, r.Duration.Round(100*time.Millisecond))
	}

	best, err := store.BestRun(gameID)
	if err == nil && best != nil {
		fmt.Println()
		fmt.Printf("Longest run: %d steps over %d waves (id %s)\n", best.Steps, best.Waves, best.ID)
	}
}

func printRun(r *storage.RunEntry) {
	fmt.Printf("Run %s\n\n", r.ID)
	fmt.Printf("  Game:     %s\n", r.GameID)
	fmt.Printf("  Played:   %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Outcome:  %s\n", r.Outcome)
	fmt.Printf("  Waves:    %d\n", r.Waves)
	fmt.Printf("  Steps:    %d (%d descents)\n", r.Steps, r.Descents)
	fmt.Printf("  Killed:   %d\n", r.Killed)
	fmt.Printf("  Duration: %s\n", r.Duration.Round(100*time.Millisecond))
}
