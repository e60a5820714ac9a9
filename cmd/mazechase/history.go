package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-chase/internal/platform/tui"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [map]",
	Short: "Browse recorded runs",
	Long: `Browse the recorded runs of every map, or of one map.

Examples:
  mazechase history
  mazechase history classic
  mazechase history classic --plain --limit 5
  mazechase history classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs instead of opening the browser")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the map")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	exitOnError("loading config", err)

	mapID := ""
	if len(args) > 0 {
		mapID = args[0]
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	exitOnError("opening run history", err)
	defer store.Close()

	switch {
	case flagClear:
		if mapID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a map")
			store.Close()
			os.Exit(1)
		}
		if err := store.ClearRuns(mapID); err != nil {
			store.Close()
			exitOnError("clearing runs", err)
		}
		fmt.Printf("Cleared the runs of %s.\n", mapID)

	case flagPlain:
		if err := printHistory(store, mapID, flagLimit); err != nil {
			store.Close()
			exitOnError("reading runs", err)
		}

	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistoryView(store, mapID, width, height); err != nil {
			store.Close()
			exitOnError("showing history", err)
		}
	}
}

func printHistory(store *storage.Store, mapID string, limit int) error {
	runs, err := store.RecentRuns(mapID, limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(mapID)
	if err != nil {
		return err
	}

	title := mapID
	if title == "" {
		title = "all maps"
	}
	fmt.Printf("Run History - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %-7s  %-6s  %-8s  %-4s  %s\n", "Date", "Map", "Outcome", "Frames", "Restarts", "Left", "Player")
	fmt.Printf("  %-16s  %-10s  %-7s  %-6s  %-8s  %-4s  %s\n", "----", "---", "-------", "------", "--------", "----", "------")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-10s  %-7s  %-6d  %-8d  %-4d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.MapID, r.Outcome, r.Frames, r.Restarts, r.PickupsLeft, r.Player)
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Losses: %d  Closed: %d\n", stats.Runs, stats.Wins, stats.Losses, stats.Closes)
	if stats.BestFrames > 0 {
		fmt.Printf("Best win: %d frames\n", stats.BestFrames)
	}
	return nil
}
