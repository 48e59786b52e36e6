package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ortho-arena/internal/registry"
)

var (
	flagRunsLimit int
	flagRunsShow  int64
	flagRunsStats bool
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Show recorded runs",
	Long: `Display recent runs, optionally for one level.

Examples:
  arena runs
  arena runs range --limit 5
  arena runs --show 12     # one run with its event timeline
  arena runs --stats       # per-level totals
  arena runs range --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().Int64Var(&flagRunsShow, "show", 0, "Show one run with its timeline")
	runsCmd.Flags().BoolVar(&flagRunsStats, "stats", false, "Show per-level totals")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the runs of the given level")
}

func runRuns(cmd *cobra.Command, args []string) error {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		if !registry.Exists(levelID) {
			fmt.Fprintf(os.Stderr, "Warning: level %q is not registered\n", levelID)
		}
	}

	e, err := loadEnv(os.Stderr)
	if err != nil {
		return err
	}
	store, err := e.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagRunsClear:
		if levelID == "" {
			return fmt.Errorf("--clear needs a level")
		}
		if err := store.ClearRuns(levelID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s\n", levelID)
		return nil

	case flagRunsShow > 0:
		r, err := store.Run(flagRunsShow)
		if err != nil {
			return err
		}
		fmt.Printf("Run #%d - %s by %s, seed %d\n", r.ID, r.LevelID, r.Player, r.Seed)
		fmt.Printf("  %s, %d ticks, %d shots, %d hits (%.0f%%), %d fizzles, %d pickups\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Ticks, r.Shots, r.Hits, r.Accuracy()*100, r.Fizzles, r.Pickups)
		printTimeline(r.Timeline)
		return nil

	case flagRunsStats:
		stats, err := store.AllLevelStats()
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(stats))
		for id := range stats {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Printf("  %-12s  %-5s  %-7s  %-7s  %-5s  %s\n", "Level", "Runs", "Shots", "Hits", "Acc", "Last played")
		fmt.Printf("  %-12s  %-5s  %-7s  %-7s  %-5s  %s\n", "-----", "----", "-----", "----", "---", "-----------")
		for _, id := range ids {
			ls := stats[id]
			fmt.Printf("  %-12s  %-5d  %-7d  %-7d  %-5s  %s\n",
				ls.LevelID, ls.Runs, ls.Shots, ls.Hits, percent(ls.Accuracy()), ls.LastPlayed.Format("2006-01-02 15:04"))
		}
		return nil
	}

	runs, err := store.RecentRuns(levelID, flagRunsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'arena play' or 'arena simulate <level>' to record one.")
		return nil
	}

	fmt.Printf("  %-5s  %-10s  %-10s  %-6s  %-5s  %-5s  %-5s  %s\n", "Run", "Level", "Player", "Ticks", "Shots", "Hits", "Acc", "Date")
	fmt.Printf("  %-5s  %-10s  %-10s  %-6s  %-5s  %-5s  %-5s  %s\n", "---", "-----", "------", "-----", "-----", "----", "---", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-10s  %-10s  %-6d  %-5d  %-5d  %-5s  %s\n",
			r.ID, r.LevelID, r.Player, r.Ticks, r.Shots, r.Hits, percent(r.Accuracy()), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func percent(f float64) string {
	return strconv.Itoa(int(f*100+0.5)) + "%"
}
