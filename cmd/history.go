package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/poolrank/internal/league"
	"github.com/pable/poolrank/internal/report"
)

// historyLimit caps the number of matches shown; 0 shows everything.
var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show match history, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", report.RecentWindow, "number of matches to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	total, err := db.CountMatches()
	if err != nil {
		return fmt.Errorf("count matches: %w", err)
	}
	if total == 0 {
		fmt.Fprintln(os.Stdout, "No matches recorded yet. Run 'poolrank record <winner> - <loser>' to add one.")
		return nil
	}

	matches, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}

	recent := league.Recent(matches, historyLimit)
	fmt.Fprintf(os.Stdout, "Last %d of %d matches:\n\n", len(recent), total)
	report.PrintHistoryTable(os.Stdout, recent)
	return nil
}
