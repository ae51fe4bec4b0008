package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/poolrank/internal/league"
	"github.com/pable/poolrank/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats <player>",
	Short: "Show one player's record and head-to-head results",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	name := args[0]

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}

	stat, found := league.StatsFor(matches, name)
	if !found {
		fmt.Fprintf(os.Stdout, "No recorded matches for %q\n", name)
		return nil
	}

	report.PrintPlayerStats(os.Stdout, stat, league.VersusRecords(matches, name))
	return nil
}
