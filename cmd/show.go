package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/poolrank/internal/league"
	"github.com/pable/poolrank/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current rankings",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches recorded yet. Run 'poolrank record <winner> - <loser>' to add one.")
		return nil
	}

	report.PrintRankingTable(os.Stdout, league.Rank(matches))
	return nil
}
