package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/poolrank/internal/league"
	"github.com/pable/poolrank/internal/model"
	"github.com/pable/poolrank/internal/report"
)

// recordDate is the optional -d override; empty means "now".
var recordDate string

var recordCmd = &cobra.Command{
	Use:   "record <winner> - <loser>",
	Short: "Record a match result",
	Long: `Record a match result, winner first.

Examples:
  poolrank record Thomas - Raymond
  poolrank record Thomas - Raymond -d 2024-01-15`,
	Args: cobra.ExactArgs(3),
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().StringVarP(&recordDate, "date", "d", "", "match date as YYYY-MM-DD (default: today)")
}

func runRecord(cmd *cobra.Command, args []string) error {
	if args[1] != "-" {
		return fmt.Errorf("expected 'record <winner> - <loser>', got %q %q %q", args[0], args[1], args[2])
	}
	winner, loser := args[0], args[2]

	date := time.Now()
	if recordDate != "" {
		parsed, err := time.Parse("2006-01-02", recordDate)
		if err != nil {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DD", recordDate)
		}
		date = parsed
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	match := model.Match{Winner: winner, Loser: loser, Date: date}
	if err := db.InsertMatch(match); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Recorded: %s defeated %s (%s)\n\n",
		winner, loser, date.Format("2006-01-02"))

	// Show the updated rankings right away.
	matches, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	report.PrintRankingTable(os.Stdout, league.Rank(matches))
	return nil
}
