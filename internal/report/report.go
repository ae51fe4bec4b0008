// Package report renders league rankings as console tables and as the
// Markdown leaderboard document.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/poolrank/internal/model"
)

// RecentWindow is the number of matches shown in the recent-matches view.
const RecentWindow = 10

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintRankingTable prints the leaderboard. Position is 1-based in sorted
// order; win rate is a percentage with one decimal.
func PrintRankingTable(w io.Writer, stats []model.PlayerStat) {
	table := newTable(w)
	table.Header("RANK", "PLAYER", "W", "L", "TOTAL", "WIN%")

	for i, s := range stats {
		table.Append(
			strconv.Itoa(i+1),
			s.Name,
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Total()),
			fmt.Sprintf("%.1f%%", s.WinRate()*100),
		)
	}
	table.Render()
}

// PrintHistoryTable prints matches as given (callers pass them newest first).
func PrintHistoryTable(w io.Writer, matches []model.Match) {
	table := newTable(w)
	table.Header("DATE", "MATCH", "WINNER")

	for _, m := range matches {
		table.Append(m.Date.Format("2006-01-02"), m.Label(), m.Winner)
	}
	table.Render()
}

// PrintPlayerStats prints one player's aggregate plus their head-to-head
// records.
func PrintPlayerStats(w io.Writer, stat model.PlayerStat, versus []model.VersusRecord) {
	fmt.Fprintf(w, "\n%s: %d wins, %d losses over %d matches (%.1f%% win rate)\n\n",
		stat.Name, stat.Wins, stat.Losses, stat.Total(), stat.WinRate()*100)

	if len(versus) == 0 {
		return
	}
	table := newTable(w)
	table.Header("OPPONENT", "W", "L")
	for _, r := range versus {
		table.Append(r.Opponent, strconv.Itoa(r.Wins), strconv.Itoa(r.Losses))
	}
	table.Render()
}
