package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pable/poolrank/internal/league"
	"github.com/pable/poolrank/internal/model"
)

// instructions is the static boilerplate appended to every generated report.
// Downstream consumers parse the tables above it, so it changes rarely.
const instructions = `## Submitting results

Comment on the league issue with the result of your match:

` + "```" + `
Winner > Loser
Winner beat Loser
` + "```" + `

One comment may contain several results; they are recorded in order.
`

// Markdown renders the full leaderboard document: title, ranking table, the
// last 10 matches newest first, submission instructions, and a generation
// timestamp. Column order and header text are fixed — the file is parsed by
// downstream consumers.
func Markdown(stats []model.PlayerStat, matches []model.Match, now time.Time) string {
	var b strings.Builder

	b.WriteString("# 🎱 Pool League Rankings\n\n")
	b.WriteString("| Rank | Player | Wins | Losses | Total | Win Rate |\n")
	b.WriteString("|------|--------|------|--------|-------|----------|\n")
	for i, s := range stats {
		fmt.Fprintf(&b, "| %d | %s | %d | %d | %d | %.1f%% |\n",
			i+1, s.Name, s.Wins, s.Losses, s.Total(), s.WinRate()*100)
	}

	b.WriteString("\n## Recent Matches\n\n")
	b.WriteString("| Date | Match | Winner |\n")
	b.WriteString("|------|-------|--------|\n")
	for _, m := range league.Recent(matches, RecentWindow) {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			m.Date.Format("2006-01-02"), m.Label(), m.Winner)
	}

	b.WriteString("\n")
	b.WriteString(instructions)
	fmt.Fprintf(&b, "\n_Last updated: %s_\n", now.Format("2006-01-02 15:04 MST"))
	return b.String()
}
