package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pable/poolrank/internal/config"
	"github.com/pable/poolrank/internal/extract"
	"github.com/pable/poolrank/internal/github"
	"github.com/pable/poolrank/internal/league"
	"github.com/pable/poolrank/internal/report"
)

// reportOut overrides the REPORT_FILE destination when set.
var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch league issue comments and write the Markdown leaderboard",
	Long: `Fetch the comments on the configured GitHub issue, extract match
results of the form "Winner > Loser" or "Winner beat Loser", and overwrite
the leaderboard file with the rendered report.

Configuration comes from the environment (a .env file is honored):
  GITHUB_OWNER   repository owner
  GITHUB_REPO    repository name
  LEAGUE_ISSUE   issue number holding the result comments
  GITHUB_TOKEN   API token (optional, raises rate limits)
  REPORT_FILE    output path (default LEADERBOARD.md)`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportOut, "out", "", "output file (overrides REPORT_FILE)")
}

// commentLister fetches the comments on one issue. Satisfied by
// *github.Client.
type commentLister interface {
	ListIssueComments(owner, repo string, number int) ([]github.IssueComment, error)
}

func runReport(cmd *cobra.Command, args []string) error {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg config.Config
	if err := config.ReadEnv(&cfg); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if cfg.Owner == "" || cfg.Repo == "" || cfg.Issue == 0 {
		return fmt.Errorf("GITHUB_OWNER, GITHUB_REPO and LEAGUE_ISSUE must be set")
	}
	out := cfg.ReportFile
	if reportOut != "" {
		out = reportOut
	}

	return generateReport(github.NewClient(cfg.Token), cfg, out, time.Now(), log)
}

// generateReport fetches the issue comments, extracts the match results, and
// overwrites the report file. A failed fetch is zero input, not a failed run;
// zero extracted matches leave the previous report untouched. Both paths
// return nil.
func generateReport(lister commentLister, cfg config.Config, out string, now time.Time, log zerolog.Logger) error {
	comments, err := lister.ListIssueComments(cfg.Owner, cfg.Repo, cfg.Issue)
	if err != nil {
		log.Warn().Err(err).
			Str("repo", cfg.Owner+"/"+cfg.Repo).
			Int("issue", cfg.Issue).
			Msg("fetching comments failed, treating as empty")
		comments = nil
	}

	raw := make([]extract.Comment, len(comments))
	for i, c := range comments {
		raw[i] = extract.Comment{Body: c.Body, CreatedAt: c.CreatedAt}
	}
	matches := extract.Matches(raw)
	if len(matches) == 0 {
		log.Info().Int("comments", len(comments)).
			Msg("no match results found, leaving report untouched")
		return nil
	}

	doc := report.Markdown(league.Rank(matches), matches, now)
	if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info().Str("file", out).
		Int("matches", len(matches)).
		Msg("leaderboard written")
	return nil
}
