package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pable/poolrank/internal/config"
	"github.com/pable/poolrank/internal/github"
)

// fakeLister returns canned comments (or an error) instead of calling the API.
type fakeLister struct {
	comments []github.IssueComment
	err      error
}

func (f *fakeLister) ListIssueComments(owner, repo string, number int) ([]github.IssueComment, error) {
	return f.comments, f.err
}

var reportCfg = config.Config{Owner: "acme", Repo: "pool", Issue: 7}

func reportPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "LEADERBOARD.md")
}

func TestGenerateReportFetchFailure(t *testing.T) {
	out := reportPath(t)
	lister := &fakeLister{err: errors.New("connection refused")}

	err := generateReport(lister, reportCfg, out, time.Now(), zerolog.Nop())
	if err != nil {
		t.Fatalf("a failed fetch must not fail the run: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no report should be written when the fetch fails")
	}
}

func TestGenerateReportNoResultsSkipsWrite(t *testing.T) {
	out := reportPath(t)
	lister := &fakeLister{comments: []github.IssueComment{
		{Body: "great games tonight everyone!", CreatedAt: time.Now()},
		{Body: "table is free on thursday", CreatedAt: time.Now()},
	}}

	err := generateReport(lister, reportCfg, out, time.Now(), zerolog.Nop())
	if err != nil {
		t.Fatalf("zero results must not fail the run: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no report should be written when no results are extracted")
	}
}

func TestGenerateReportPreservesPriorReport(t *testing.T) {
	out := reportPath(t)
	prior := "# old leaderboard\n"
	if err := os.WriteFile(out, []byte(prior), 0644); err != nil {
		t.Fatalf("seed prior report: %v", err)
	}
	lister := &fakeLister{comments: []github.IssueComment{
		{Body: "no results here", CreatedAt: time.Now()},
	}}

	if err := generateReport(lister, reportCfg, out, time.Now(), zerolog.Nop()); err != nil {
		t.Fatalf("generateReport: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if string(got) != prior {
		t.Error("prior report must remain unchanged when no results are extracted")
	}
}

func TestGenerateReportWritesLeaderboard(t *testing.T) {
	out := reportPath(t)
	lister := &fakeLister{comments: []github.IssueComment{
		{Body: "Thomas beats Raymond", CreatedAt: time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)},
		{Body: "Jerry > Kyle", CreatedAt: time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)},
	}}

	now := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	if err := generateReport(lister, reportCfg, out, now, zerolog.Nop()); err != nil {
		t.Fatalf("generateReport: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	doc := string(got)
	for _, want := range []string{
		"# 🎱 Pool League Rankings",
		"| 1 | Thomas | 1 | 0 | 1 | 100.0% |",
		"| 2024-01-02 | Jerry vs Kyle | Jerry |",
		"_Last updated: 2024-02-01 09:30 UTC_",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("report missing %q:\n%s", want, doc)
		}
	}
}
