// Package extract pulls match results out of free-text issue comments.
package extract

import (
	"regexp"
	"time"

	"github.com/pable/poolrank/internal/model"
)

// Comment is one raw text block with its creation timestamp. The automated
// path feeds GitHub issue comments through here; each extracted match is
// stamped with the comment's timestamp.
type Comment struct {
	Body      string
	CreatedAt time.Time
}

// resultPattern matches "Winner > Loser" or "Winner beat Loser" (case
// insensitive, "beats" accepted). The separator is a true alternation between
// the literal > and the word, each padded by optional whitespace; the word
// boundaries keep "beat" from being read out of a longer token.
var resultPattern = regexp.MustCompile(`(?i)(\w+)\s*(?:>|\bbeats?\b)\s*(\w+)`)

// Matches scans the comment bodies in order and returns one match record per
// non-overlapping occurrence of the result pattern. Comments with no
// occurrences contribute nothing.
func Matches(comments []Comment) []model.Match {
	var out []model.Match
	for _, c := range comments {
		for _, groups := range resultPattern.FindAllStringSubmatch(c.Body, -1) {
			out = append(out, model.Match{
				Winner: groups[1],
				Loser:  groups[2],
				Date:   c.CreatedAt,
			})
		}
	}
	return out
}
