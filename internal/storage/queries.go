package storage

import (
	"fmt"
	"time"

	"github.com/pable/poolrank/internal/model"
)

// dateLayout is how match dates are stored. RFC 3339 sorts lexicographically
// and round-trips through time.Parse.
const dateLayout = time.RFC3339

// InsertMatch appends one match record. The store is append-only: records are
// never updated or deleted, and insertion order is the chronological order
// rankings are derived from.
func (db *DB) InsertMatch(m model.Match) error {
	_, err := db.conn.Exec(
		`INSERT INTO matches(winner, loser, match_date) VALUES (?, ?, ?)`,
		m.Winner, m.Loser, m.Date.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("insert match %s vs %s: %w", m.Winner, m.Loser, err)
	}
	return nil
}

// ListMatches returns the full match history in insertion order.
func (db *DB) ListMatches() ([]model.Match, error) {
	rows, err := db.conn.Query(`SELECT winner, loser, match_date FROM matches ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Match
	for rows.Next() {
		var m model.Match
		var dateStr string
		if err := rows.Scan(&m.Winner, &m.Loser, &dateStr); err != nil {
			return nil, err
		}
		m.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse match_date %q: %w", dateStr, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// CountMatches returns the number of stored matches.
func (db *DB) CountMatches() (int, error) {
	var count int
	err := db.conn.QueryRow(`SELECT COUNT(1) FROM matches`).Scan(&count)
	return count, err
}
