package model

import "time"

// Match is one recorded outcome between two named players. Matches are
// immutable once created; the ordered sequence of matches is the source of
// truth — rankings are always derived from it, never stored.
type Match struct {
	Winner string
	Loser  string
	Date   time.Time
}

// Label returns the "winner vs loser" display form of the match.
func (m Match) Label() string {
	return m.Winner + " vs " + m.Loser
}

// PlayerStat is the derived per-player aggregate. Player names are compared
// case-sensitively: two spellings are two players.
type PlayerStat struct {
	Name   string
	Wins   int
	Losses int
}

// Total returns the number of matches the player appeared in.
func (s PlayerStat) Total() int {
	return s.Wins + s.Losses
}

// WinRate returns wins/total as a fraction in [0, 1], or 0 when the player
// has no matches.
func (s PlayerStat) WinRate() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Wins) / float64(total)
}

// VersusRecord is a player's head-to-head record against one opponent.
type VersusRecord struct {
	Opponent string
	Wins     int
	Losses   int
}
