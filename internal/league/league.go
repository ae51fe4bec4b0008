// Package league computes win-rate rankings from an ordered match history.
// Everything here is a pure function of its input: stats are recomputed from
// the full match list on every call and never cached.
package league

import (
	"sort"

	"github.com/pable/poolrank/internal/model"
)

// Rank aggregates the match list into per-player stats sorted by win rate
// descending, ties broken by raw win count descending. The sort is stable, so
// players still tied after both keys keep first-appearance order and the
// output is deterministic for a given input order.
func Rank(matches []model.Match) []model.PlayerStat {
	tally := make(map[string]*model.PlayerStat)
	var order []string

	record := func(name string) *model.PlayerStat {
		if s, ok := tally[name]; ok {
			return s
		}
		s := &model.PlayerStat{Name: name}
		tally[name] = s
		order = append(order, name)
		return s
	}

	for _, m := range matches {
		record(m.Winner).Wins++
		record(m.Loser).Losses++
	}

	stats := make([]model.PlayerStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, *tally[name])
	}

	sort.SliceStable(stats, func(i, j int) bool {
		ri, rj := stats[i].WinRate(), stats[j].WinRate()
		if ri != rj {
			return ri > rj
		}
		return stats[i].Wins > stats[j].Wins
	})
	return stats
}

// StatsFor returns the aggregate for a single player. found is false when the
// player appears in no match.
func StatsFor(matches []model.Match, name string) (stat model.PlayerStat, found bool) {
	stat.Name = name
	for _, m := range matches {
		switch name {
		case m.Winner:
			stat.Wins++
			found = true
		case m.Loser:
			stat.Losses++
			found = true
		}
	}
	return stat, found
}

// VersusRecords returns the player's head-to-head record against each
// opponent, in first-encounter order.
func VersusRecords(matches []model.Match, name string) []model.VersusRecord {
	byOpponent := make(map[string]*model.VersusRecord)
	var order []string

	record := func(opponent string) *model.VersusRecord {
		if r, ok := byOpponent[opponent]; ok {
			return r
		}
		r := &model.VersusRecord{Opponent: opponent}
		byOpponent[opponent] = r
		order = append(order, opponent)
		return r
	}

	for _, m := range matches {
		switch name {
		case m.Winner:
			record(m.Loser).Wins++
		case m.Loser:
			record(m.Winner).Losses++
		}
	}

	out := make([]model.VersusRecord, 0, len(order))
	for _, opponent := range order {
		out = append(out, *byOpponent[opponent])
	}
	return out
}

// Recent returns the last n matches, newest first. n <= 0 returns all
// matches, still newest first.
func Recent(matches []model.Match, n int) []model.Match {
	tail := matches
	if n > 0 && len(tail) > n {
		tail = tail[len(tail)-n:]
	}
	out := make([]model.Match, len(tail))
	for i, m := range tail {
		out[len(tail)-1-i] = m
	}
	return out
}
