package rank

import (
	"sort"
	"time"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// Snapshot is one ranking observation: a team's rank position and ranking
// points at a publication date.
type Snapshot struct {
	Date   time.Time
	Rank   float64
	Points float64
}

// series holds one team's snapshots sorted by date.
type series struct {
	snaps []Snapshot
}

// Table resolves "ranking as of date" lookups per team. Gaps between
// snapshot dates are filled by carrying the last known value forward;
// values are never interpolated and never taken from a future snapshot.
type Table struct {
	teams map[string]*series
}

// NewTable builds a Table from ranking entries. Team names should already
// be canonicalized. Entry order does not matter.
func NewTable(entries []model.RankingEntry) *Table {
	t := &Table{teams: make(map[string]*series)}
	for _, e := range entries {
		s, ok := t.teams[e.Team]
		if !ok {
			s = &series{}
			t.teams[e.Team] = s
		}
		s.snaps = append(s.snaps, Snapshot{Date: e.Date, Rank: e.Rank, Points: e.Points})
	}
	for _, s := range t.teams {
		sort.Slice(s.snaps, func(i, j int) bool {
			return s.snaps[i].Date.Before(s.snaps[j].Date)
		})
	}
	return t
}

// Teams returns the number of teams with at least one snapshot.
func (t *Table) Teams() int {
	return len(t.teams)
}

// Has reports whether the table holds any snapshot for team.
func (t *Table) Has(team string) bool {
	_, ok := t.teams[team]
	return ok
}

// AsOf returns the snapshot effective for team on date: the most recent
// one with a date on or before it. The second return is false when the
// team is unknown or its first snapshot is later than date.
func (t *Table) AsOf(team string, date time.Time) (Snapshot, bool) {
	s, ok := t.teams[team]
	if !ok {
		return Snapshot{}, false
	}

	// First snapshot strictly after date; the one before it is effective.
	idx := sort.Search(len(s.snaps), func(i int) bool {
		return s.snaps[i].Date.After(date)
	})
	if idx == 0 {
		return Snapshot{}, false
	}
	return s.snaps[idx-1], true
}
