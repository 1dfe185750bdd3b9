package model

import "time"

// RankingEntry is one snapshot of the periodic team-ranking table: a
// team's rank position and ranking points at a publication date. Snapshot
// dates are sparse; values are carried forward between publications.
type RankingEntry struct {
	Date   time.Time `json:"rank_date"`
	Team   string    `json:"nation_full_name"`
	Rank   float64   `json:"rank"`
	Points float64   `json:"points"`
}
