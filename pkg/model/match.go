package model

import "time"

// DateLayout is the calendar-day format used across all input and output
// tables. Match dates carry no time component.
const DateLayout = "2006-01-02"

// RawMatch is a single historical match as it appears in the results
// table, before any ranking information has been attached.
type RawMatch struct {
	Date      time.Time `json:"date"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
}

// MatchRecord is a match enriched with both teams' ranking as of the match
// date. Records are immutable once built and are processed in date order.
// RankHome/RankAway hold the ranking effective on or most recently before
// Date for that team (carried forward from the last known snapshot).
type MatchRecord struct {
	Date       time.Time `json:"date"`
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
	RankHome   float64   `json:"rank_home"`
	PointsHome float64   `json:"points_home"`
	RankAway   float64   `json:"rank_away"`
	PointsAway float64   `json:"points_away"`
}

// PointsWon returns the league points earned by the side with scoreFor
// goals against scoreAgainst: 3 for a win, 1 for a draw, 0 for a loss.
func PointsWon(scoreFor, scoreAgainst int) int {
	switch {
	case scoreFor > scoreAgainst:
		return 3
	case scoreFor == scoreAgainst:
		return 1
	default:
		return 0
	}
}

// RankWeight returns the divisor used to discount points and goals earned
// against weak opponents: 1 + opponentRank/100.
func RankWeight(opponentRank float64) float64 {
	return 1 + opponentRank/100
}

// RankDif returns the home-minus-away rank difference. Negative means the
// home team is higher-ranked (lower numeric rank).
func (m *MatchRecord) RankDif() float64 {
	return m.RankHome - m.RankAway
}
