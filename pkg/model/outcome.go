package model

import "time"

// Side identifies a team's role in a match.
type Side int

const (
	Home Side = iota
	Away
)

// String returns the column-prefix form of the side.
func (s Side) String() string {
	if s == Home {
		return "home"
	}
	return "away"
}

// TeamMatchOutcome is the role-normalized view of one MatchRecord from one
// team's perspective. It is derived on the fly during feature computation
// and never persisted on its own.
type TeamMatchOutcome struct {
	Date                  time.Time
	PointsWon             float64
	PointsWeighted        float64
	Goals                 float64
	GoalsSuffered         float64
	GoalsWeighted         float64
	GoalsSufferedWeighted float64
}

// OutcomeFor derives the outcome of m as seen by the team playing side.
// Weighted metrics divide by 1 + opponent_rank/100, so an identical result
// is worth less when earned against a low-ranked (weak) opponent.
func OutcomeFor(m MatchRecord, side Side) TeamMatchOutcome {
	var scoreFor, scoreAgainst int
	var opponentRank float64

	if side == Home {
		scoreFor, scoreAgainst = m.HomeScore, m.AwayScore
		opponentRank = m.RankAway
	} else {
		scoreFor, scoreAgainst = m.AwayScore, m.HomeScore
		opponentRank = m.RankHome
	}

	w := RankWeight(opponentRank)
	points := float64(PointsWon(scoreFor, scoreAgainst))

	return TeamMatchOutcome{
		Date:                  m.Date,
		PointsWon:             points,
		PointsWeighted:        points / w,
		Goals:                 float64(scoreFor),
		GoalsSuffered:         float64(scoreAgainst),
		GoalsWeighted:         float64(scoreFor) / w,
		GoalsSufferedWeighted: float64(scoreAgainst) / w,
	}
}
