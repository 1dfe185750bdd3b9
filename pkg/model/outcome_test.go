package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPointsWon(t *testing.T) {
	tests := []struct {
		name                  string
		scoreFor, scoreAgainst int
		want                  int
	}{
		{"win", 2, 0, 3},
		{"draw", 1, 1, 1},
		{"loss", 0, 3, 0},
		{"goalless draw", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsWon(tt.scoreFor, tt.scoreAgainst))
		})
	}
}

func TestOutcomeFor(t *testing.T) {
	m := MatchRecord{
		Date:      time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC),
		HomeTeam:  "Brazil",
		AwayTeam:  "Japan",
		HomeScore: 3,
		AwayScore: 1,
		RankHome:  10,
		RankAway:  50,
	}

	home := OutcomeFor(m, Home)
	assert.Equal(t, 3.0, home.PointsWon)
	assert.InDelta(t, 2.0, home.PointsWeighted, 1e-12) // 3 / (1 + 50/100)
	assert.Equal(t, 3.0, home.Goals)
	assert.Equal(t, 1.0, home.GoalsSuffered)
	assert.InDelta(t, 2.0, home.GoalsWeighted, 1e-12)
	assert.InDelta(t, 1.0/1.5, home.GoalsSufferedWeighted, 1e-12)
	assert.Equal(t, m.Date, home.Date)

	away := OutcomeFor(m, Away)
	assert.Equal(t, 0.0, away.PointsWon)
	assert.Equal(t, 0.0, away.PointsWeighted)
	assert.Equal(t, 1.0, away.Goals)
	assert.Equal(t, 3.0, away.GoalsSuffered)
	assert.InDelta(t, 1.0/1.1, away.GoalsWeighted, 1e-12) // opponent rank 10
	assert.InDelta(t, 3.0/1.1, away.GoalsSufferedWeighted, 1e-12)
}

func TestRankDifSign(t *testing.T) {
	// Home higher-ranked (lower numeric rank) gives a negative difference.
	m := MatchRecord{RankHome: 3, RankAway: 40}
	assert.Equal(t, -37.0, m.RankDif())

	m = MatchRecord{RankHome: 40, RankAway: 3}
	assert.Equal(t, 37.0, m.RankDif())
}

func TestUndefinedRollingStats(t *testing.T) {
	rs := UndefinedRollingStats()
	assert.True(t, rs.IsUndefined())
	for _, v := range rs.Values() {
		assert.True(t, math.IsNaN(v), "expected NaN")
	}
	assert.Len(t, rs.Values(), len(RollingColumns))
}
