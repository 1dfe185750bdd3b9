package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

func TestTailMean(t *testing.T) {
	outcomes := []model.TeamMatchOutcome{
		{Goals: 1}, {Goals: 2}, {Goals: 3}, {Goals: 4},
	}
	goals := func(o model.TeamMatchOutcome) float64 { return o.Goals }

	assert.InDelta(t, 3.0, tailMean(outcomes, 3, goals), 1e-12)  // last 3: 2,3,4
	assert.InDelta(t, 2.5, tailMean(outcomes, 5, goals), 1e-12)  // all 4
	assert.InDelta(t, 4.0, tailMean(outcomes, 1, goals), 1e-12)
}

func TestRollingStatsEmptyIsUndefined(t *testing.T) {
	rs := rollingStats(nil)
	assert.True(t, rs.IsUndefined())
}

func TestRollingStatsShortHistory(t *testing.T) {
	outcomes := []model.TeamMatchOutcome{
		{PointsWon: 3, PointsWeighted: 2, Goals: 1, GoalsSuffered: 0, GoalsWeighted: 0.5, GoalsSufferedWeighted: 0},
		{PointsWon: 0, PointsWeighted: 0, Goals: 1, GoalsSuffered: 2, GoalsWeighted: 0.5, GoalsSufferedWeighted: 1},
	}

	rs := rollingStats(outcomes)
	assert.False(t, rs.IsUndefined())
	// Both windows cover the same two outcomes.
	assert.InDelta(t, 1.5, rs.PointsWonMA5, 1e-12)
	assert.InDelta(t, 1.5, rs.PointsWonMA3, 1e-12)
	assert.InDelta(t, 1.0, rs.GoalsMA5, 1e-12)
	assert.InDelta(t, 1.0, rs.GoalsSufferedMA3, 1e-12)
	assert.InDelta(t, 0.5, rs.GoalsWeightedMA3, 1e-12)
	assert.InDelta(t, 0.5, rs.GoalsSufferedWeightedMA5, 1e-12)
}
