package feature

import (
	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// tailMean averages the last n values of a metric over the given outcomes,
// or all of them when fewer than n are available. Outcomes must be
// chronological (oldest first); callers never pass an empty slice.
func tailMean(outcomes []model.TeamMatchOutcome, n int, metric func(model.TeamMatchOutcome) float64) float64 {
	start := len(outcomes) - n
	if start < 0 {
		start = 0
	}

	sum := 0.0
	for _, o := range outcomes[start:] {
		sum += metric(o)
	}
	return sum / float64(len(outcomes)-start)
}

// rollingStats computes the twelve trailing means for a team from its
// retained prior outcomes. An empty history yields all-NaN stats.
func rollingStats(outcomes []model.TeamMatchOutcome) model.RollingStats {
	if len(outcomes) == 0 {
		return model.UndefinedRollingStats()
	}

	points := func(o model.TeamMatchOutcome) float64 { return o.PointsWon }
	pointsW := func(o model.TeamMatchOutcome) float64 { return o.PointsWeighted }
	goals := func(o model.TeamMatchOutcome) float64 { return o.Goals }
	suffered := func(o model.TeamMatchOutcome) float64 { return o.GoalsSuffered }
	goalsW := func(o model.TeamMatchOutcome) float64 { return o.GoalsWeighted }
	sufferedW := func(o model.TeamMatchOutcome) float64 { return o.GoalsSufferedWeighted }

	return model.RollingStats{
		PointsWonMA5:             tailMean(outcomes, 5, points),
		PointsWonMA3:             tailMean(outcomes, 3, points),
		PointsWeightedMA5:        tailMean(outcomes, 5, pointsW),
		PointsWeightedMA3:        tailMean(outcomes, 3, pointsW),
		GoalsMA5:                 tailMean(outcomes, 5, goals),
		GoalsMA3:                 tailMean(outcomes, 3, goals),
		GoalsSufferedMA5:         tailMean(outcomes, 5, suffered),
		GoalsSufferedMA3:         tailMean(outcomes, 3, suffered),
		GoalsWeightedMA5:         tailMean(outcomes, 5, goalsW),
		GoalsWeightedMA3:         tailMean(outcomes, 3, goalsW),
		GoalsSufferedWeightedMA5: tailMean(outcomes, 5, sufferedW),
		GoalsSufferedWeightedMA3: tailMean(outcomes, 3, sufferedW),
	}
}
