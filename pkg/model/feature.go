package model

import "math"

// RollingStats holds the trailing means of the six base metrics over a
// team's most recent 5 and most recent 3 prior matches. When the team has
// fewer prior matches the mean covers whatever is available; when it has
// none every field is NaN.
type RollingStats struct {
	PointsWonMA5             float64 `json:"points_won_ma_5"`
	PointsWonMA3             float64 `json:"points_won_ma_3"`
	PointsWeightedMA5        float64 `json:"points_weighted_ma_5"`
	PointsWeightedMA3        float64 `json:"points_weighted_ma_3"`
	GoalsMA5                 float64 `json:"goals_ma_5"`
	GoalsMA3                 float64 `json:"goals_ma_3"`
	GoalsSufferedMA5         float64 `json:"goals_suffered_ma_5"`
	GoalsSufferedMA3         float64 `json:"goals_suffered_ma_3"`
	GoalsWeightedMA5         float64 `json:"goals_weighted_ma_5"`
	GoalsWeightedMA3         float64 `json:"goals_weighted_ma_3"`
	GoalsSufferedWeightedMA5 float64 `json:"goals_suffered_weighted_ma_5"`
	GoalsSufferedWeightedMA3 float64 `json:"goals_suffered_weighted_ma_3"`
}

// UndefinedRollingStats returns stats for a team with no prior matches:
// every field NaN.
func UndefinedRollingStats() RollingStats {
	nan := math.NaN()
	return RollingStats{
		PointsWonMA5:             nan,
		PointsWonMA3:             nan,
		PointsWeightedMA5:        nan,
		PointsWeightedMA3:        nan,
		GoalsMA5:                 nan,
		GoalsMA3:                 nan,
		GoalsSufferedMA5:         nan,
		GoalsSufferedMA3:         nan,
		GoalsWeightedMA5:         nan,
		GoalsWeightedMA3:         nan,
		GoalsSufferedWeightedMA5: nan,
		GoalsSufferedWeightedMA3: nan,
	}
}

// IsUndefined reports whether the stats describe a team with no history.
// All twelve fields are set together, so checking one suffices.
func (rs RollingStats) IsUndefined() bool {
	return math.IsNaN(rs.PointsWonMA5)
}

// Values returns the twelve rolling values in output-column order.
func (rs RollingStats) Values() []float64 {
	return []float64{
		rs.PointsWonMA5, rs.PointsWonMA3,
		rs.PointsWeightedMA5, rs.PointsWeightedMA3,
		rs.GoalsMA5, rs.GoalsMA3,
		rs.GoalsSufferedMA5, rs.GoalsSufferedMA3,
		rs.GoalsWeightedMA5, rs.GoalsWeightedMA3,
		rs.GoalsSufferedWeightedMA5, rs.GoalsSufferedWeightedMA3,
	}
}

// RollingColumns lists the column-name suffixes matching Values order.
var RollingColumns = []string{
	"points_won_ma_5", "points_won_ma_3",
	"points_weighted_ma_5", "points_weighted_ma_3",
	"goals_ma_5", "goals_ma_3",
	"goals_suffered_ma_5", "goals_suffered_ma_3",
	"goals_weighted_ma_5", "goals_weighted_ma_3",
	"goals_suffered_weighted_ma_5", "goals_suffered_weighted_ma_3",
}

// FeatureRow is a MatchRecord augmented with the derived training
// features: current-match points, weighted points, rank difference, and
// both sides' rolling form statistics over strictly earlier matches.
type FeatureRow struct {
	MatchRecord

	HomePointsWon      int     `json:"home_points_won"`
	AwayPointsWon      int     `json:"away_points_won"`
	HomePointsWeighted float64 `json:"home_points_weighted"`
	AwayPointsWeighted float64 `json:"away_points_weighted"`
	RankDif            float64 `json:"rank_dif"`

	HomeForm RollingStats `json:"home_form"`
	AwayForm RollingStats `json:"away_form"`
}
