package data

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// CSVRankedMatchProvider reads back the ranked match table produced by the
// join stage.
type CSVRankedMatchProvider struct {
	filePath string
}

// NewCSVRankedMatchProvider creates a provider over a ranked-table CSV.
func NewCSVRankedMatchProvider(filePath string) *CSVRankedMatchProvider {
	return &CSVRankedMatchProvider{filePath: filePath}
}

// RankedMatches returns every ranked match in file order.
func (p *CSVRankedMatchProvider) RankedMatches(ctx context.Context) ([]model.MatchRecord, error) {
	required := []string{
		"date", "home_team", "away_team", "home_score", "away_score",
		"rank_home", "points_home", "rank_away", "points_away",
	}

	var matches []model.MatchRecord
	err := readCSV(p.filePath, required, func(get func(string) string) error {
		date, err := time.Parse(model.DateLayout, get("date"))
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", get("date"), err)
		}

		m := model.MatchRecord{
			Date:     date,
			HomeTeam: get("home_team"),
			AwayTeam: get("away_team"),
		}
		if m.HomeScore, err = strconv.Atoi(get("home_score")); err != nil {
			return fmt.Errorf("invalid home_score %q: %w", get("home_score"), err)
		}
		if m.AwayScore, err = strconv.Atoi(get("away_score")); err != nil {
			return fmt.Errorf("invalid away_score %q: %w", get("away_score"), err)
		}
		if m.RankHome, err = strconv.ParseFloat(get("rank_home"), 64); err != nil {
			return fmt.Errorf("invalid rank_home %q: %w", get("rank_home"), err)
		}
		if m.PointsHome, err = strconv.ParseFloat(get("points_home"), 64); err != nil {
			return fmt.Errorf("invalid points_home %q: %w", get("points_home"), err)
		}
		if m.RankAway, err = strconv.ParseFloat(get("rank_away"), 64); err != nil {
			return fmt.Errorf("invalid rank_away %q: %w", get("rank_away"), err)
		}
		if m.PointsAway, err = strconv.ParseFloat(get("points_away"), 64); err != nil {
			return fmt.Errorf("invalid points_away %q: %w", get("points_away"), err)
		}

		matches = append(matches, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
