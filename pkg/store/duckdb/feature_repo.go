package duckdb

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// FeatureRepo handles feature row persistence.
type FeatureRepo struct {
	client *Client
}

// NewFeatureRepo creates a new feature repository.
func NewFeatureRepo(client *Client) *FeatureRepo {
	return &FeatureRepo{client: client}
}

// nullable maps NaN (undefined rolling value) to SQL NULL.
func nullable(f float64) interface{} {
	if math.IsNaN(f) {
		return nil
	}
	return f
}

// InsertBatch inserts feature rows in a transaction. Rolling columns of
// teams with no prior match are stored as NULL.
func (r *FeatureRepo) InsertBatch(ctx context.Context, rows []model.FeatureRow) error {
	tx, err := r.client.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	cols := []string{
		"date", "home_team", "away_team", "home_score", "away_score",
		"rank_home", "points_home", "rank_away", "points_away",
		"home_points_won", "away_points_won",
		"home_points_weighted", "away_points_weighted", "rank_dif",
	}
	for _, suffix := range model.RollingColumns {
		cols = append(cols, "home_"+suffix)
	}
	for _, suffix := range model.RollingColumns {
		cols = append(cols, "away_"+suffix)
	}

	placeholders := make([]string, len(cols))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	query := fmt.Sprintf(
		"INSERT OR REPLACE INTO match_features (%s) VALUES (%s)",
		strings.Join(cols, ", "), strings.Join(placeholders, ", "),
	)

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, f := range rows {
		args := []interface{}{
			f.Date, f.HomeTeam, f.AwayTeam, f.HomeScore, f.AwayScore,
			f.RankHome, f.PointsHome, f.RankAway, f.PointsAway,
			f.HomePointsWon, f.AwayPointsWon,
			f.HomePointsWeighted, f.AwayPointsWeighted, f.RankDif,
		}
		for _, v := range f.HomeForm.Values() {
			args = append(args, nullable(v))
		}
		for _, v := range f.AwayForm.Values() {
			args = append(args, nullable(v))
		}

		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert feature row: %w", err)
		}
	}

	return tx.Commit()
}

// Count returns the total number of stored feature rows.
func (r *FeatureRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	row := r.client.QueryRow("SELECT COUNT(*) FROM match_features")
	err := row.Scan(&count)
	return count, err
}
