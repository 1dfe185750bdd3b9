package duckdb

import (
	"context"
	"fmt"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// MatchRepo handles ranked match persistence.
type MatchRepo struct {
	client *Client
}

// NewMatchRepo creates a new ranked match repository.
func NewMatchRepo(client *Client) *MatchRepo {
	return &MatchRepo{client: client}
}

// InsertBatch inserts ranked matches in a transaction.
func (r *MatchRepo) InsertBatch(ctx context.Context, matches []model.MatchRecord) error {
	tx, err := r.client.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO ranked_matches (
			date, home_team, away_team, home_score, away_score,
			rank_home, points_home, rank_away, points_away
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (date, home_team, away_team) DO UPDATE SET
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			rank_home = EXCLUDED.rank_home,
			points_home = EXCLUDED.points_home,
			rank_away = EXCLUDED.rank_away,
			points_away = EXCLUDED.points_away
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, m := range matches {
		_, err := stmt.Exec(
			m.Date, m.HomeTeam, m.AwayTeam, m.HomeScore, m.AwayScore,
			m.RankHome, m.PointsHome, m.RankAway, m.PointsAway,
		)
		if err != nil {
			return fmt.Errorf("failed to insert match: %w", err)
		}
	}

	return tx.Commit()
}

// GetAllOrdered retrieves every ranked match in chronological order, which
// is the order the feature engine requires.
func (r *MatchRepo) GetAllOrdered(ctx context.Context) ([]model.MatchRecord, error) {
	query := `
		SELECT date, home_team, away_team, home_score, away_score,
			   rank_home, points_home, rank_away, points_away
		FROM ranked_matches
		ORDER BY date, home_team, away_team ASC
	`

	rows, err := r.client.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []model.MatchRecord
	for rows.Next() {
		var m model.MatchRecord
		err := rows.Scan(
			&m.Date, &m.HomeTeam, &m.AwayTeam, &m.HomeScore, &m.AwayScore,
			&m.RankHome, &m.PointsHome, &m.RankAway, &m.PointsAway,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

// Count returns the total number of ranked matches.
func (r *MatchRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	row := r.client.QueryRow("SELECT COUNT(*) FROM ranked_matches")
	err := row.Scan(&count)
	return count, err
}
