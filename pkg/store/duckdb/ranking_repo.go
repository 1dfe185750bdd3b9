package duckdb

import (
	"context"
	"fmt"
	"time"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// RankingRepo handles ranking snapshot persistence.
type RankingRepo struct {
	client *Client
}

// NewRankingRepo creates a new ranking repository.
func NewRankingRepo(client *Client) *RankingRepo {
	return &RankingRepo{client: client}
}

// InsertBatch inserts ranking snapshots in a transaction.
func (r *RankingRepo) InsertBatch(ctx context.Context, entries []model.RankingEntry) error {
	tx, err := r.client.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO rankings (team, rank_date, rank, points)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (team, rank_date) DO UPDATE SET
			rank = EXCLUDED.rank,
			points = EXCLUDED.points
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Team, e.Date, e.Rank, e.Points); err != nil {
			return fmt.Errorf("failed to insert ranking: %w", err)
		}
	}

	return tx.Commit()
}

// GetAll retrieves every snapshot dated on or after since.
func (r *RankingRepo) GetAll(ctx context.Context, since time.Time) ([]model.RankingEntry, error) {
	query := `
		SELECT team, rank_date, rank, points
		FROM rankings
		WHERE rank_date >= ?
		ORDER BY team, rank_date ASC
	`

	rows, err := r.client.Query(query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query rankings: %w", err)
	}
	defer rows.Close()

	var entries []model.RankingEntry
	for rows.Next() {
		var e model.RankingEntry
		if err := rows.Scan(&e.Team, &e.Date, &e.Rank, &e.Points); err != nil {
			return nil, fmt.Errorf("failed to scan ranking: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Count returns the total number of stored snapshots.
func (r *RankingRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	row := r.client.QueryRow("SELECT COUNT(*) FROM rankings")
	err := row.Scan(&count)
	return count, err
}
