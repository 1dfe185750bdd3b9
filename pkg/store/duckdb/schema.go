package duckdb

import "fmt"

// Schema contains table creation statements for the pipeline tables.

// CreateRankingsTable holds the canonicalized ranking snapshots.
const CreateRankingsTable = `
CREATE TABLE IF NOT EXISTS rankings (
    team VARCHAR NOT NULL,
    rank_date DATE NOT NULL,
    rank DOUBLE NOT NULL,
    points DOUBLE NOT NULL,
    PRIMARY KEY (team, rank_date)
);
`

// CreateRankedMatchesTable holds matches joined with both sides' ranking
// as of the match date.
const CreateRankedMatchesTable = `
CREATE TABLE IF NOT EXISTS ranked_matches (
    date DATE NOT NULL,
    home_team VARCHAR NOT NULL,
    away_team VARCHAR NOT NULL,
    home_score INTEGER NOT NULL,
    away_score INTEGER NOT NULL,
    rank_home DOUBLE NOT NULL,
    points_home DOUBLE NOT NULL,
    rank_away DOUBLE NOT NULL,
    points_away DOUBLE NOT NULL,
    PRIMARY KEY (date, home_team, away_team)
);

CREATE INDEX IF NOT EXISTS idx_ranked_matches_date ON ranked_matches(date);
`

// CreateMatchFeaturesTable holds the derived feature rows. Rolling columns
// are nullable: NULL marks a team with no prior match.
const CreateMatchFeaturesTable = `
CREATE TABLE IF NOT EXISTS match_features (
    date DATE NOT NULL,
    home_team VARCHAR NOT NULL,
    away_team VARCHAR NOT NULL,
    home_score INTEGER NOT NULL,
    away_score INTEGER NOT NULL,
    rank_home DOUBLE NOT NULL,
    points_home DOUBLE NOT NULL,
    rank_away DOUBLE NOT NULL,
    points_away DOUBLE NOT NULL,
    home_points_won INTEGER NOT NULL,
    away_points_won INTEGER NOT NULL,
    home_points_weighted DOUBLE NOT NULL,
    away_points_weighted DOUBLE NOT NULL,
    rank_dif DOUBLE NOT NULL,
    home_points_won_ma_5 DOUBLE,
    home_points_won_ma_3 DOUBLE,
    home_points_weighted_ma_5 DOUBLE,
    home_points_weighted_ma_3 DOUBLE,
    home_goals_ma_5 DOUBLE,
    home_goals_ma_3 DOUBLE,
    home_goals_suffered_ma_5 DOUBLE,
    home_goals_suffered_ma_3 DOUBLE,
    home_goals_weighted_ma_5 DOUBLE,
    home_goals_weighted_ma_3 DOUBLE,
    home_goals_suffered_weighted_ma_5 DOUBLE,
    home_goals_suffered_weighted_ma_3 DOUBLE,
    away_points_won_ma_5 DOUBLE,
    away_points_won_ma_3 DOUBLE,
    away_points_weighted_ma_5 DOUBLE,
    away_points_weighted_ma_3 DOUBLE,
    away_goals_ma_5 DOUBLE,
    away_goals_ma_3 DOUBLE,
    away_goals_suffered_ma_5 DOUBLE,
    away_goals_suffered_ma_3 DOUBLE,
    away_goals_weighted_ma_5 DOUBLE,
    away_goals_weighted_ma_3 DOUBLE,
    away_goals_suffered_weighted_ma_5 DOUBLE,
    away_goals_suffered_weighted_ma_3 DOUBLE,
    PRIMARY KEY (date, home_team, away_team)
);
`

// InitializeSchema creates all required tables.
func InitializeSchema(c *Client) error {
	schemas := []string{
		CreateRankingsTable,
		CreateRankedMatchesTable,
		CreateMatchFeaturesTable,
	}

	for _, schema := range schemas {
		if err := c.Exec(schema); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// DropAllTables drops all tables (use with caution).
func DropAllTables(c *Client) error {
	tables := []string{"match_features", "ranked_matches", "rankings"}
	for _, table := range tables {
		if err := c.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
