package duckdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	require.NoError(t, InitializeSchema(client))
	return client
}

func testMatch(d int) model.MatchRecord {
	return model.MatchRecord{
		Date:       time.Date(2023, 6, d, 0, 0, 0, 0, time.UTC),
		HomeTeam:   "Japan",
		AwayTeam:   "Peru",
		HomeScore:  4,
		AwayScore:  1,
		RankHome:   20,
		PointsHome: 1594.34,
		RankAway:   21,
		PointsAway: 1589.65,
	}
}

func TestMatchRepoRoundTrip(t *testing.T) {
	client := newTestClient(t)
	repo := NewMatchRepo(client)
	ctx := context.Background()

	want := []model.MatchRecord{testMatch(20), testMatch(10)}
	require.NoError(t, repo.InsertBatch(ctx, want))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	got, err := repo.GetAllOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Chronological order regardless of insert order.
	assert.True(t, got[0].Date.Before(got[1].Date))
	assert.Equal(t, "Japan", got[0].HomeTeam)
	assert.InDelta(t, 1594.34, got[0].PointsHome, 1e-9)
}

func TestMatchRepoUpsert(t *testing.T) {
	client := newTestClient(t)
	repo := NewMatchRepo(client)
	ctx := context.Background()

	m := testMatch(10)
	require.NoError(t, repo.InsertBatch(ctx, []model.MatchRecord{m}))

	m.HomeScore = 5
	require.NoError(t, repo.InsertBatch(ctx, []model.MatchRecord{m}))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := repo.GetAllOrdered(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, got[0].HomeScore)
}

func TestRankingRepoRoundTrip(t *testing.T) {
	client := newTestClient(t)
	repo := NewRankingRepo(client)
	ctx := context.Background()

	entries := []model.RankingEntry{
		{Team: "Brazil", Date: time.Date(2023, 4, 6, 0, 0, 0, 0, time.UTC), Rank: 1, Points: 1840.77},
		{Team: "Brazil", Date: time.Date(2023, 2, 9, 0, 0, 0, 0, time.UTC), Rank: 2, Points: 1830.0},
	}
	require.NoError(t, repo.InsertBatch(ctx, entries))

	got, err := repo.GetAll(ctx, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Rank)
}

func TestFeatureRepoStoresUndefinedAsNull(t *testing.T) {
	client := newTestClient(t)
	repo := NewFeatureRepo(client)
	ctx := context.Background()

	row := model.FeatureRow{
		MatchRecord:   testMatch(10),
		HomePointsWon: 3,
		RankDif:       -1,
		HomeForm:      model.UndefinedRollingStats(),
		AwayForm:      model.UndefinedRollingStats(),
	}
	require.NoError(t, repo.InsertBatch(ctx, []model.FeatureRow{row}))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var nulls int64
	err = client.QueryRow(
		"SELECT COUNT(*) FROM match_features WHERE home_points_won_ma_5 IS NULL AND away_goals_ma_3 IS NULL",
	).Scan(&nulls)
	require.NoError(t, err)
	assert.Equal(t, int64(1), nulls)
}
