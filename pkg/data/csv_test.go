package data

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVMatchProviderParsesAndFilters(t *testing.T) {
	path := writeTempCSV(t, `date,home_team,away_team,home_score,away_score,tournament,city,country,neutral
2022-12-18,Argentina,France,3,3,FIFA World Cup,Lusail,Qatar,TRUE
2023-03-23,Germany,Peru,2,0,Friendly,Mainz,Germany,FALSE
2023-06-15,Japan,El Salvador,6,0,Friendly,Toyota,Japan,FALSE
`)

	provider := NewCSVMatchProvider(path)
	since := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	matches, err := provider.Matches(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, matches, 2, "pre-cutoff rows must be filtered out")

	assert.Equal(t, "Germany", matches[0].HomeTeam)
	assert.Equal(t, "Peru", matches[0].AwayTeam)
	assert.Equal(t, 2, matches[0].HomeScore)
	assert.Equal(t, 0, matches[0].AwayScore)
	assert.Equal(t, time.Date(2023, 3, 23, 0, 0, 0, 0, time.UTC), matches[0].Date)
}

func TestCSVMatchProviderMissingColumn(t *testing.T) {
	path := writeTempCSV(t, `date,home_team,away_team,home_score
2023-03-23,Germany,Peru,2
`)

	_, err := NewCSVMatchProvider(path).Matches(context.Background(), time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "away_score")
}

func TestCSVMatchProviderBadRow(t *testing.T) {
	path := writeTempCSV(t, `date,home_team,away_team,home_score,away_score
2023-03-23,Germany,Peru,two,0
`)

	_, err := NewCSVMatchProvider(path).Matches(context.Background(), time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "home_score")
}

func TestCSVRankingProviderParsesAndFilters(t *testing.T) {
	path := writeTempCSV(t, `rank,nation_full_name,points,rank_date
1,Brazil,1840.77,2023-04-06
2,Argentina,1838.38,2023-04-06
3,France,1823.39,2022-12-22
`)

	provider := NewCSVRankingProvider(path)
	since := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	entries, err := provider.Rankings(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Brazil", entries[0].Team)
	assert.Equal(t, 1.0, entries[0].Rank)
	assert.InDelta(t, 1840.77, entries[0].Points, 1e-9)
}

func TestMemoryMatchProviderFilters(t *testing.T) {
	provider := NewMemoryMatchProvider(nil)
	matches, err := provider.Matches(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Empty(t, matches)
}
