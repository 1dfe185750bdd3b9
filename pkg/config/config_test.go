package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "2023-01-01", cfg.Data.Cutoff)
	assert.Equal(t, 0.9, cfg.Join.MinRetention)

	cutoff, err := cfg.CutoffDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), cutoff)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  cutoff: "2024-01-01"
  duckdb_path: custom.duckdb
join:
  min_retention: 0.75
  aliases:
    "Türkiye": "Turkey"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", cfg.Data.Cutoff)
	assert.Equal(t, "custom.duckdb", cfg.Data.DuckDBPath)
	assert.Equal(t, 0.75, cfg.Join.MinRetention)
	assert.Equal(t, "Turkey", cfg.Join.Aliases["Türkiye"])
	// Values absent from the file keep their defaults.
	assert.Equal(t, "data/international_results.csv", cfg.Data.MatchesCSV)
}

func TestLoadRejectsBadCutoff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  cutoff: "01/02/2023"
`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cutoff")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
