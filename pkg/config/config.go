package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// Config holds the pipeline configuration: file locations, the cutoff
// date, and join policy. Values omitted from the YAML file fall back to
// the defaults below.
type Config struct {
	Data DataConfig `yaml:"data"`
	Join JoinConfig `yaml:"join"`
}

// DataConfig locates the input and output files.
type DataConfig struct {
	SourceURL   string `yaml:"source_url"`   // raw results download URL (cmd/fetch)
	MatchesCSV  string `yaml:"matches_csv"`  // raw match results
	RankingsCSV string `yaml:"rankings_csv"` // ranking snapshots
	RankedCSV   string `yaml:"ranked_csv"`   // joined table output
	FeaturesCSV string `yaml:"features_csv"` // final feature table output
	DuckDBPath  string `yaml:"duckdb_path"`
	Cutoff      string `yaml:"cutoff"` // ISO date; earlier rows are ignored
}

// JoinConfig controls the ranking join.
type JoinConfig struct {
	// MinRetention is the fraction of raw matches that must survive the
	// join; falling below it is a hard failure.
	MinRetention float64 `yaml:"min_retention"`
	// Aliases extends the built-in team-name alias table
	// (ranking-table name -> results-table name).
	Aliases map[string]string `yaml:"aliases"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			MatchesCSV:  "data/international_results.csv",
			RankingsCSV: "data/resulting_data.csv",
			RankedCSV:   "data/ranked_database.csv",
			FeaturesCSV: "data/ranked_database_with_features.csv",
			DuckDBPath:  "data/worldcup.duckdb",
			Cutoff:      "2023-01-01",
		},
		Join: JoinConfig{
			MinRetention: 0.9,
		},
	}
}

// Load reads configuration from a YAML file, layering it over Default.
// An empty path returns Default unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, err := cfg.CutoffDate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CutoffDate parses the configured cutoff.
func (c *Config) CutoffDate() (time.Time, error) {
	t, err := time.Parse(model.DateLayout, c.Data.Cutoff)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cutoff date %q: %w", c.Data.Cutoff, err)
	}
	return t, nil
}
