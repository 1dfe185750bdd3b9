package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"github.com/sslp23/world-cup-sim-26/pkg/config"
	"github.com/sslp23/world-cup-sim-26/pkg/data"
	"github.com/sslp23/world-cup-sim-26/pkg/export"
	"github.com/sslp23/world-cup-sim-26/pkg/feature"
	"github.com/sslp23/world-cup-sim-26/pkg/store/duckdb"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	in := flag.String("in", "", "Ranked table CSV (overrides config)")
	out := flag.String("out", "", "Feature table output CSV (overrides config)")
	duckdbPath := flag.String("duckdb", "", "DuckDB file path (overrides config)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}
	if *in != "" {
		cfg.Data.RankedCSV = *in
	}
	if *out != "" {
		cfg.Data.FeaturesCSV = *out
	}
	if *duckdbPath != "" {
		cfg.Data.DuckDBPath = *duckdbPath
	}

	ctx := context.Background()

	log.Infow("loading ranked matches", "path", cfg.Data.RankedCSV)
	matches, err := data.NewCSVRankedMatchProvider(cfg.Data.RankedCSV).RankedMatches(ctx)
	if err != nil {
		log.Fatalw("failed to load ranked matches", "error", err)
	}
	log.Infow("loaded ranked matches", "count", len(matches))

	rows := feature.NewEngine(logger).Compute(matches)
	if len(rows) != len(matches) {
		// The engine must emit exactly one row per match; anything else
		// means the dataset is corrupt.
		log.Fatalw("feature row count mismatch", "in", len(matches), "out", len(rows))
	}

	log.Infow("connecting to duckdb", "path", cfg.Data.DuckDBPath)
	client, err := duckdb.NewClient(cfg.Data.DuckDBPath)
	if err != nil {
		log.Fatalw("failed to connect to duckdb", "error", err)
	}
	defer client.Close()

	if err := duckdb.InitializeSchema(client); err != nil {
		log.Fatalw("failed to initialize schema", "error", err)
	}
	if err := duckdb.NewFeatureRepo(client).InsertBatch(ctx, rows); err != nil {
		log.Fatalw("failed to store feature rows", "error", err)
	}

	if err := export.WriteFeatureTable(cfg.Data.FeaturesCSV, rows); err != nil {
		log.Fatalw("failed to write feature table", "error", err)
	}
	log.Infow("feature table written", "path", cfg.Data.FeaturesCSV, "rows", len(rows))
}
