package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"github.com/sslp23/world-cup-sim-26/pkg/config"
	"github.com/sslp23/world-cup-sim-26/pkg/data"
	"github.com/sslp23/world-cup-sim-26/pkg/export"
	"github.com/sslp23/world-cup-sim-26/pkg/rank"
	"github.com/sslp23/world-cup-sim-26/pkg/store/duckdb"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	matchesCSV := flag.String("matches", "", "Raw match results CSV (overrides config)")
	rankingsCSV := flag.String("rankings", "", "Ranking snapshots CSV (overrides config)")
	out := flag.String("out", "", "Ranked table output CSV (overrides config)")
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
	if *matchesCSV != "" {
		cfg.Data.MatchesCSV = *matchesCSV
	}
	if *rankingsCSV != "" {
		cfg.Data.RankingsCSV = *rankingsCSV
	}
	if *out != "" {
		cfg.Data.RankedCSV = *out
	}
	if *duckdbPath != "" {
		cfg.Data.DuckDBPath = *duckdbPath
	}

	cutoff, err := cfg.CutoffDate()
	if err != nil {
		log.Fatalw("bad config", "error", err)
	}

	ctx := context.Background()

	log.Infow("loading raw matches", "path", cfg.Data.MatchesCSV, "cutoff", cfg.Data.Cutoff)
	matches, err := data.NewCSVMatchProvider(cfg.Data.MatchesCSV).Matches(ctx, cutoff)
	if err != nil {
		log.Fatalw("failed to load matches", "error", err)
	}
	log.Infow("loaded raw matches", "count", len(matches))

	log.Infow("loading ranking snapshots", "path", cfg.Data.RankingsCSV)
	rankings, err := data.NewCSVRankingProvider(cfg.Data.RankingsCSV).Rankings(ctx, cutoff)
	if err != nil {
		log.Fatalw("failed to load rankings", "error", err)
	}
	log.Infow("loaded ranking snapshots", "count", len(rankings))

	builder := rank.NewBuilder(rank.NewNormalizer(cfg.Join.Aliases), logger)
	builder.MinRetention = cfg.Join.MinRetention

	rankings = builder.Normalize(rankings)
	table := rank.NewTable(rankings)
	log.Infow("built ranking table", "teams", table.Teams())

	records, err := builder.Build(matches, table)
	if err != nil {
		log.Fatalw("ranking join failed", "error", err)
	}
	log.Infow("built ranked match table", "matches", len(records))

	log.Infow("connecting to duckdb", "path", cfg.Data.DuckDBPath)
	client, err := duckdb.NewClient(cfg.Data.DuckDBPath)
	if err != nil {
		log.Fatalw("failed to connect to duckdb", "error", err)
	}
	defer client.Close()

	if err := duckdb.InitializeSchema(client); err != nil {
		log.Fatalw("failed to initialize schema", "error", err)
	}
	if err := duckdb.NewRankingRepo(client).InsertBatch(ctx, rankings); err != nil {
		log.Fatalw("failed to store rankings", "error", err)
	}
	if err := duckdb.NewMatchRepo(client).InsertBatch(ctx, records); err != nil {
		log.Fatalw("failed to store ranked matches", "error", err)
	}

	if err := export.WriteRankedTable(cfg.Data.RankedCSV, records); err != nil {
		log.Fatalw("failed to write ranked table", "error", err)
	}
	log.Infow("ranked table written", "path", cfg.Data.RankedCSV, "matches", len(records))
}
