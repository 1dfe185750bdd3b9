package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/sslp23/world-cup-sim-26/pkg/config"
	"github.com/sslp23/world-cup-sim-26/pkg/data"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	url := flag.String("url", "", "Dataset URL (overrides config)")
	output := flag.String("output", "", "Output CSV path (overrides config)")
	force := flag.Bool("force", false, "Re-download even if the file exists")
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
	if *url != "" {
		cfg.Data.SourceURL = *url
	}
	if *output != "" {
		cfg.Data.MatchesCSV = *output
	}
	if cfg.Data.SourceURL == "" {
		log.Fatal("no dataset URL configured; set data.source_url or pass -url")
	}

	if !*force {
		if _, err := os.Stat(cfg.Data.MatchesCSV); err == nil {
			log.Infow("dataset already present, skipping download", "path", cfg.Data.MatchesCSV)
			return
		}
	}

	log.Infow("downloading dataset", "url", cfg.Data.SourceURL, "path", cfg.Data.MatchesCSV)
	if err := data.Download(context.Background(), cfg.Data.SourceURL, cfg.Data.MatchesCSV); err != nil {
		log.Fatalw("download failed", "error", err)
	}
	log.Infow("download complete", "path", cfg.Data.MatchesCSV)
}
