package data

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// CSVMatchProvider implements MatchProvider for the international results
// CSV. Columns beyond the five it needs (tournament, city, country,
// neutral, ...) are ignored.
type CSVMatchProvider struct {
	filePath string
	matches  []model.RawMatch
	loaded   bool
}

// NewCSVMatchProvider creates a CSV-backed match provider.
func NewCSVMatchProvider(filePath string) *CSVMatchProvider {
	return &CSVMatchProvider{filePath: filePath}
}

func (p *CSVMatchProvider) loadIfNeeded() error {
	if p.loaded {
		return nil
	}

	err := readCSV(p.filePath, []string{"date", "home_team", "away_team", "home_score", "away_score"},
		func(get func(string) string) error {
			date, err := time.Parse(model.DateLayout, get("date"))
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", get("date"), err)
			}
			homeScore, err := strconv.Atoi(get("home_score"))
			if err != nil {
				return fmt.Errorf("invalid home_score %q: %w", get("home_score"), err)
			}
			awayScore, err := strconv.Atoi(get("away_score"))
			if err != nil {
				return fmt.Errorf("invalid away_score %q: %w", get("away_score"), err)
			}

			p.matches = append(p.matches, model.RawMatch{
				Date:      date,
				HomeTeam:  get("home_team"),
				AwayTeam:  get("away_team"),
				HomeScore: homeScore,
				AwayScore: awayScore,
			})
			return nil
		})
	if err != nil {
		return err
	}

	p.loaded = true
	return nil
}

// Matches returns matches dated on or after since, in file order.
func (p *CSVMatchProvider) Matches(ctx context.Context, since time.Time) ([]model.RawMatch, error) {
	if err := p.loadIfNeeded(); err != nil {
		return nil, err
	}

	var result []model.RawMatch
	for _, m := range p.matches {
		if m.Date.Before(since) {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

// CSVRankingProvider implements RankingProvider for the ranking snapshots
// CSV (columns rank, nation_full_name, points, rank_date).
type CSVRankingProvider struct {
	filePath string
	entries  []model.RankingEntry
	loaded   bool
}

// NewCSVRankingProvider creates a CSV-backed ranking provider.
func NewCSVRankingProvider(filePath string) *CSVRankingProvider {
	return &CSVRankingProvider{filePath: filePath}
}

func (p *CSVRankingProvider) loadIfNeeded() error {
	if p.loaded {
		return nil
	}

	err := readCSV(p.filePath, []string{"rank", "nation_full_name", "points", "rank_date"},
		func(get func(string) string) error {
			date, err := time.Parse(model.DateLayout, get("rank_date"))
			if err != nil {
				return fmt.Errorf("invalid rank_date %q: %w", get("rank_date"), err)
			}
			rankPos, err := strconv.ParseFloat(get("rank"), 64)
			if err != nil {
				return fmt.Errorf("invalid rank %q: %w", get("rank"), err)
			}
			points, err := strconv.ParseFloat(get("points"), 64)
			if err != nil {
				return fmt.Errorf("invalid points %q: %w", get("points"), err)
			}

			p.entries = append(p.entries, model.RankingEntry{
				Date:   date,
				Team:   get("nation_full_name"),
				Rank:   rankPos,
				Points: points,
			})
			return nil
		})
	if err != nil {
		return err
	}

	p.loaded = true
	return nil
}

// Rankings returns snapshots dated on or after since.
func (p *CSVRankingProvider) Rankings(ctx context.Context, since time.Time) ([]model.RankingEntry, error) {
	if err := p.loadIfNeeded(); err != nil {
		return nil, err
	}

	var result []model.RankingEntry
	for _, e := range p.entries {
		if e.Date.Before(since) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

// readCSV opens a CSV file, validates that every required column is
// present in the header, and invokes parse once per data row with a
// column-name accessor. A row that fails to parse aborts the load; the
// downstream tables are only correct when the inputs are fully readable.
func readCSV(filePath string, required []string, parse func(get func(string) string) error) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}

	colMap := make(map[string]int, len(header))
	for i, col := range header {
		colMap[col] = i
	}
	for _, col := range required {
		if _, ok := colMap[col]; !ok {
			return fmt.Errorf("%s: missing required column %q", filePath, col)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV record: %w", err)
		}
		line++

		get := func(name string) string {
			if idx, ok := colMap[name]; ok && idx < len(record) {
				return record[idx]
			}
			return ""
		}
		if err := parse(get); err != nil {
			return fmt.Errorf("%s line %d: %w", filePath, line, err)
		}
	}

	return nil
}
