// Package export writes the pipeline's tables as delimited flat files.
// Files are written to a temp path and renamed into place on success, so
// a failed run never leaves partial output behind. Formatting is fully
// deterministic: rerunning on identical inputs yields byte-identical
// files.
package export

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// rankedColumns is the header of the ranked match table.
var rankedColumns = []string{
	"date", "home_team", "away_team", "home_score", "away_score",
	"rank_home", "points_home", "rank_away", "points_away",
}

// featureColumns returns the full header of the feature table: the ranked
// match columns followed by the derived ones.
func featureColumns() []string {
	cols := append([]string{}, rankedColumns...)
	cols = append(cols,
		"home_points_won", "away_points_won",
		"home_points_weighted", "away_points_weighted", "rank_dif",
	)
	for _, suffix := range model.RollingColumns {
		cols = append(cols, "home_"+suffix)
	}
	for _, suffix := range model.RollingColumns {
		cols = append(cols, "away_"+suffix)
	}
	return cols
}

// WriteRankedTable writes ranked matches to path as CSV.
func WriteRankedTable(path string, matches []model.MatchRecord) error {
	return writeAtomic(path, func(w *csv.Writer) error {
		if err := w.Write(rankedColumns); err != nil {
			return err
		}
		for _, m := range matches {
			record := []string{
				m.Date.Format(model.DateLayout),
				m.HomeTeam, m.AwayTeam,
				strconv.Itoa(m.HomeScore), strconv.Itoa(m.AwayScore),
				formatFloat(m.RankHome), formatFloat(m.PointsHome),
				formatFloat(m.RankAway), formatFloat(m.PointsAway),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteFeatureTable writes feature rows to path as CSV. Undefined rolling
// values (NaN) are written as empty cells.
func WriteFeatureTable(path string, rows []model.FeatureRow) error {
	return writeAtomic(path, func(w *csv.Writer) error {
		if err := w.Write(featureColumns()); err != nil {
			return err
		}
		for _, f := range rows {
			record := []string{
				f.Date.Format(model.DateLayout),
				f.HomeTeam, f.AwayTeam,
				strconv.Itoa(f.HomeScore), strconv.Itoa(f.AwayScore),
				formatFloat(f.RankHome), formatFloat(f.PointsHome),
				formatFloat(f.RankAway), formatFloat(f.PointsAway),
				strconv.Itoa(f.HomePointsWon), strconv.Itoa(f.AwayPointsWon),
				formatFloat(f.HomePointsWeighted), formatFloat(f.AwayPointsWeighted),
				formatFloat(f.RankDif),
			}
			for _, v := range f.HomeForm.Values() {
				record = append(record, formatFloat(v))
			}
			for _, v := range f.AwayForm.Values() {
				record = append(record, formatFloat(v))
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

// formatFloat renders a value for CSV output; NaN becomes an empty cell.
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// writeAtomic streams CSV output to a temp file in the destination
// directory, then renames it over path once the writer is flushed.
func writeAtomic(path string, write func(w *csv.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := write(w); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
