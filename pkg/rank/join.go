package rank

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// DefaultMinRetention is the fraction of raw matches that must survive the
// ranking join before the result is trusted. Early-window matches are
// legitimately dropped when a team has no snapshot yet, but losses beyond
// this bound indicate a name-vocabulary mismatch between the two sources.
const DefaultMinRetention = 0.9

// RetentionError reports a ranking join that dropped more matches than the
// configured bound allows. It carries the team names responsible for the
// drops so the missing aliases can be identified.
type RetentionError struct {
	In           int
	Out          int
	MinRetention float64
	UnknownTeams []string
}

func (e *RetentionError) Error() string {
	return fmt.Sprintf(
		"ranking join kept %d of %d matches (minimum retention %.2f); teams never found in ranking table: %s",
		e.Out, e.In, e.MinRetention, strings.Join(e.UnknownTeams, ", "),
	)
}

// Builder joins raw match results with the ranking table, producing one
// MatchRecord per match with both sides' rank and points resolved as of
// the match date.
type Builder struct {
	// MinRetention overrides DefaultMinRetention when positive.
	MinRetention float64

	normalizer *Normalizer
	log        *zap.SugaredLogger
}

// NewBuilder creates a Builder. A nil normalizer falls back to the default
// alias table; a nil logger disables logging.
func NewBuilder(normalizer *Normalizer, logger *zap.Logger) *Builder {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		normalizer: normalizer,
		log:        logger.Sugar(),
	}
}

// Normalize canonicalizes the team names of ranking entries in place and
// returns the slice for convenience.
func (b *Builder) Normalize(entries []model.RankingEntry) []model.RankingEntry {
	for i := range entries {
		entries[i].Team = b.normalizer.Canonical(entries[i].Team)
	}
	return entries
}

// Build joins matches with ranks. Matches where either team has no
// snapshot on or before the match date are dropped (inner-join policy for
// unranked teams). If the surviving fraction falls below the retention
// bound, Build fails with a *RetentionError naming the teams that were
// never found in the ranking table at all.
func (b *Builder) Build(matches []model.RawMatch, ranks *Table) ([]model.MatchRecord, error) {
	records := make([]model.MatchRecord, 0, len(matches))
	unknown := make(map[string]int)

	for _, m := range matches {
		home, homeOK := ranks.AsOf(m.HomeTeam, m.Date)
		away, awayOK := ranks.AsOf(m.AwayTeam, m.Date)

		if !homeOK || !awayOK {
			// Distinguish "no snapshot yet" from "name absent entirely";
			// only the latter signals a vocabulary mismatch.
			if !ranks.Has(m.HomeTeam) {
				unknown[m.HomeTeam]++
			}
			if !ranks.Has(m.AwayTeam) {
				unknown[m.AwayTeam]++
			}
			continue
		}

		records = append(records, model.MatchRecord{
			Date:       m.Date,
			HomeTeam:   m.HomeTeam,
			AwayTeam:   m.AwayTeam,
			HomeScore:  m.HomeScore,
			AwayScore:  m.AwayScore,
			RankHome:   home.Rank,
			PointsHome: home.Points,
			RankAway:   away.Rank,
			PointsAway: away.Points,
		})
	}

	minRetention := b.MinRetention
	if minRetention <= 0 {
		minRetention = DefaultMinRetention
	}

	if len(matches) > 0 && float64(len(records)) < minRetention*float64(len(matches)) {
		return nil, &RetentionError{
			In:           len(matches),
			Out:          len(records),
			MinRetention: minRetention,
			UnknownTeams: sortedByDrops(unknown),
		}
	}

	if dropped := len(matches) - len(records); dropped > 0 {
		b.log.Infow("ranking join dropped unranked matches",
			"in", len(matches), "out", len(records), "dropped", dropped)
	}
	return records, nil
}

// sortedByDrops orders team names by how many matches they cost, worst
// first, with name order as tie-break for determinism.
func sortedByDrops(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
