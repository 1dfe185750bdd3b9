package data

import (
	"context"
	"time"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// MatchProvider supplies historical match results.
type MatchProvider interface {
	// Matches returns results dated on or after since, oldest first.
	Matches(ctx context.Context, since time.Time) ([]model.RawMatch, error)
}

// RankingProvider supplies periodic team-ranking snapshots.
type RankingProvider interface {
	// Rankings returns snapshots dated on or after since.
	Rankings(ctx context.Context, since time.Time) ([]model.RankingEntry, error)
}

// MemoryMatchProvider implements MatchProvider over an in-memory slice.
type MemoryMatchProvider struct {
	matches []model.RawMatch
}

// NewMemoryMatchProvider creates a provider serving the given matches.
func NewMemoryMatchProvider(matches []model.RawMatch) *MemoryMatchProvider {
	return &MemoryMatchProvider{matches: matches}
}

// Matches returns the stored matches dated on or after since.
func (p *MemoryMatchProvider) Matches(ctx context.Context, since time.Time) ([]model.RawMatch, error) {
	var result []model.RawMatch
	for _, m := range p.matches {
		if m.Date.Before(since) {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}
