package feature

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sslp23/world-cup-sim-26/pkg/model"
)

// Engine derives per-match rolling form features from a ranked match
// table. Each output row carries, for both sides, trailing means computed
// over that team's own matches with a strictly earlier date. The engine
// holds one bounded outcome buffer per team, updated only once a calendar
// day has been fully processed, so a match can never observe itself or
// another match played the same day.
type Engine struct {
	log *zap.SugaredLogger
}

// NewEngine creates an Engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{log: logger.Sugar()}
}

// staged is an outcome waiting for its calendar day to pass before it
// becomes visible in the owning team's history.
type staged struct {
	team    string
	outcome model.TeamMatchOutcome
}

// Compute produces one FeatureRow per input MatchRecord, in chronological
// order. Input order is preserved between matches on the same date. Teams
// with no earlier match get all-NaN rolling stats; current-match values
// (points won, weighted points, rank difference) are always defined.
func (e *Engine) Compute(matches []model.MatchRecord) []model.FeatureRow {
	sorted := make([]model.MatchRecord, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	histories := make(map[string]*teamHistory)
	historyOf := func(team string) *teamHistory {
		h, ok := histories[team]
		if !ok {
			h = newTeamHistory()
			histories[team] = h
		}
		return h
	}

	// Outcomes from the day currently being processed. They are flushed
	// into the team buffers only when the date advances, which keeps
	// same-day matches invisible to each other.
	var pending []staged
	flush := func() {
		for _, s := range pending {
			historyOf(s.team).Push(s.outcome)
		}
		pending = pending[:0]
	}

	rows := make([]model.FeatureRow, 0, len(sorted))
	for i, m := range sorted {
		if i > 0 && !m.Date.Equal(sorted[i-1].Date) {
			flush()
		}

		homePoints := model.PointsWon(m.HomeScore, m.AwayScore)
		awayPoints := model.PointsWon(m.AwayScore, m.HomeScore)

		row := model.FeatureRow{
			MatchRecord:        m,
			HomePointsWon:      homePoints,
			AwayPointsWon:      awayPoints,
			HomePointsWeighted: float64(homePoints) / model.RankWeight(m.RankAway),
			AwayPointsWeighted: float64(awayPoints) / model.RankWeight(m.RankHome),
			RankDif:            m.RankDif(),
			HomeForm:           rollingStats(historyOf(m.HomeTeam).Slice()),
			AwayForm:           rollingStats(historyOf(m.AwayTeam).Slice()),
		}
		rows = append(rows, row)

		pending = append(pending,
			staged{team: m.HomeTeam, outcome: model.OutcomeFor(m, model.Home)},
			staged{team: m.AwayTeam, outcome: model.OutcomeFor(m, model.Away)},
		)

		if (i+1)%1000 == 0 {
			e.log.Infow("computing features", "processed", i+1, "total", len(sorted))
		}
	}

	e.log.Infow("feature computation complete", "matches", len(rows), "teams", len(histories))
	return rows
}
