package standings

import (
	"time"

	"prode-service/internal/domain"
	"prode-service/internal/engine"
	"prode-service/internal/metrics"
	"prode-service/internal/timeutil"
)

// Store supplies the corpus the standings projection is computed from.
type Store interface {
	ListGames() []domain.Game
	ListPredictions() []domain.Prediction
}

// Service computes the leaderboard projection on demand. Each call is
// an independent recomputation over the full corpus; nothing is cached
// here because the snapshot layer covers the "serve yesterday cheaply"
// case.
type Service struct {
	store   Store
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, recorder *metrics.Recorder) *Service {
	return &Service{
		store:   store,
		metrics: recorder,
		now:     time.Now,
	}
}

// Standings aggregates and ranks the current corpus.
func (s *Service) Standings() domain.StandingsResponse {
	start := s.now()
	games := s.store.ListGames()
	preds := s.store.ListPredictions()

	stats := engine.Aggregate(games, preds)
	ranked := engine.Rank(stats, preds)

	if s.metrics != nil {
		s.metrics.RecordAggregation(time.Since(start), len(ranked))
	}
	return domain.StandingsResponse{
		Date:      timeutil.FormatDate(s.now().UTC()),
		Standings: ranked,
	}
}

// Week returns per-user totals and winners for one week label.
func (s *Service) Week(week string) domain.WeekResponse {
	scores := engine.WeekScores(s.store.ListGames(), s.store.ListPredictions(), week)
	return domain.WeekResponse{
		Week:   week,
		Scores: scores,
	}
}
