package store

import (
	"sync"

	"prode-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of games and predictions in
// memory. Games arrive from the fixture provider or imports;
// predictions arrive from user submissions and imports.
type MemoryStore struct {
	mu          sync.RWMutex
	games       map[string]domain.Game
	predictions map[string]domain.Prediction
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games:       make(map[string]domain.Game),
		predictions: make(map[string]domain.Prediction),
	}
}

// ListGames returns a copy of the current games.
func (s *MemoryStore) ListGames() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// MergeGames upserts games by ID, keeping games the batch does not
// mention. Poll cycles only carry the current matchday, so a full
// replace would drop finished history.
func (s *MemoryStore) MergeGames(games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range games {
		if g.ID == "" {
			continue
		}
		s.games[g.ID] = g
	}
}

// SetGames replaces the existing games with a new snapshot.
func (s *MemoryStore) SetGames(games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domain.Game, len(games))
	for _, g := range games {
		s.games[g.ID] = g
	}
}

// AddPredictions stores predictions by record ID. Records without an ID
// are skipped; resubmissions get fresh IDs and are reconciled by the
// engine's dedupe pass, not here.
func (s *MemoryStore) AddPredictions(preds []domain.Prediction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range preds {
		if p.ID == "" {
			continue
		}
		s.predictions[p.ID] = p
	}
}

// ListPredictions returns a copy of all stored predictions.
func (s *MemoryStore) ListPredictions() []domain.Prediction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Prediction, 0, len(s.predictions))
	for _, p := range s.predictions {
		result = append(result, p)
	}
	return result
}

// ListPredictionsByUser returns the stored predictions for one user.
func (s *MemoryStore) ListPredictionsByUser(userID string) []domain.Prediction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Prediction, 0)
	for _, p := range s.predictions {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result
}
