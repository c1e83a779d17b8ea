package predictions

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"prode-service/internal/domain"
)

// Validation errors surfaced to the HTTP layer.
var (
	ErrMissingUser   = errors.New("userId is required")
	ErrMissingGame   = errors.New("gameId is required")
	ErrPartialScores = errors.New("predicted scores must be entered together or left empty")
	ErrUnknownGame   = errors.New("game not found")
)

// Store defines the prediction persistence contract.
type Store interface {
	GetGame(id string) (domain.Game, bool)
	AddPredictions(preds []domain.Prediction)
	ListPredictions() []domain.Prediction
	ListPredictionsByUser(userID string) []domain.Prediction
}

// Service validates and stores prediction submissions.
type Service struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Submit validates a submission, assigns the record ID and timestamp,
// and stores it. The stored record is returned. An empty score pair is
// a valid submission (the player saved without guessing).
func (s *Service) Submit(p domain.Prediction) (domain.Prediction, error) {
	if p.UserID == "" {
		return domain.Prediction{}, ErrMissingUser
	}
	if p.GameID == "" {
		return domain.Prediction{}, ErrMissingGame
	}
	if (p.Home == nil) != (p.Away == nil) {
		return domain.Prediction{}, ErrPartialScores
	}
	if p.Home != nil && (*p.Home < 0 || *p.Away < 0) {
		return domain.Prediction{}, fmt.Errorf("predicted scores must be non-negative")
	}
	if _, ok := s.store.GetGame(p.GameID); !ok {
		return domain.Prediction{}, ErrUnknownGame
	}

	p.ID = s.newID()
	p.CreatedAt = s.now().UTC()
	s.store.AddPredictions([]domain.Prediction{p})
	return p, nil
}

// Import stores already-normalized prediction records, assigning IDs
// and timestamps only where the source record lacked them.
func (s *Service) Import(preds []domain.Prediction) int {
	stored := make([]domain.Prediction, 0, len(preds))
	for _, p := range preds {
		if p.ID == "" {
			p.ID = s.newID()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = s.now().UTC()
		}
		stored = append(stored, p)
	}
	s.store.AddPredictions(stored)
	return len(stored)
}

// All returns every stored prediction.
func (s *Service) All() []domain.Prediction {
	return s.store.ListPredictions()
}

// ByUser returns the stored predictions for one user.
func (s *Service) ByUser(userID string) []domain.Prediction {
	return s.store.ListPredictionsByUser(userID)
}
