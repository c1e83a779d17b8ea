package games

import "prode-service/internal/domain"

// Store defines the contract for persisting and retrieving games.
type Store interface {
	ListGames() []domain.Game
	GetGame(id string) (domain.Game, bool)
	MergeGames(games []domain.Game)
	SetGames(games []domain.Game)
}

// Service coordinates game operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Games returns the current set of games.
func (s *Service) Games() []domain.Game {
	return s.store.ListGames()
}

// GamesByWeek returns the games carrying the given week label.
func (s *Service) GamesByWeek(week string) []domain.Game {
	all := s.store.ListGames()
	result := make([]domain.Game, 0, len(all))
	for _, g := range all {
		if g.Week == week {
			result = append(result, g)
		}
	}
	return result
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id string) (domain.Game, bool) {
	return s.store.GetGame(id)
}

// UpsertGames merges a provider batch into the stored games.
func (s *Service) UpsertGames(games []domain.Game) {
	s.store.MergeGames(games)
}

// ReplaceGames swaps the stored games with a new snapshot.
func (s *Service) ReplaceGames(games []domain.Game) {
	s.store.SetGames(games)
}
