package providers

import (
	"context"
	"errors"

	"prode-service/internal/domain"
)

// ErrProviderUnavailable signals that no usable provider is wired.
var ErrProviderUnavailable = errors.New("provider unavailable")

// FixtureProvider defines how upstream match data is fetched and
// normalized. The date parameter, when provided, is a YYYY-MM-DD string
// selecting which day's fixtures to fetch; empty means the current
// matchday window. The league parameter selects the competition.
type FixtureProvider interface {
	FetchGames(ctx context.Context, date string, league string) ([]domain.Game, error)
}
