package providers

import (
	"context"
	"log/slog"
	"time"

	"prode-service/internal/domain"
)

// rateLimitedProvider wraps a FixtureProvider and enforces a minimum
// interval between calls.
type rateLimitedProvider struct {
	next     FixtureProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a FixtureProvider that limits calls to
// the given interval. Calls block until the interval elapses to avoid
// exceeding upstream quotas.
func NewRateLimitedProvider(next FixtureProvider, interval time.Duration, logger *slog.Logger) FixtureProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, date string, league string) ([]domain.Game, error) {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		}
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	return p.next.FetchGames(ctx, date, league)
}

// Close releases the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
