package server

import (
	"log/slog"
	"time"

	"prode-service/internal/config"
	"prode-service/internal/metrics"
	"prode-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers
// (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.FixtureProvider {
	base := selectProvider(cfg, f.logger)
	// Shared rate limiter to respect upstream quota (free tiers allow
	// around 10 req/min; one per minute leaves headroom).
	limited := providers.NewRateLimitedProvider(base, time.Minute, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}
