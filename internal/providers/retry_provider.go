package providers

import (
	"context"
	"log/slog"
	"time"

	"prode-service/internal/domain"
	"prode-service/internal/logging"
	"prode-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a FixtureProvider with retry/backoff behavior
// and per-attempt metrics.
type retryingProvider struct {
	inner       FixtureProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner FixtureProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) FixtureProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context, date string, league string) ([]domain.Game, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		games, err := r.inner.FetchGames(ctx, date, league)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return games, nil
		}
		lastErr = err

		delay := r.backoffFn(attempt)
		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
			if rlErr.RetryAfter > delay {
				delay = rlErr.RetryAfter
			}
		}

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		args = append(args, slog.String(logging.FieldProvider, r.name))
		logger.Warn(msg, args...)
	}
}
