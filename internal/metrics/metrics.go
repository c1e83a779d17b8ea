package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// ProviderSnapshot is a read-only view of one provider's counters.
type ProviderSnapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics and forwards them to
// the otel instruments when telemetry is enabled. The in-memory side
// keeps tests and the disabled-telemetry path free of SDK plumbing.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats

	aggregations    int
	lastAggregation time.Duration
	submissions     int

	otel *otelInstruments
}

// NewRecorder returns a Recorder without telemetry export.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and
// stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks a rate-limited provider response and the last
// Retry-After hint.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordHTTPRequest tracks one served HTTP request.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// RecordPollerCycle tracks one poll cycle and its outcome.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordPoller(duration, err)
	}
}

// RecordAggregation tracks one standings computation over the corpus.
func (r *Recorder) RecordAggregation(duration time.Duration, players int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.aggregations++
	r.lastAggregation = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAggregation(duration, players)
	}
}

// RecordPredictionSubmitted tracks one accepted prediction submission.
func (r *Recorder) RecordPredictionSubmitted() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.submissions++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPredictionSubmitted()
	}
}

// Snapshot returns the counters recorded for one provider.
func (r *Recorder) Snapshot(provider string) ProviderSnapshot {
	if r == nil {
		return ProviderSnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		return ProviderSnapshot{}
	}
	return ProviderSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// Aggregations returns the number of standings computations recorded.
func (r *Recorder) Aggregations() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.aggregations
}

// Submissions returns the number of accepted predictions recorded.
func (r *Recorder) Submissions() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.submissions
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
