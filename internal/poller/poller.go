package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"prode-service/internal/domain"
	"prode-service/internal/logging"
	"prode-service/internal/metrics"
	"prode-service/internal/providers"
	"prode-service/internal/timeutil"
)

const (
	defaultInterval = 2 * time.Minute
	fetchTimeout    = 30 * time.Second
)

// GameSink receives fetched games.
type GameSink interface {
	UpsertGames(games []domain.Game)
}

// StandingsSource recomputes the leaderboard projection after a refresh.
type StandingsSource interface {
	Standings() domain.StandingsResponse
}

// SnapshotWriter persists standings snapshots to disk.
type SnapshotWriter interface {
	WriteStandings(date string, snapshot domain.StandingsResponse) error
}

// Poller fetches games on an interval, folds them into the store and
// writes today's standings snapshot.
type Poller struct {
	provider  providers.FixtureProvider
	games     GameSink
	standings StandingsSource
	writer    SnapshotWriter
	league    string
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is
// not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.FixtureProvider, games GameSink, standings StandingsSource, writer SnapshotWriter, league string, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider:  provider,
		games:     games,
		standings: standings,
		writer:    writer,
		league:    league,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// Provider exposes the wrapped provider for shutdown cleanup.
func (p *Poller) Provider() providers.FixtureProvider {
	return p.provider
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
	})
	return nil
}

// Status returns a copy of the current poller health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := p.now()
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	games, err := p.provider.FetchGames(fetchCtx, "", p.league)
	duration := time.Since(start)
	p.metrics.RecordPollerCycle(duration, err)

	if err != nil {
		p.recordFailure(err)
		p.logWarn("poll cycle failed", "err", err)
		return
	}

	p.games.UpsertGames(games)
	p.recordSuccess()
	p.logInfo("poll cycle complete",
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)

	p.writeSnapshot()
}

func (p *Poller) writeSnapshot() {
	if p.standings == nil || p.writer == nil {
		return
	}
	snapshot := p.standings.Standings()
	date := timeutil.FormatDate(p.now().UTC())
	if err := p.writer.WriteStandings(date, snapshot); err != nil {
		p.logWarn("standings snapshot write failed", "date", date, "err", err)
	}
}

func (p *Poller) recordFailure(err error) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	p.status.LastError = err.Error()
	p.status.LastAttempt = p.now()
}

func (p *Poller) recordSuccess() {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastAttempt = p.now()
	p.status.LastSuccess = p.now()
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logWarn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
