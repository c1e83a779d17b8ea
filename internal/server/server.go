package server

import (
	"context"
	"log/slog"
	"net/http"

	"prode-service/internal/app/games"
	"prode-service/internal/app/predictions"
	"prode-service/internal/app/standings"
	"prode-service/internal/config"
	httpserver "prode-service/internal/http"
	"prode-service/internal/http/handlers"
	"prode-service/internal/http/middleware"
	"prode-service/internal/metrics"
	"prode-service/internal/poller"
	"prode-service/internal/providers"
	"prode-service/internal/snapshots"
	"prode-service/internal/store"
)

var metricsSetup = metrics.Setup

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	gamesSvc      *games.Service
	predsSvc      *predictions.Service
	standingsSvc  *standings.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.FixtureProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), 0, 0)
	}

	memoryStore := store.NewMemoryStore()
	gameSvc := games.NewService(memoryStore)
	predSvc := predictions.NewService(memoryStore)
	standingSvc := standings.NewService(memoryStore, recorder)

	snapStore, snapWriter := buildSnapshots(cfg)
	plr := poller.New(provider, gameSvc, standingSvc, snapWriter, cfg.League, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, gameSvc, predSvc, standingSvc, snapStore, snapWriter, provider, recorder, logger, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		gamesSvc:      gameSvc,
		predsSvc:      predSvc,
		standingsSvc:  standingSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildSnapshots(cfg config.Config) (snapshots.Store, *snapshots.Writer) {
	base := cfg.Snapshots.Dir
	return snapshots.NewFSStore(base), snapshots.NewWriter(base, cfg.Snapshots.RetentionDays)
}

func buildHTTPServer(cfg config.Config, gameSvc *games.Service, predSvc *predictions.Service, standingSvc *standings.Service, snapStore snapshots.Store, snapWriter *snapshots.Writer, provider providers.FixtureProvider, recorder *metrics.Recorder, logger *slog.Logger, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(gameSvc, predSvc, standingSvc, snapStore, recorder, logger, statusFn)
	router := httpserver.NewRouter(handler)

	// Admin endpoints are mounted only when a token is configured.
	if cfg.Snapshots.AdminToken != "" {
		admin := handlers.NewAdminHandler(gameSvc, predSvc, standingSvc, snapWriter, provider, cfg.League, cfg.Snapshots.AdminToken, logger)
		if mux, ok := router.(*http.ServeMux); ok {
			mux.HandleFunc("/admin/snapshots/refresh", admin.RefreshSnapshots)
			mux.HandleFunc("/admin/import", admin.ImportRecords)
		}
	}

	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.pollerProvider().(interface{ Close() }); ok {
		rl.Close()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

// pollerProvider extracts the underlying provider from the poller when
// available. Best-effort helper for cleanup of rate-limited tickers.
func (s *Server) pollerProvider() providers.FixtureProvider {
	if pa, ok := s.poller.(interface {
		Provider() providers.FixtureProvider
	}); ok {
		return pa.Provider()
	}
	return nil
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
