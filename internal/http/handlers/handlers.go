package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"prode-service/internal/app/games"
	"prode-service/internal/app/predictions"
	"prode-service/internal/app/standings"
	"prode-service/internal/domain"
	"prode-service/internal/logging"
	"prode-service/internal/metrics"
	"prode-service/internal/poller"
	"prode-service/internal/snapshots"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the app services.
type Handler struct {
	games     *games.Service
	preds     *predictions.Service
	standings *standings.Service
	snaps     snapshots.Store
	metrics   *metrics.Recorder
	logger    *slog.Logger
	now       nowFunc
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(gameSvc *games.Service, predSvc *predictions.Service, standingSvc *standings.Service, snaps snapshots.Store, recorder *metrics.Recorder, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		games:     gameSvc,
		preds:     predSvc,
		standings: standingSvc,
		snaps:     snaps,
		metrics:   recorder,
		logger:    logger,
		now:       time.Now,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Games returns the stored games, optionally filtered by week label.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	week := strings.TrimSpace(r.URL.Query().Get("week"))
	var list []domain.Game
	if week != "" {
		list = h.games.GamesByWeek(week)
	} else {
		list = h.games.Games()
	}

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served games",
		slog.String(logging.FieldWeek, week),
		slog.Int(logging.FieldCount, len(list)),
	)
	writeJSON(w, http.StatusOK, domain.GamesResponse{Week: week, Games: list}, h.logger)
}

// GameByID returns a specific game if present.
func (h *Handler) GameByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	idRaw := strings.TrimPrefix(r.URL.Path, "/games/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	game, ok := h.games.GameByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, game, h.logger)
}
