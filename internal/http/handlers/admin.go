package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"prode-service/internal/app/games"
	"prode-service/internal/app/predictions"
	"prode-service/internal/app/standings"
	"prode-service/internal/domain"
	"prode-service/internal/logging"
	"prode-service/internal/normalize"
	"prode-service/internal/providers"
	"prode-service/internal/snapshots"
	"prode-service/internal/timeutil"
)

// AdminHandler exposes token-guarded operational endpoints.
type AdminHandler struct {
	games     *games.Service
	preds     *predictions.Service
	standings *standings.Service
	writer    *snapshots.Writer
	provider  providers.FixtureProvider
	league    string
	token     string
	logger    *slog.Logger
	now       nowFunc
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(gameSvc *games.Service, predSvc *predictions.Service, standingSvc *standings.Service, writer *snapshots.Writer, provider providers.FixtureProvider, league, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		games:     gameSvc,
		preds:     predSvc,
		standings: standingSvc,
		writer:    writer,
		provider:  provider,
		league:    league,
		token:     token,
		logger:    logger,
		now:       time.Now,
	}
}

// RefreshSnapshots refetches fixtures from the provider, folds them in,
// recomputes the standings and persists today's snapshot. Guarded by
// ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", clientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.provider == nil || h.writer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date != "" {
		if _, err := timeutil.ParseDate(date); err != nil {
			logging.Warn(logger, "admin snapshot invalid date", slog.String("date", date))
			writeError(w, r, http.StatusBadRequest, "invalid date format", logger)
			return
		}
	}

	fetched, err := h.provider.FetchGames(r.Context(), date, h.league)
	if err != nil {
		logging.Warn(logger, "admin snapshot fetch failed", slog.String("date", date), slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "failed to fetch games", logger)
		return
	}
	h.games.UpsertGames(fetched)

	snapshot := h.standings.Standings()
	today := timeutil.FormatDate(h.now().UTC())
	if err := h.writer.WriteStandings(today, snapshot); err != nil {
		logging.Error(logger, "admin snapshot write failed", err, slog.String("date", today))
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	logging.Info(logger, "admin snapshot refreshed",
		slog.String("date", today),
		slog.Int(logging.FieldCount, len(fetched)),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"date":    today,
		"games":   len(fetched),
		"players": len(snapshot.Standings),
	}, h.logger)
}

// importRequest carries loosely-shaped legacy records; field casing is
// resolved by the normalize package.
type importRequest struct {
	Games       []normalize.Record `json:"games"`
	Predictions []normalize.Record `json:"predictions"`
}

// ImportRecords ingests legacy game and prediction exports. Records
// that cannot be normalized are counted and skipped, not fatal.
func (h *AdminHandler) ImportRecords(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	rejected := 0
	importedGames := make([]domain.Game, 0, len(req.Games))
	for _, raw := range req.Games {
		g, err := normalize.Game(raw)
		if err != nil {
			rejected++
			continue
		}
		importedGames = append(importedGames, g)
	}
	h.games.UpsertGames(importedGames)

	importedPreds := make([]domain.Prediction, 0, len(req.Predictions))
	for _, raw := range req.Predictions {
		p, err := normalize.Prediction(raw)
		if err != nil {
			rejected++
			continue
		}
		importedPreds = append(importedPreds, p)
	}
	stored := h.preds.Import(importedPreds)

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "admin import complete",
		slog.Int("games", len(importedGames)),
		slog.Int("predictions", stored),
		slog.Int("rejected", rejected),
	)
	writeJSON(w, http.StatusOK, map[string]int{
		"games":       len(importedGames),
		"predictions": stored,
		"rejected":    rejected,
	}, h.logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ") == h.token
	}
	return r.Header.Get("X-Admin-Token") == h.token
}
