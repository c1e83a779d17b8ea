package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"prode-service/internal/logging"
	"prode-service/internal/timeutil"
)

// Standings returns the live leaderboard projection, or a stored
// snapshot when an explicit date is requested.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date != "" {
		if _, err := timeutil.ParseDate(date); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		if h.snaps == nil {
			writeError(w, r, http.StatusServiceUnavailable, "snapshot store not configured", h.logger)
			return
		}
		snap, err := h.snaps.LoadStandings(date)
		if err != nil {
			writeError(w, r, http.StatusNotFound, "no standings snapshot for date", h.logger)
			return
		}
		logging.Info(logger, "served standings snapshot", "date", date, slog.Int(logging.FieldCount, len(snap.Standings)))
		writeJSON(w, http.StatusOK, snap, h.logger)
		return
	}

	resp := h.standings.Standings()
	logging.Info(logger, "served standings", slog.Int(logging.FieldCount, len(resp.Standings)))
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// WeekStandings returns per-user totals and winners for one week.
// Expects path: /standings/weeks/{week}.
func (h *Handler) WeekStandings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/standings/weeks/")
	week, err := url.PathUnescape(raw)
	if err != nil || week == "" || strings.Contains(week, "/") {
		writeError(w, r, http.StatusBadRequest, "invalid week label", h.logger)
		return
	}

	resp := h.standings.Week(week)
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served week standings",
		slog.String(logging.FieldWeek, week),
		slog.Int(logging.FieldCount, len(resp.Scores)),
	)
	writeJSON(w, http.StatusOK, resp, h.logger)
}
