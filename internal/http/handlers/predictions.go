package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"prode-service/internal/app/predictions"
	"prode-service/internal/domain"
	"prode-service/internal/logging"
)

// submitRequest is the POST /predictions body. Scores stay optional so
// a player can save an empty slip and fill it in later.
type submitRequest struct {
	UserID     string `json:"userId"`
	GameID     string `json:"gameId"`
	Home       *int   `json:"predictedHomeScore"`
	Away       *int   `json:"predictedAwayScore"`
	PlayerName string `json:"playerName"`
}

// Predictions routes /predictions by method.
func (h *Handler) Predictions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.submitPrediction(w, r)
	case http.MethodGet:
		h.listPredictions(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) submitPrediction(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	stored, err := h.preds.Submit(domain.Prediction{
		UserID:     strings.TrimSpace(req.UserID),
		GameID:     strings.TrimSpace(req.GameID),
		Home:       req.Home,
		Away:       req.Away,
		PlayerName: strings.TrimSpace(req.PlayerName),
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, predictions.ErrUnknownGame) {
			status = http.StatusNotFound
		}
		writeError(w, r, status, err.Error(), h.logger)
		return
	}

	h.metrics.RecordPredictionSubmitted()
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "prediction stored",
		slog.String(logging.FieldUser, stored.UserID),
		slog.String(logging.FieldGame, stored.GameID),
	)
	writeJSON(w, http.StatusCreated, stored, h.logger)
}

func (h *Handler) listPredictions(w http.ResponseWriter, r *http.Request) {
	user := strings.TrimSpace(r.URL.Query().Get("user"))

	var list []domain.Prediction
	if user != "" {
		list = h.preds.ByUser(user)
	} else {
		list = h.preds.All()
	}

	writeJSON(w, http.StatusOK, domain.PredictionsResponse{UserID: user, Predictions: list}, h.logger)
}
