package http

import (
	nethttp "net/http"

	"prode-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/games", handler.Games)
	mux.HandleFunc("/games/", handler.GameByID)
	mux.HandleFunc("/predictions", handler.Predictions)
	mux.HandleFunc("/standings", handler.Standings)
	mux.HandleFunc("/standings/weeks/", handler.WeekStandings)
	return mux
}
