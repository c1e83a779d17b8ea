// Package static ships a deterministic fixture set for local runs and
// tests, in place of a live upstream.
package static

import (
	"context"
	"time"

	"prode-service/internal/domain"
)

// Provider returns a built-in set of Argentine league games: one
// finished matchday so standings have something to show, and one
// upcoming matchday open for predictions.
type Provider struct {
	now func() time.Time
}

// New creates a static provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// FetchGames returns the deterministic fixture set. The date and league
// parameters are accepted for interface compatibility and ignored.
func (p *Provider) FetchGames(ctx context.Context, date string, league string) ([]domain.Game, error) {
	_ = ctx
	_ = league

	start := p.now().UTC().Truncate(time.Hour)
	if date != "" {
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			start = parsed.UTC()
		}
	}

	games := []domain.Game{
		{
			ID:        "static-1",
			HomeTeam:  "River Plate",
			AwayTeam:  "Boca Juniors",
			Status:    domain.StatusFinished,
			HomeScore: domain.IntPtr(2),
			AwayScore: domain.IntPtr(1),
			KickOff:   start.Add(-72 * time.Hour),
			Week:      "Fecha 1",
			League:    "ARG",
		},
		{
			ID:        "static-2",
			HomeTeam:  "Racing Club",
			AwayTeam:  "Independiente",
			Status:    domain.StatusFinished,
			HomeScore: domain.IntPtr(0),
			AwayScore: domain.IntPtr(0),
			KickOff:   start.Add(-70 * time.Hour),
			Week:      "Fecha 1",
			League:    "ARG",
		},
		{
			ID:       "static-3",
			HomeTeam: "San Lorenzo",
			AwayTeam: "Vélez Sarsfield",
			Status:   domain.StatusUpcoming,
			KickOff:  start.Add(48 * time.Hour),
			Week:     "Fecha 2",
			League:   "ARG",
		},
		{
			ID:       "static-4",
			HomeTeam: "Estudiantes",
			AwayTeam: "Huracán",
			Status:   domain.StatusUpcoming,
			KickOff:  start.Add(50 * time.Hour),
			Week:     "Fecha 2",
			League:   "ARG",
		},
	}

	return games, nil
}
