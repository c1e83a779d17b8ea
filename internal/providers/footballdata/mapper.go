package footballdata

import (
	"fmt"
	"time"

	"prode-service/internal/domain"
)

func mapMatch(m matchResponse) domain.Game {
	g := domain.Game{
		ID:       fmt.Sprintf("%s-%d", providerName, m.ID),
		HomeTeam: teamName(m.HomeTeam),
		AwayTeam: teamName(m.AwayTeam),
		Status:   domain.ParseStatus(m.Status),
		League:   m.Competition.Code,
	}
	if g.League == "" {
		g.League = m.Competition.Name
	}
	if m.Matchday > 0 {
		g.Week = fmt.Sprintf("Fecha %d", m.Matchday)
	}
	if t, err := time.Parse(time.RFC3339, m.UTCDate); err == nil {
		g.KickOff = t
	}
	// Scores only travel on finished (or live) matches; a half-filled
	// full-time pair upstream is treated as no result.
	if g.Status != domain.StatusUpcoming && m.Score.FullTime.Home != nil && m.Score.FullTime.Away != nil {
		home, away := *m.Score.FullTime.Home, *m.Score.FullTime.Away
		g.HomeScore, g.AwayScore = &home, &away
	}
	return g
}

func teamName(t teamResponse) string {
	if t.ShortName != "" {
		return t.ShortName
	}
	return t.Name
}
