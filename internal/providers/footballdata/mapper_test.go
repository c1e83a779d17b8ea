package footballdata

import (
	"testing"
	"time"

	"prode-service/internal/domain"
)

func TestMapMatchLiveScores(t *testing.T) {
	home, away := 1, 0
	g := mapMatch(matchResponse{
		ID:       7,
		UTCDate:  "2025-08-01T20:00:00Z",
		Status:   "IN_PLAY",
		Matchday: 5,
		HomeTeam: teamResponse{Name: "CA Lanus", ShortName: "Lanús"},
		AwayTeam: teamResponse{Name: "CA Banfield"},
		Score:    scoreResponse{FullTime: scorePair{Home: &home, Away: &away}},
	})

	if g.Status != domain.StatusLive {
		t.Fatalf("unexpected status: %q", g.Status)
	}
	if g.HomeScore == nil || *g.HomeScore != 1 {
		t.Fatalf("live score must be mapped: %+v", g)
	}
	if g.HomeTeam != "Lanús" {
		t.Fatalf("short name must win: %q", g.HomeTeam)
	}
	if g.AwayTeam != "CA Banfield" {
		t.Fatalf("full name must be the fallback: %q", g.AwayTeam)
	}
	if !g.KickOff.Equal(time.Date(2025, 8, 1, 20, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected kickoff: %v", g.KickOff)
	}
}

func TestMapMatchHalfPresentResultDropped(t *testing.T) {
	home := 2
	g := mapMatch(matchResponse{
		ID:     8,
		Status: "FINISHED",
		Score:  scoreResponse{FullTime: scorePair{Home: &home}},
	})

	if g.HomeScore != nil || g.AwayScore != nil {
		t.Fatalf("half-present result must be dropped: %+v", g)
	}
}

func TestMapMatchNoMatchdayNoWeek(t *testing.T) {
	g := mapMatch(matchResponse{ID: 9, Status: "TIMED"})
	if g.Week != "" {
		t.Fatalf("expected empty week, got %q", g.Week)
	}
}

func TestMapMatchLeagueFallsBackToName(t *testing.T) {
	g := mapMatch(matchResponse{
		ID:          10,
		Status:      "TIMED",
		Competition: competition{Name: "Liga Profesional"},
	})
	if g.League != "Liga Profesional" {
		t.Fatalf("unexpected league: %q", g.League)
	}
}
