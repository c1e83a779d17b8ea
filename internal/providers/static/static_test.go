package static

import (
	"context"
	"testing"
	"time"

	"prode-service/internal/domain"
)

func TestFetchGamesDeterministic(t *testing.T) {
	p := New()
	p.now = func() time.Time { return time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC) }

	games, err := p.FetchGames(context.Background(), "", "ARG")
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	if len(games) != 4 {
		t.Fatalf("expected 4 games, got %d", len(games))
	}

	finished, upcoming := 0, 0
	for _, g := range games {
		switch g.Status {
		case domain.StatusFinished:
			finished++
			if !g.HasResult() {
				t.Fatalf("finished game must carry a result: %+v", g)
			}
		case domain.StatusUpcoming:
			upcoming++
			if g.HasResult() {
				t.Fatalf("upcoming game must carry no result: %+v", g)
			}
		}
	}
	if finished != 2 || upcoming != 2 {
		t.Fatalf("expected 2 finished and 2 upcoming, got %d/%d", finished, upcoming)
	}
}

func TestFetchGamesAnchorsToDate(t *testing.T) {
	p := New()

	games, err := p.FetchGames(context.Background(), "2025-08-01", "ARG")
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}

	anchor := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	if got := games[0].KickOff; !got.Equal(anchor.Add(-72 * time.Hour)) {
		t.Fatalf("unexpected kickoff anchor: %v", got)
	}
}
