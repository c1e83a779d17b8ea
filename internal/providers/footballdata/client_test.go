package footballdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prode-service/internal/domain"
	"prode-service/internal/providers"
)

const matchesPayload = `{
  "resultSet": {"count": 2},
  "matches": [
    {
      "id": 551001,
      "utcDate": "2025-08-01T20:00:00Z",
      "status": "FINISHED",
      "matchday": 3,
      "homeTeam": {"id": 1, "name": "CA River Plate", "shortName": "River Plate", "tla": "RIV"},
      "awayTeam": {"id": 2, "name": "CA Boca Juniors", "shortName": "Boca Juniors", "tla": "BOC"},
      "score": {"fullTime": {"home": 2, "away": 1}},
      "competition": {"code": "ARG", "name": "Liga Profesional"}
    },
    {
      "id": 551002,
      "utcDate": "2025-08-02T18:00:00Z",
      "status": "TIMED",
      "matchday": 3,
      "homeTeam": {"id": 3, "name": "Racing Club", "shortName": "Racing", "tla": "RAC"},
      "awayTeam": {"id": 4, "name": "CA Independiente", "shortName": "Independiente", "tla": "IND"},
      "score": {"fullTime": {"home": null, "away": null}},
      "competition": {"code": "ARG", "name": "Liga Profesional"}
    }
  ]
}`

func TestFetchGames(t *testing.T) {
	var gotPath, gotToken, gotFrom, gotTo, gotComp string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Auth-Token")
		gotFrom = r.URL.Query().Get("dateFrom")
		gotTo = r.URL.Query().Get("dateTo")
		gotComp = r.URL.Query().Get("competitions")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(matchesPayload))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "test-token"})
	games, err := client.FetchGames(context.Background(), "2025-08-01", "ARG")
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}

	if gotPath != "/matches" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotToken != "test-token" {
		t.Fatalf("unexpected auth token: %q", gotToken)
	}
	if gotFrom != "2025-08-01" || gotTo != "2025-08-01" {
		t.Fatalf("unexpected date window: %q..%q", gotFrom, gotTo)
	}
	if gotComp != "ARG" {
		t.Fatalf("unexpected competitions filter: %q", gotComp)
	}

	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	finished := games[0]
	if finished.ID != "footballdata-551001" {
		t.Fatalf("unexpected game ID: %q", finished.ID)
	}
	if finished.HomeTeam != "River Plate" || finished.AwayTeam != "Boca Juniors" {
		t.Fatalf("unexpected teams: %q vs %q", finished.HomeTeam, finished.AwayTeam)
	}
	if finished.Status != domain.StatusFinished {
		t.Fatalf("unexpected status: %q", finished.Status)
	}
	if finished.Week != "Fecha 3" {
		t.Fatalf("unexpected week: %q", finished.Week)
	}
	if finished.HomeScore == nil || *finished.HomeScore != 2 || finished.AwayScore == nil || *finished.AwayScore != 1 {
		t.Fatalf("unexpected result: %+v", finished)
	}
	if finished.League != "ARG" {
		t.Fatalf("unexpected league: %q", finished.League)
	}

	upcoming := games[1]
	if upcoming.Status != domain.StatusUpcoming {
		t.Fatalf("TIMED must map to upcoming, got %q", upcoming.Status)
	}
	if upcoming.HomeScore != nil || upcoming.AwayScore != nil {
		t.Fatalf("upcoming game must carry no result: %+v", upcoming)
	}
}

func TestFetchGamesDefaultsDateToToday(t *testing.T) {
	var gotFrom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFrom = r.URL.Query().Get("dateFrom")
		w.Write([]byte(`{"matches": []}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	client.now = func() time.Time { return time.Date(2025, 8, 30, 15, 0, 0, 0, time.UTC) }

	if _, err := client.FetchGames(context.Background(), "", "ARG"); err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	if gotFrom != "2025-08-30" {
		t.Fatalf("expected today's date, got %q", gotFrom)
	}
}

func TestFetchGamesRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.Header().Set("X-Requests-Available-Minute", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchGames(context.Background(), "2025-08-01", "ARG")

	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rlErr.RetryAfter != 30*time.Second {
		t.Fatalf("unexpected retry-after: %v", rlErr.RetryAfter)
	}
	if rlErr.Remaining != "0" {
		t.Fatalf("unexpected remaining hint: %q", rlErr.Remaining)
	}
}

func TestFetchGamesUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.FetchGames(context.Background(), "2025-08-01", "ARG"); err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}
