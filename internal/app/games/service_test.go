package games

import (
	"testing"

	"prode-service/internal/domain"
	"prode-service/internal/store"
)

func newService() *Service {
	return NewService(store.NewMemoryStore())
}

func TestGamesByWeek(t *testing.T) {
	svc := newService()
	svc.UpsertGames([]domain.Game{
		{ID: "g1", Week: "Fecha 1"},
		{ID: "g2", Week: "Fecha 1"},
		{ID: "g3", Week: "Fecha 2"},
	})

	got := svc.GamesByWeek("Fecha 1")
	if len(got) != 2 {
		t.Fatalf("expected 2 games for Fecha 1, got %d", len(got))
	}
	if got := svc.GamesByWeek("Fecha 9"); len(got) != 0 {
		t.Fatalf("expected no games for unknown week, got %d", len(got))
	}
}

func TestGameByID(t *testing.T) {
	svc := newService()
	svc.UpsertGames([]domain.Game{{ID: "g1", HomeTeam: "River Plate"}})

	g, ok := svc.GameByID("g1")
	if !ok || g.HomeTeam != "River Plate" {
		t.Fatalf("unexpected lookup result: %+v ok=%v", g, ok)
	}
	if _, ok := svc.GameByID("missing"); ok {
		t.Fatalf("did not expect to find missing game")
	}
}

func TestUpsertGamesKeepsEarlierBatches(t *testing.T) {
	svc := newService()
	svc.UpsertGames([]domain.Game{{ID: "g1", Status: domain.StatusFinished}})
	svc.UpsertGames([]domain.Game{{ID: "g2", Status: domain.StatusUpcoming}})

	if got := len(svc.Games()); got != 2 {
		t.Fatalf("upsert must not drop earlier games, got %d", got)
	}
}

func TestReplaceGames(t *testing.T) {
	svc := newService()
	svc.UpsertGames([]domain.Game{{ID: "g1"}})
	svc.ReplaceGames([]domain.Game{{ID: "g2"}})

	if _, ok := svc.GameByID("g1"); ok {
		t.Fatalf("replace must drop the previous snapshot")
	}
}
