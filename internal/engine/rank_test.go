package engine

import (
	"testing"
	"time"

	"prode-service/internal/domain"
)

func namedPred(user, name string, at time.Time) domain.Prediction {
	return domain.Prediction{
		ID:         user + "-" + at.String(),
		UserID:     user,
		GameID:     "g1",
		PlayerName: name,
		CreatedAt:  at,
	}
}

func TestRankTieBreakChain(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	stats := map[string]domain.PlayerStats{
		"x": {TotalPoints: 20, WeeksWon: 2, PerfectScores: 1},
		"y": {TotalPoints: 20, WeeksWon: 3, PerfectScores: 0},
		"z": {TotalPoints: 25, WeeksWon: 0, PerfectScores: 0},
	}
	preds := []domain.Prediction{
		namedPred("x", "Xavi", base),
		namedPred("y", "Yamila", base),
		namedPred("z", "Zoe", base),
	}

	ranked := Rank(stats, preds)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(ranked))
	}
	// z leads on points; y beats x on weeks won despite equal points.
	if ranked[0].UserID != "z" || ranked[1].UserID != "y" || ranked[2].UserID != "x" {
		t.Fatalf("unexpected order: %s, %s, %s", ranked[0].UserID, ranked[1].UserID, ranked[2].UserID)
	}
	for i, row := range ranked {
		if row.Rank != i+1 {
			t.Fatalf("expected rank %d, got %d", i+1, row.Rank)
		}
	}
}

func TestRankPerfectScoresBreakTies(t *testing.T) {
	stats := map[string]domain.PlayerStats{
		"a": {TotalPoints: 15, WeeksWon: 1, PerfectScores: 0},
		"b": {TotalPoints: 15, WeeksWon: 1, PerfectScores: 2},
	}

	ranked := Rank(stats, nil)
	if ranked[0].UserID != "b" {
		t.Fatalf("expected b first on perfect scores, got %s", ranked[0].UserID)
	}
}

func TestRankNameTieBreakUsesLatestName(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	stats := map[string]domain.PlayerStats{
		"u1": {TotalPoints: 10},
		"u2": {TotalPoints: 10},
	}
	preds := []domain.Prediction{
		namedPred("u1", "Zulema", base),
		namedPred("u1", "Ana", base.Add(time.Hour)), // renamed later
		namedPred("u2", "Bruno", base),
	}

	ranked := Rank(stats, preds)
	if ranked[0].PlayerName != "Ana" {
		t.Fatalf("expected latest name snapshot to win, got %q", ranked[0].PlayerName)
	}
	if ranked[0].UserID != "u1" || ranked[1].UserID != "u2" {
		t.Fatalf("unexpected name-based order: %s, %s", ranked[0].UserID, ranked[1].UserID)
	}
}

func TestRankFallsBackToUserID(t *testing.T) {
	stats := map[string]domain.PlayerStats{
		"carla": {TotalPoints: 5},
	}

	ranked := Rank(stats, nil)
	if ranked[0].PlayerName != "carla" {
		t.Fatalf("expected userId fallback as display name, got %q", ranked[0].PlayerName)
	}
}

func TestRankIdenticalNamesDeterministic(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	stats := map[string]domain.PlayerStats{
		"u9": {TotalPoints: 10},
		"u1": {TotalPoints: 10},
	}
	preds := []domain.Prediction{
		namedPred("u9", "Lu", base),
		namedPred("u1", "Lu", base),
	}

	first := Rank(stats, preds)
	for i := 0; i < 5; i++ {
		again := Rank(stats, preds)
		if first[0].UserID != again[0].UserID || first[1].UserID != again[1].UserID {
			t.Fatalf("identical-name ordering not deterministic")
		}
	}
	if first[0].UserID != "u1" {
		t.Fatalf("expected userId order for identical names, got %s first", first[0].UserID)
	}
}

func TestRankAccentedNamesSortWithCollation(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	stats := map[string]domain.PlayerStats{
		"u1": {TotalPoints: 10},
		"u2": {TotalPoints: 10},
	}
	preds := []domain.Prediction{
		namedPred("u1", "Ángel", base),
		namedPred("u2", "Bruno", base),
	}

	ranked := Rank(stats, preds)
	// Byte-wise, "Ángel" sorts after "Bruno"; collation puts it first.
	if ranked[0].PlayerName != "Ángel" {
		t.Fatalf("expected collated order, got %q first", ranked[0].PlayerName)
	}
}
