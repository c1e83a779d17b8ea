package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"prode-service/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)
}

func sampleStandings(date string) domain.StandingsResponse {
	return domain.StandingsResponse{
		Date: date,
		Standings: []domain.Standing{
			{Rank: 1, UserID: "ana", PlayerName: "Ana", PlayerStats: domain.PlayerStats{TotalPoints: 10}},
		},
	}
}

func TestWriteStandingsRoundTrip(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 60)
	w.now = fixedNow

	if err := w.WriteStandings("2025-08-30", sampleStandings("2025-08-30")); err != nil {
		t.Fatalf("WriteStandings: %v", err)
	}

	loaded, err := NewFSStore(base).LoadStandings("2025-08-30")
	if err != nil {
		t.Fatalf("LoadStandings: %v", err)
	}
	if loaded.Date != "2025-08-30" {
		t.Fatalf("unexpected date: %q", loaded.Date)
	}
	if len(loaded.Standings) != 1 || loaded.Standings[0].UserID != "ana" {
		t.Fatalf("unexpected standings: %+v", loaded.Standings)
	}
}

func TestWriteStandingsUpdatesManifest(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 60)
	w.now = fixedNow

	if err := w.WriteStandings("2025-08-29", sampleStandings("2025-08-29")); err != nil {
		t.Fatalf("WriteStandings: %v", err)
	}
	if err := w.WriteStandings("2025-08-30", sampleStandings("2025-08-30")); err != nil {
		t.Fatalf("WriteStandings: %v", err)
	}

	m := readTestManifest(t, base)
	if len(m.Standings.Dates) != 2 {
		t.Fatalf("expected 2 manifest dates, got %+v", m.Standings.Dates)
	}
	if m.Standings.Dates[0] != "2025-08-29" || m.Standings.Dates[1] != "2025-08-30" {
		t.Fatalf("manifest dates must be sorted: %+v", m.Standings.Dates)
	}
	if m.Retention.StandingsDays != 60 {
		t.Fatalf("unexpected retention: %d", m.Retention.StandingsDays)
	}
}

func TestWriteStandingsPrunesOldSnapshots(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 7)
	w.now = fixedNow

	old := "2025-08-01" // beyond the 7 day window
	if err := w.WriteStandings(old, sampleStandings(old)); err != nil {
		t.Fatalf("WriteStandings: %v", err)
	}
	if err := w.WriteStandings("2025-08-30", sampleStandings("2025-08-30")); err != nil {
		t.Fatalf("WriteStandings: %v", err)
	}

	if _, err := os.Stat(StandingsSnapshotPath(base, old)); !os.IsNotExist(err) {
		t.Fatalf("expected old snapshot to be pruned, stat err: %v", err)
	}

	m := readTestManifest(t, base)
	if len(m.Standings.Dates) != 1 || m.Standings.Dates[0] != "2025-08-30" {
		t.Fatalf("unexpected manifest dates: %+v", m.Standings.Dates)
	}
}

func TestWriteStandingsSkipsIdenticalPayload(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 60)
	w.now = fixedNow

	if err := w.WriteStandings("2025-08-30", sampleStandings("2025-08-30")); err != nil {
		t.Fatalf("WriteStandings: %v", err)
	}
	target := StandingsSnapshotPath(base, "2025-08-30")
	before, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if err := w.WriteStandings("2025-08-30", sampleStandings("2025-08-30")); err != nil {
		t.Fatalf("WriteStandings: %v", err)
	}
	after, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatalf("identical payload must not rewrite the file")
	}
}

func TestWriteStandingsRequiresDate(t *testing.T) {
	w := NewWriter(t.TempDir(), 60)
	if err := w.WriteStandings("", sampleStandings("")); err == nil {
		t.Fatalf("expected error for empty date")
	}
}

func TestLoadStandingsMissing(t *testing.T) {
	s := NewFSStore(t.TempDir())
	if _, err := s.LoadStandings("2025-01-01"); err == nil {
		t.Fatalf("expected error for missing snapshot")
	}
}

func TestLoadStandingsBackfillsDate(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "standings")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := []byte(`{"standings": []}`)
	if err := os.WriteFile(filepath.Join(dir, "2025-08-30.json"), payload, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := NewFSStore(base).LoadStandings("2025-08-30")
	if err != nil {
		t.Fatalf("LoadStandings: %v", err)
	}
	if loaded.Date != "2025-08-30" {
		t.Fatalf("expected backfilled date, got %q", loaded.Date)
	}
}

func readTestManifest(t *testing.T, base string) Manifest {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(base, "manifest.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	return m
}
