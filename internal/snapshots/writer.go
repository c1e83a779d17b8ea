package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"prode-service/internal/domain"
	"prode-service/internal/timeutil"
)

// Writer persists standings snapshots and a manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling
// window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 60
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteStandings writes the standings snapshot for the given date
// (YYYY-MM-DD), updates the manifest and prunes snapshots that fell out
// of the retention window. Rank order already encodes the sort, so the
// payload is written as-is; unchanged payloads skip the rewrite.
func (w *Writer) WriteStandings(date string, snapshot domain.StandingsResponse) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if date == "" {
		return fmt.Errorf("date required")
	}
	if snapshot.Date == "" {
		snapshot.Date = date
	}

	target := StandingsSnapshotPath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(date)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(date)
}

func (w *Writer) updateManifest(date string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}
	pruned, err := w.pruneOldSnapshots(dates)
	if err != nil {
		return err
	}

	m.Standings.Dates = pruned
	m.Standings.LastRefreshed = w.now().UTC()
	m.Retention.StandingsDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

func (w *Writer) listDates() ([]string, error) {
	dir := filepath.Join(w.basePath, "standings")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		date := strings.TrimSuffix(name, ".json")
		if _, err := timeutil.ParseDate(date); err == nil {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(dates []string) ([]string, error) {
	cutoff := w.now().UTC().AddDate(0, 0, -w.retentionDays)

	kept := make([]string, 0, len(dates))
	for _, date := range dates {
		parsed, err := timeutil.ParseDate(date)
		if err != nil {
			continue
		}
		if parsed.Before(cutoff) {
			if err := os.Remove(StandingsSnapshotPath(w.basePath, date)); err != nil && !os.IsNotExist(err) {
				return nil, err
			}
			continue
		}
		kept = append(kept, date)
	}
	sort.Strings(kept)
	return kept, nil
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
