package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"prode-service/internal/domain"
)

// Store defines how standings snapshots are loaded.
type Store interface {
	LoadStandings(date string) (domain.StandingsResponse, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadStandings reads the standings snapshot for the given date
// (YYYY-MM-DD) from {basePath}/standings/{date}.json.
func (s *FSStore) LoadStandings(date string) (domain.StandingsResponse, error) {
	if s == nil {
		return domain.StandingsResponse{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return domain.StandingsResponse{}, errors.New("snapshot date required")
	}

	f, err := os.Open(StandingsSnapshotPath(s.basePath, date))
	if err != nil {
		return domain.StandingsResponse{}, err
	}
	defer f.Close()

	var payload domain.StandingsResponse
	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return domain.StandingsResponse{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}
