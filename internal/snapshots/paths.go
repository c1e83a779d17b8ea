package snapshots

import (
	"fmt"
	"path/filepath"
)

// StandingsSnapshotPath builds the path to a standings snapshot for a
// given date.
func StandingsSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "standings", fmt.Sprintf("%s.json", date))
}
