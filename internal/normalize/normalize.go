// Package normalize converts loosely-shaped external records into the
// canonical domain types. Legacy exports of this data carry mixed field
// capitalization (Status/status, HomeScore/homeScore) and stringly
// numbers; all of that is resolved here so the rest of the service only
// ever sees one shape.
package normalize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"prode-service/internal/domain"
)

// ErrMissingID marks a record that cannot be identified.
var ErrMissingID = errors.New("normalize: record has no id")

// Record is one loosely-keyed object as decoded from JSON.
type Record map[string]any

// Game builds a canonical Game from a loose record.
func Game(raw Record) (domain.Game, error) {
	id, _ := stringField(raw, "id", "gameId")
	if id == "" {
		return domain.Game{}, ErrMissingID
	}

	g := domain.Game{ID: id}
	g.HomeTeam, _ = stringField(raw, "homeTeam")
	g.AwayTeam, _ = stringField(raw, "awayTeam")
	g.Week, _ = stringField(raw, "week", "fecha")
	g.League, _ = stringField(raw, "league")

	status, _ := stringField(raw, "status")
	g.Status = domain.ParseStatus(status)

	var err error
	if g.HomeScore, err = intField(raw, "homeScore"); err != nil {
		return domain.Game{}, fmt.Errorf("game %s: %w", id, err)
	}
	if g.AwayScore, err = intField(raw, "awayScore"); err != nil {
		return domain.Game{}, fmt.Errorf("game %s: %w", id, err)
	}
	// A half-present result breaks the both-or-neither invariant; treat
	// it as no result rather than scoring against a partial pair.
	if (g.HomeScore == nil) != (g.AwayScore == nil) {
		g.HomeScore, g.AwayScore = nil, nil
	}

	if kickOff, ok := stringField(raw, "kickOffTime", "kickoff", "startTime"); ok {
		if t, perr := parseTime(kickOff); perr == nil {
			g.KickOff = t
		}
	}
	return g, nil
}

// Prediction builds a canonical Prediction from a loose record. A
// missing userId is preserved as-is; the aggregation layer buckets it
// under its "unknown" sentinel.
func Prediction(raw Record) (domain.Prediction, error) {
	p := domain.Prediction{}
	p.ID, _ = stringField(raw, "id")
	p.UserID, _ = stringField(raw, "userId")
	p.GameID, _ = stringField(raw, "gameId")
	if p.GameID == "" {
		return domain.Prediction{}, ErrMissingID
	}
	p.PlayerName, _ = stringField(raw, "playerName")

	var err error
	if p.Home, err = intField(raw, "predictedHomeScore", "homeScore"); err != nil {
		return domain.Prediction{}, fmt.Errorf("prediction for game %s: %w", p.GameID, err)
	}
	if p.Away, err = intField(raw, "predictedAwayScore", "awayScore"); err != nil {
		return domain.Prediction{}, fmt.Errorf("prediction for game %s: %w", p.GameID, err)
	}
	if (p.Home == nil) != (p.Away == nil) {
		p.Home, p.Away = nil, nil
	}

	if ts, ok := stringField(raw, "timestamp", "createdAt"); ok {
		if t, perr := parseTime(ts); perr == nil {
			p.CreatedAt = t
		}
	}
	return p, nil
}

func lookup(raw Record, names ...string) (any, bool) {
	for _, name := range names {
		if v, ok := raw[name]; ok {
			return v, true
		}
	}
	// Case-insensitive fallback for any other capitalization.
	for key, v := range raw {
		for _, name := range names {
			if strings.EqualFold(key, name) {
				return v, true
			}
		}
	}
	return nil, false
}

func stringField(raw Record, names ...string) (string, bool) {
	v, ok := lookup(raw, names...)
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}

// intField returns nil for absent or null values and an error for
// values that cannot be read as a non-negative integer.
func intField(raw Record, names ...string) (*int, error) {
	v, ok := lookup(raw, names...)
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return nil, fmt.Errorf("field %s: not a non-negative integer: %v", names[0], n)
		}
		val := int(n)
		return &val, nil
	case string:
		if strings.TrimSpace(n) == "" {
			return nil, nil
		}
		val, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || val < 0 {
			return nil, fmt.Errorf("field %s: not a non-negative integer: %q", names[0], n)
		}
		return &val, nil
	default:
		return nil, fmt.Errorf("field %s: unsupported type %T", names[0], v)
	}
}

func parseTime(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	// Millisecond epoch, as exported by the legacy store.
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil && ms > 0 {
		return time.UnixMilli(ms).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", raw)
}
