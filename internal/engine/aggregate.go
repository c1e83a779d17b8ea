package engine

import "prode-service/internal/domain"

// UnknownUserID buckets predictions whose record carries no userId.
// Kept for compatibility with historical data imports; new submissions
// are rejected at the HTTP boundary when the userId is missing.
const UnknownUserID = "unknown"

func userOf(p domain.Prediction) string {
	if p.UserID == "" {
		return UnknownUserID
	}
	return p.UserID
}

// Dedupe keeps at most one prediction per (userId, gameId) pair,
// last write wins by timestamp. Equal timestamps fall back to record ID
// ordering so the survivor does not depend on input order.
func Dedupe(preds []domain.Prediction) []domain.Prediction {
	type key struct {
		user, game string
	}
	kept := make(map[key]domain.Prediction, len(preds))
	order := make([]key, 0, len(preds))

	for _, p := range preds {
		k := key{userOf(p), p.GameID}
		cur, ok := kept[k]
		if !ok {
			kept[k] = p
			order = append(order, k)
			continue
		}
		if p.CreatedAt.After(cur.CreatedAt) ||
			(p.CreatedAt.Equal(cur.CreatedAt) && p.ID > cur.ID) {
			kept[k] = p
		}
	}

	out := make([]domain.Prediction, 0, len(order))
	for _, k := range order {
		out = append(out, kept[k])
	}
	return out
}

// Aggregate projects the full Game+Prediction corpus into per-player
// statistics. Every user appearing in the prediction set gets an entry,
// even with zero scoreable predictions. Predictions referencing an
// unknown gameId are silently excluded; predictions against unfinished
// games are skipped without counting as participation. The result is a
// pure function of its inputs: idempotent and independent of input
// ordering.
func Aggregate(games []domain.Game, preds []domain.Prediction) map[string]domain.PlayerStats {
	byID := make(map[string]domain.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	stats := make(map[string]domain.PlayerStats)
	weekTotals := make(map[string]map[string]int)

	for _, p := range Dedupe(preds) {
		user := userOf(p)
		if _, ok := stats[user]; !ok {
			stats[user] = domain.PlayerStats{}
		}

		game, ok := byID[p.GameID]
		if !ok {
			continue
		}
		points, scoreable := Score(p, game)
		if !scoreable {
			continue
		}

		s := stats[user]
		s.TotalPoints += points
		s.GamesParticipated++
		if points == MaxPoints {
			s.PerfectScores++
		}
		stats[user] = s

		if game.Week != "" {
			totals := weekTotals[game.Week]
			if totals == nil {
				totals = make(map[string]int)
				weekTotals[game.Week] = totals
			}
			totals[user] += points
		}
	}

	// Weekly winners: everyone matching the week's maximum gets credit,
	// ties included. Weeks with no scoreable predictions have no entry
	// here and award nothing.
	for _, totals := range weekTotals {
		best, found := 0, false
		for _, pts := range totals {
			if !found || pts > best {
				best, found = pts, true
			}
		}
		for user, pts := range totals {
			if pts == best {
				s := stats[user]
				s.WeeksWon++
				stats[user] = s
			}
		}
	}

	return stats
}

// WeekScores returns per-user totals for a single week, winners marked.
// Ordering follows the leaderboard convention: points descending, then
// display name, then userId.
func WeekScores(games []domain.Game, preds []domain.Prediction, week string) []domain.WeekScore {
	byID := make(map[string]domain.Game, len(games))
	for _, g := range games {
		if g.Week == week {
			byID[g.ID] = g
		}
	}

	names := DisplayNames(preds)
	totals := make(map[string]int)
	for _, p := range Dedupe(preds) {
		game, ok := byID[p.GameID]
		if !ok {
			continue
		}
		points, scoreable := Score(p, game)
		if !scoreable {
			continue
		}
		totals[userOf(p)] += points
	}

	best, found := 0, false
	for _, pts := range totals {
		if !found || pts > best {
			best, found = pts, true
		}
	}

	scores := make([]domain.WeekScore, 0, len(totals))
	for user, pts := range totals {
		name := names[user]
		if name == "" {
			name = user
		}
		scores = append(scores, domain.WeekScore{
			UserID:     user,
			PlayerName: name,
			Points:     pts,
			Winner:     pts == best,
		})
	}
	sortWeekScores(scores)
	return scores
}
