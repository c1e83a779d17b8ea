package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"prode-service/internal/domain"
)

// Player names are compared with Spanish collation rules so accented
// names sort where players expect them on the board.
func newCollator() *collate.Collator {
	return collate.New(language.Spanish)
}

// DisplayNames resolves each user's current display name from their
// most recent prediction (names are snapshots; the latest one wins).
// Users without a usable name are absent from the result.
func DisplayNames(preds []domain.Prediction) map[string]string {
	latest := make(map[string]domain.Prediction)
	for _, p := range preds {
		user := userOf(p)
		cur, ok := latest[user]
		if !ok || p.CreatedAt.After(cur.CreatedAt) ||
			(p.CreatedAt.Equal(cur.CreatedAt) && p.ID > cur.ID) {
			latest[user] = p
		}
	}

	names := make(map[string]string, len(latest))
	for user, p := range latest {
		if p.PlayerName != "" {
			names[user] = p.PlayerName
		}
	}
	return names
}

// Rank produces the total leaderboard order over the aggregated stats.
// Tie-break chain: total points, weeks won, perfect scores (all
// descending), then display name ascending. Users with identical names
// keep a deterministic relative order by userId.
func Rank(stats map[string]domain.PlayerStats, preds []domain.Prediction) []domain.Standing {
	names := DisplayNames(preds)

	users := make([]string, 0, len(stats))
	for user := range stats {
		users = append(users, user)
	}
	sort.Strings(users)

	rows := make([]domain.Standing, 0, len(users))
	for _, user := range users {
		name := names[user]
		if name == "" {
			name = user
		}
		rows = append(rows, domain.Standing{
			UserID:      user,
			PlayerName:  name,
			PlayerStats: stats[user],
		})
	}

	coll := newCollator()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.WeeksWon != b.WeeksWon {
			return a.WeeksWon > b.WeeksWon
		}
		if a.PerfectScores != b.PerfectScores {
			return a.PerfectScores > b.PerfectScores
		}
		if c := coll.CompareString(a.PlayerName, b.PlayerName); c != 0 {
			return c < 0
		}
		// Identical names: keep the userId order established above.
		return false
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func sortWeekScores(scores []domain.WeekScore) {
	coll := newCollator()
	sort.SliceStable(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if c := coll.CompareString(a.PlayerName, b.PlayerName); c != 0 {
			return c < 0
		}
		return a.UserID < b.UserID
	})
}
