package engine

import "prode-service/internal/domain"

// Scoring weights. A prediction earns points for each condition it
// meets independently; the maximum is an exact score match.
const (
	outcomePoints   = 5
	exactHomePoints = 2
	exactAwayPoints = 2
	goalDiffPoints  = 1

	// MaxPoints is awarded only for an exact score match.
	MaxPoints = outcomePoints + exactHomePoints + exactAwayPoints + goalDiffPoints
)

type outcome int

const (
	homeWin outcome = iota
	awayWin
	draw
)

func outcomeOf(home, away int) outcome {
	switch {
	case home > away:
		return homeWin
	case home < away:
		return awayWin
	default:
		return draw
	}
}

// Score computes the point value of one prediction against its game.
// The second result is false when the game is not yet scoreable (not
// finished, or missing a final score); callers must skip such
// predictions entirely. A scoreable game with an empty prediction
// yields (0, true): the player participated and earned nothing.
func Score(pred domain.Prediction, game domain.Game) (int, bool) {
	if game.Status != domain.StatusFinished || !game.HasResult() {
		return 0, false
	}
	if !pred.HasScores() {
		return 0, true
	}

	ph, pa := *pred.Home, *pred.Away
	ah, aa := *game.HomeScore, *game.AwayScore

	points := 0
	if outcomeOf(ph, pa) == outcomeOf(ah, aa) {
		points += outcomePoints
	}
	if ph == ah {
		points += exactHomePoints
	}
	if pa == aa {
		points += exactAwayPoints
	}
	if abs(ph-pa) == abs(ah-aa) {
		points += goalDiffPoints
	}
	return points, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
