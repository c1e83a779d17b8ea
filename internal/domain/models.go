package domain

import (
	"strings"
	"time"
)

// GameStatus mirrors the lifecycle states of a match.
type GameStatus string

const (
	StatusUpcoming GameStatus = "UPCOMING"
	StatusLive     GameStatus = "LIVE"
	StatusFinished GameStatus = "FINISHED"
)

// ParseStatus maps a raw status string (any casing) onto a GameStatus.
// Unknown values fall back to UPCOMING.
func ParseStatus(raw string) GameStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "FINISHED", "FINAL", "FULL_TIME", "FT":
		return StatusFinished
	case "LIVE", "IN_PLAY", "IN PLAY", "PAUSED", "HALFTIME":
		return StatusLive
	default:
		return StatusUpcoming
	}
}

// Game is the canonical match shape used across the service.
// HomeScore/AwayScore are nil until a result is known; the invariant is
// both present or both absent.
type Game struct {
	ID        string     `json:"id"`
	HomeTeam  string     `json:"homeTeam"`
	AwayTeam  string     `json:"awayTeam"`
	Status    GameStatus `json:"status"`
	HomeScore *int       `json:"homeScore,omitempty"`
	AwayScore *int       `json:"awayScore,omitempty"`
	KickOff   time.Time  `json:"kickOffTime"`
	Week      string     `json:"week,omitempty"`
	League    string     `json:"league,omitempty"`
}

// HasResult reports whether both final scores are present.
func (g Game) HasResult() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Prediction is one user's score guess for one game. Home/Away are nil
// when the user saved an empty prediction. PlayerName is a display-name
// snapshot taken at submission time; UserID is the stable identity.
type Prediction struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	GameID     string    `json:"gameId"`
	Home       *int      `json:"predictedHomeScore,omitempty"`
	Away       *int      `json:"predictedAwayScore,omitempty"`
	PlayerName string    `json:"playerName,omitempty"`
	CreatedAt  time.Time `json:"timestamp"`
}

// HasScores reports whether the user actually entered a score pair.
func (p Prediction) HasScores() bool {
	return p.Home != nil && p.Away != nil
}

// PlayerStats is the derived per-player aggregate. It is recomputed on
// demand from the full Game+Prediction corpus and never persisted as an
// independent record.
type PlayerStats struct {
	TotalPoints       int `json:"totalPoints"`
	GamesParticipated int `json:"gamesParticipated"`
	PerfectScores     int `json:"perfectScoresCount"`
	WeeksWon          int `json:"fechasWonCount"`
}

// Standing is one row of the ranked leaderboard.
type Standing struct {
	Rank       int    `json:"rank"`
	UserID     string `json:"userId"`
	PlayerName string `json:"playerName"`
	PlayerStats
}

// StandingsResponse is the payload returned by /standings.
type StandingsResponse struct {
	Date      string     `json:"date"`
	Standings []Standing `json:"standings"`
}

// WeekScore is one user's accumulated total for a single week.
type WeekScore struct {
	UserID     string `json:"userId"`
	PlayerName string `json:"playerName"`
	Points     int    `json:"points"`
	Winner     bool   `json:"winner"`
}

// WeekResponse is the payload returned by /standings/weeks/{week}.
type WeekResponse struct {
	Week   string      `json:"week"`
	Scores []WeekScore `json:"scores"`
}

// GamesResponse is the payload returned by /games.
type GamesResponse struct {
	Week  string `json:"week,omitempty"`
	Games []Game `json:"games"`
}

// PredictionsResponse is the payload returned by /predictions.
type PredictionsResponse struct {
	UserID      string       `json:"userId,omitempty"`
	Predictions []Prediction `json:"predictions"`
}

// IntPtr is a small helper for building optional score fields.
func IntPtr(v int) *int { return &v }
