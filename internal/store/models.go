package store

import (
	"database/sql"
	"time"
)

// Prediction is a saved score pick for a single game. The engine columns are
// always populated; the user columns stay NULL until the user overrides the
// call with their own pick.
type Prediction struct {
	UserID              string         `json:"user_id" db:"user_id"`
	GameID              string         `json:"game_id" db:"game_id"`
	HomeScore           string         `json:"home_score" db:"home_score"`
	AwayScore           string         `json:"away_score" db:"away_score"`
	PredictedWinner     string         `json:"predicted_winner" db:"predicted_winner"`
	UserHomeScore       sql.NullString `json:"user_home_score,omitempty" db:"user_home_score"`
	UserAwayScore       sql.NullString `json:"user_away_score,omitempty" db:"user_away_score"`
	UserPredictedWinner sql.NullString `json:"user_predicted_winner,omitempty" db:"user_predicted_winner"`
	CreatedAt           time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" db:"updated_at"`
}

// GameResult is the final score snapshot captured the first time a game is
// seen in a post state. Rows are write-once: later polls never overwrite them.
type GameResult struct {
	GameID    string         `json:"game_id" db:"game_id"`
	HomeAbbr  string         `json:"home_abbr" db:"home_abbr"`
	AwayAbbr  string         `json:"away_abbr" db:"away_abbr"`
	HomeName  string         `json:"home_name" db:"home_name"`
	AwayName  string         `json:"away_name" db:"away_name"`
	HomeScore int            `json:"home_score" db:"home_score"`
	AwayScore int            `json:"away_score" db:"away_score"`
	Spread    sql.NullString `json:"spread,omitempty" db:"spread"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
