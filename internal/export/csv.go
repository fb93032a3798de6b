// Package export renders the prediction sheet as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fortuna/jinx/internal/nfl"
)

const missing = "N/A"

var header = []string{
	"Week", "Date", "Matchup", "Away Team", "Home Team",
	"Predicted Winner", "Predicted Away Score", "Predicted Home Score",
	"Spread", "Total",
}

// WritePredictions writes one row per scheduled game. Games without a saved
// pick still get a row, with N/A in the prediction columns. The user's own
// scores win over the engine's when both were saved.
func WritePredictions(w io.Writer, schedule nfl.Schedule, picks map[string]nfl.UserPrediction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, game := range schedule.Games {
		if err := cw.Write(row(game, picks)); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", game.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func row(game nfl.Game, picks map[string]nfl.UserPrediction) []string {
	winner, awayScore, homeScore := missing, missing, missing
	if pick, ok := picks[game.ID]; ok {
		winner, awayScore, homeScore = pick.PredictedWinner, pick.AwayScore, pick.HomeScore
		if pick.UserHomeScore != "" && pick.UserAwayScore != "" {
			awayScore, homeScore = pick.UserAwayScore, pick.UserHomeScore
			if pick.UserPredictedWinner != "" {
				winner = pick.UserPredictedWinner
			}
		}
	}

	spread, total := missing, missing
	if game.Betting != nil {
		if game.Betting.Spread != "" {
			spread = game.Betting.Spread
		}
		if game.Betting.Total > 0 {
			total = fmt.Sprintf("%.1f", game.Betting.Total)
		}
	}

	matchup := fmt.Sprintf("%s @ %s", game.AwayTeam.Abbreviation, game.HomeTeam.Abbreviation)

	return []string{
		fmt.Sprintf("%d", game.Week),
		game.Date,
		matchup,
		game.AwayTeam.Name,
		game.HomeTeam.Name,
		winner,
		awayScore,
		homeScore,
		spread,
		total,
	}
}
