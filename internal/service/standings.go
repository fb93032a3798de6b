package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/fortuna/jinx/internal/nfl"
)

// GradeStandings recomputes win-loss ledgers from saved picks and recorded
// finals. Two tracks are graded independently: the engine's own scores, and
// the user's entered scores when present. A game counts only when both a pick
// and a final exist for it.
func GradeStandings(picks map[string]nfl.UserPrediction, results map[string]nfl.GameResult) nfl.Standings {
	var standings nfl.Standings

	for gameID, res := range results {
		pick, ok := picks[gameID]
		if !ok {
			continue
		}
		standings.Graded++

		actualWinner := res.HomeName
		if res.AwayScore > res.HomeScore {
			actualWinner = res.AwayName
		}

		gradeTrack(&standings.Engine, res, actualWinner, pick.PredictedWinner, pick.HomeScore, pick.AwayScore)

		if pick.UserHomeScore != "" && pick.UserAwayScore != "" {
			userWinner := pick.UserPredictedWinner
			if userWinner == "" {
				userWinner = pick.PredictedWinner
			}
			gradeTrack(&standings.User, res, actualWinner, userWinner, pick.UserHomeScore, pick.UserAwayScore)
		}
	}

	return standings
}

// gradeTrack tallies one pick against one final, straight-up and ATS.
func gradeTrack(rec *nfl.StandingsRecord, res nfl.GameResult, actualWinner, pickedWinner, homeScore, awayScore string) {
	if strings.EqualFold(pickedWinner, actualWinner) {
		rec.Wins++
	} else {
		rec.Losses++
	}

	line, ok := homeRelativeLine(res.Spread, res.HomeAbbr)
	if !ok {
		return
	}
	ph, err1 := strconv.Atoi(homeScore)
	pa, err2 := strconv.Atoi(awayScore)
	if err1 != nil || err2 != nil {
		return
	}

	actualEdge := float64(res.HomeScore-res.AwayScore) + line
	predictedEdge := float64(ph-pa) + line

	switch {
	case actualEdge == 0:
		rec.ATSPushes++
	case (actualEdge > 0) == (predictedEdge > 0):
		rec.ATSWins++
	default:
		rec.ATSLosses++
	}
}

// homeRelativeLine converts a "<favorite-abbr> <signed-points>" spread string
// into a home-relative line: positive when the home team is favored, negative
// when the away team is.
func homeRelativeLine(spread, homeAbbr string) (float64, bool) {
	parts := strings.Fields(spread)
	if len(parts) < 2 {
		return 0, false
	}
	points, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		return 0, false
	}

	if strings.EqualFold(parts[0], homeAbbr) {
		return math.Abs(points), true
	}
	return -math.Abs(points), true
}
