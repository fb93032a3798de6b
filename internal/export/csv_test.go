package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/fortuna/jinx/internal/nfl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRowPerScheduledGame(t *testing.T) {
	schedule := nfl.Schedule{Games: nfl.Week16Schedule}
	picks := map[string]nfl.UserPrediction{
		nfl.Week16Schedule[0].ID: {
			GameID:          nfl.Week16Schedule[0].ID,
			HomeScore:       "27",
			AwayScore:       "17",
			PredictedWinner: nfl.Week16Schedule[0].HomeTeam.Name,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePredictions(&buf, schedule, picks))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header plus one row per game, predicted or not.
	assert.Len(t, rows, len(nfl.Week16Schedule)+1)
	for _, row := range rows {
		assert.Len(t, row, len(header))
	}
}

func TestExportFillsMissingPredictionsWithNA(t *testing.T) {
	game := nfl.Week16Schedule[0]
	schedule := nfl.Schedule{Games: []nfl.Game{game}}

	var buf bytes.Buffer
	require.NoError(t, WritePredictions(&buf, schedule, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, "N/A", row[5]) // predicted winner
	assert.Equal(t, "N/A", row[6]) // predicted away score
	assert.Equal(t, "N/A", row[7]) // predicted home score
}

func TestExportPrefersUserScores(t *testing.T) {
	game := nfl.Week16Schedule[0]
	schedule := nfl.Schedule{Games: []nfl.Game{game}}
	picks := map[string]nfl.UserPrediction{
		game.ID: {
			GameID:              game.ID,
			HomeScore:           "27",
			AwayScore:           "17",
			PredictedWinner:     game.HomeTeam.Name,
			UserHomeScore:       "31",
			UserAwayScore:       "10",
			UserPredictedWinner: game.HomeTeam.Name,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePredictions(&buf, schedule, picks))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	row := rows[1]
	assert.Equal(t, "10", row[6])
	assert.Equal(t, "31", row[7])
}

func TestExportIncludesMarketColumns(t *testing.T) {
	game := nfl.Week16Schedule[0]
	require.NotNil(t, game.Betting)

	var buf bytes.Buffer
	require.NoError(t, WritePredictions(&buf, nfl.Schedule{Games: []nfl.Game{game}}, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	row := rows[1]
	assert.Equal(t, game.Betting.Spread, row[8])
	assert.NotEqual(t, "N/A", row[9])
}
