package espn

import (
	"encoding/json"
	"testing"

	"github.com/fortuna/jinx/internal/nfl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreboardFixture = `{
	"season": {"year": 2025},
	"week": {"number": 16},
	"events": [
		{
			"id": "401547601",
			"date": "2025-12-21T18:00Z",
			"status": {
				"type": {"state": "in"},
				"displayClock": "10:35",
				"period": 4
			},
			"competitions": [
				{
					"venue": {"fullName": "Arrowhead Stadium"},
					"competitors": [
						{
							"homeAway": "home",
							"score": "24",
							"team": {
								"id": "12",
								"displayName": "Kansas City Chiefs",
								"abbreviation": "KC",
								"logo": "https://a.espncdn.com/i/teamlogos/nfl/500/kc.png",
								"color": "E31837"
							},
							"records": [
								{"name": "overall", "summary": "6-8-0"}
							],
							"leaders": [
								{
									"name": "passingYards",
									"leaders": [
										{
											"displayValue": "3112 YDS, 24 TD, 8 INT",
											"athlete": {"displayName": "G. Minshew"}
										}
									]
								}
							]
						},
						{
							"homeAway": "away",
							"score": "17",
							"team": {
								"id": "7",
								"displayName": "Denver Broncos",
								"abbreviation": "DEN"
							},
							"records": [
								{"name": "overall", "summary": "12-2-0"}
							]
						}
					],
					"odds": [
						{"details": "DEN -7.5", "overUnder": 41.5}
					]
				}
			]
		},
		{
			"id": "broken-event"
		}
	]
}`

func parseFixture(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestParseScoreboard(t *testing.T) {
	schedule, err := ParseScoreboard(parseFixture(t, scoreboardFixture))
	require.NoError(t, err)

	assert.Equal(t, 2025, schedule.Meta.Season)
	assert.Equal(t, 16, schedule.Meta.Week)
	assert.Equal(t, "ESPN_V2", schedule.Meta.Source)

	// The malformed second event is skipped, not fatal.
	require.Len(t, schedule.Games, 1)
	game := schedule.Games[0]

	assert.Equal(t, "401547601", game.ID)
	assert.Equal(t, 16, game.Week)
	assert.Equal(t, "Arrowhead Stadium", game.Venue)
	assert.Equal(t, nfl.GameIn, game.Status)
	assert.Equal(t, "10:35 4th", game.Clock)

	assert.Equal(t, "Kansas City Chiefs", game.HomeTeam.Name)
	assert.Equal(t, "KC", game.HomeTeam.Abbreviation)
	assert.Equal(t, "6-8-0", game.HomeTeam.Record)
	require.NotNil(t, game.HomeTeam.Score)
	assert.Equal(t, 24, *game.HomeTeam.Score)

	assert.Equal(t, "DEN", game.AwayTeam.Abbreviation)
	require.NotNil(t, game.AwayTeam.Score)
	assert.Equal(t, 17, *game.AwayTeam.Score)

	require.NotNil(t, game.Betting)
	assert.Equal(t, "DEN -7.5", game.Betting.Spread)
	assert.Equal(t, 41.5, game.Betting.Total)
}

func TestParseScoreboardQBStats(t *testing.T) {
	schedule, err := ParseScoreboard(parseFixture(t, scoreboardFixture))
	require.NoError(t, err)
	require.Len(t, schedule.Games, 1)

	qb := schedule.Games[0].HomeTeam.QB
	require.NotNil(t, qb)
	assert.Equal(t, "G. Minshew", qb.Name)
	assert.Equal(t, 3112.0, qb.PassingYards)
	assert.Equal(t, 24, qb.PassingTDs)
	assert.Equal(t, 8, qb.Interceptions)
}

func TestParseScoreboardEnrichesFromDataset(t *testing.T) {
	schedule, err := ParseScoreboard(parseFixture(t, scoreboardFixture))
	require.NoError(t, err)
	require.Len(t, schedule.Games, 1)

	// Standing, status, and injury context come from the calibrated
	// dataset, not the feed.
	home := schedule.Games[0].HomeTeam
	ref, ok := nfl.TeamByID("KC")
	require.True(t, ok)
	assert.Equal(t, ref.Standing, home.Standing)
	assert.Equal(t, ref.Status, home.Status)
	assert.Equal(t, ref.KeyInjuries, home.KeyInjuries)
}

func TestParseScoreboardEmptyEvents(t *testing.T) {
	schedule, err := ParseScoreboard(parseFixture(t, `{"season": {"year": 2025}, "week": {"number": 17}}`))
	require.NoError(t, err)
	assert.Empty(t, schedule.Games)
	assert.Equal(t, 17, schedule.Meta.Week)
}

func TestParseNews(t *testing.T) {
	fixture := `{
		"articles": [
			{
				"headline": "Broncos clinch the division",
				"description": "Denver locked up the AFC West on Sunday.",
				"published": "2025-12-21T22:10:00Z",
				"categories": [
					{"type": "team", "team": {"abbreviation": "den"}},
					{"type": "topic", "description": "NFL"}
				]
			},
			{"description": "headline missing, dropped"}
		]
	}`

	articles := ParseNews(parseFixture(t, fixture))
	require.Len(t, articles, 1)
	assert.Equal(t, "Broncos clinch the division", articles[0].Headline)
	assert.Equal(t, []string{"DEN"}, articles[0].Teams)
	assert.False(t, articles[0].Published.IsZero())
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, nfl.GamePre, normalizeStatus("pre"))
	assert.Equal(t, nfl.GameIn, normalizeStatus("in"))
	assert.Equal(t, nfl.GamePost, normalizeStatus("post"))
	assert.Equal(t, nfl.GamePre, normalizeStatus("halftime-ish"))
}
