package engine

import (
	"strings"
	"testing"

	"github.com/fortuna/jinx/internal/nfl"
	"github.com/stretchr/testify/assert"
)

func TestNarrativeContainsAllSections(t *testing.T) {
	game := testGame("nfl-w16-kc-den", &nfl.BettingData{Spread: "DEN -7.5", Total: 41.5})
	game.Venue = "Empower Field at Mile High"
	home := RateTeam(game.HomeTeam, nil)
	away := RateTeam(game.AwayTeam, nil)
	p := Project(game, home, away, nil, nil)

	narrative := BuildNarrative(game, home, away, p, nil, nil)

	for _, section := range []string{"**The Matchup:**", "**Market Value:**", "**X-Factor:**", "**The Verdict:**"} {
		assert.Contains(t, narrative, section)
	}
	assert.Contains(t, narrative, p.Winner)
}

func TestXFactorSkipsThirdTeamHeadlines(t *testing.T) {
	game := testGame("g", nil)

	tainted := "Buffalo Bills reportedly shopping for receivers before the deadline"
	clean := "Broncos defense riding a three-game takeaway streak"

	line := xFactorLine(game, []string{tainted, clean}, nil)
	assert.Contains(t, line, clean)
	assert.NotContains(t, line, "Bills")
}

func TestXFactorFillerWhenAllHeadlinesTainted(t *testing.T) {
	game := testGame("g", nil)

	tainted := []string{"Eagles and Cowboys set for a showdown with playoff seeding on the line"}
	line := xFactorLine(game, tainted, tainted)
	assert.Equal(t, fillerHeadline, line)
}

func TestVerdictMentionsInjuries(t *testing.T) {
	game := testGame("g", &nfl.BettingData{Spread: "DEN -13.5", Total: 44.0})
	game.HomeTeam.KeyInjuries = []string{"C. Sutton (Hamstring)"}
	home := RateTeam(game.HomeTeam, nil)
	away := RateTeam(game.AwayTeam, nil)
	p := Project(game, home, away, nil, nil)

	if p.WinnerHome {
		assert.True(t, strings.HasPrefix(verdictLine(game, p), "Despite injuries to C. Sutton"))
	}
}

func TestKeyFactorsATSTrend(t *testing.T) {
	game := testGame("g", nil)

	// Home wins by 9 against a 7.5-point line: pick and cover agree.
	covering := Projection{HomeScore: 30, AwayScore: 21, WinnerHome: true, HomeSpread: 7.5}
	assert.Contains(t, KeyFactors(game, covering), "ATS Trend: Likely Cover")

	// Home wins by 3 but was laid 7.5: straight-up pick without the cover.
	trap := Projection{HomeScore: 24, AwayScore: 21, WinnerHome: true, HomeSpread: 7.5}
	assert.Contains(t, KeyFactors(game, trap), "ATS Trend: Trap Line")
}

func TestRetrospectiveGradesProjection(t *testing.T) {
	game := testGame("g", nil)
	p := Projection{Winner: "Denver Broncos", WinnerHome: true, HomeScore: 27, AwayScore: 17}

	result := nfl.GameResult{
		GameID:    "g",
		HomeScore: 31,
		AwayScore: 13,
		HomeName:  "Denver Broncos",
		HomeAbbr:  "DEN",
		AwayName:  "Kansas City Chiefs",
		AwayAbbr:  "KC",
	}

	retro := BuildRetrospective(game, p, result)
	assert.Equal(t, "Denver Broncos won 31-13, as projected.", retro.Result)
	assert.Contains(t, retro.StandoutPerformers, "DEN QB1")

	// Flipped final: the write-up owns the miss.
	result.HomeScore, result.AwayScore = 13, 31
	retro = BuildRetrospective(game, p, result)
	assert.Contains(t, retro.Result, "the model projected Denver Broncos")
}

func TestSummaryOrdersWinnerFirst(t *testing.T) {
	p := Projection{Winner: "Kansas City Chiefs", WinnerHome: false, HomeScore: 17, AwayScore: 23}
	assert.Equal(t, "Kansas City Chiefs wins 23-17", Summary(p))
}
