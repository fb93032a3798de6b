package engine

import (
	"testing"

	"github.com/fortuna/jinx/internal/nfl"
	"github.com/stretchr/testify/assert"
)

func TestTierForRecord(t *testing.T) {
	tests := []struct {
		record      string
		wantTier    int
		wantOffense int
	}{
		{"12-2-0", 1, 95},
		{"10-4-0", 1, 95},
		{"8-6-0", 2, 90},
		{"6-8-0", 3, 85},
		{"4-10-0", 4, 80},
		{"2-12-0", 5, 75},
		{"", 5, 75},
		{"bogus", 5, 75},
	}

	for _, tt := range tests {
		rating := RateTeam(nfl.Team{Record: tt.record}, nil)
		assert.Equal(t, tt.wantTier, rating.Tier, "record %q", tt.record)
		assert.Equal(t, tt.wantOffense, rating.Offense, "record %q", tt.record)
		assert.Equal(t, tt.wantOffense, rating.Defense, "record %q", tt.record)
	}
}

func TestEliteQuarterbackBoost(t *testing.T) {
	team := nfl.Team{
		Record: "8-6-0",
		QB: &nfl.QBStats{
			PassingYards:  4200, // 280/week
			PassingTDs:    30,
			Interceptions: 8, // ratio 3.75
		},
	}

	rating := RateTeam(team, nil)

	// Tier 2 base 90, +10 for the elite season, and the 30-TD year promotes
	// the team a bucket.
	assert.Equal(t, 1, rating.Tier)
	assert.Equal(t, 99, rating.Offense) // 90+10 clamped
}

func TestTurnoverProneQuarterback(t *testing.T) {
	team := nfl.Team{
		Record: "10-4-0",
		QB: &nfl.QBStats{
			PassingYards:  3000,
			PassingTDs:    12,
			Interceptions: 15, // ratio 0.8
		},
	}

	rating := RateTeam(team, nil)
	assert.Equal(t, 85, rating.Offense) // 95 - 10
	assert.Equal(t, 1, rating.Tier)
}

func TestQuarterbackOutDemotion(t *testing.T) {
	team := nfl.Team{
		Record:      "10-4-0",
		KeyInjuries: []string{"QB J. Allen (Shoulder - Out)"},
	}

	rating := RateTeam(team, nil)

	assert.Equal(t, 3, rating.Tier)      // 1 demoted by 2
	assert.Equal(t, 80, rating.Offense)  // 95 - 15
	assert.Equal(t, 88, rating.Defense)  // 95 - 7
}

func TestQuarterbackOutFromHeadline(t *testing.T) {
	news := []nfl.NewsArticle{{Headline: "Starting QB placed on IR ahead of Week 16"}}

	rating := RateTeam(nfl.Team{Record: "10-4-0"}, news)
	assert.Equal(t, 3, rating.Tier)
	assert.Equal(t, 80, rating.Offense)
}

func TestGenericInjuryPenalty(t *testing.T) {
	team := nfl.Team{
		Record:      "10-4-0",
		KeyInjuries: []string{"T. Hill (Ankle - IR)"},
	}

	rating := RateTeam(team, nil)
	assert.Equal(t, 1, rating.Tier)
	assert.Equal(t, 90, rating.Offense) // 95 - 5
}

func TestRatingBoundsAcrossLeague(t *testing.T) {
	for abbr, seeded := range nfl.Teams {
		rating := RateTeam(seeded.Team, nil)

		assert.GreaterOrEqual(t, rating.Tier, 1, abbr)
		assert.LessOrEqual(t, rating.Tier, 5, abbr)
		assert.GreaterOrEqual(t, rating.Offense, 50, abbr)
		assert.LessOrEqual(t, rating.Offense, 99, abbr)
		assert.GreaterOrEqual(t, rating.Defense, 50, abbr)
		assert.LessOrEqual(t, rating.Defense, 99, abbr)
	}
}

func TestParseWins(t *testing.T) {
	assert.Equal(t, 10, parseWins("10-4-0"))
	assert.Equal(t, 0, parseWins(""))
	assert.Equal(t, 0, parseWins("abc"))
	assert.Equal(t, 7, parseWins("7-7"))
}
