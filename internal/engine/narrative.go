package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/fortuna/jinx/internal/nfl"
)

// Narrative assembly is rule-based templating over the projection's numbers.
// There is no model call anywhere in here; the product framing is flavor.

const fillerHeadline = "Both locker rooms keeping quiet ahead of kickoff. No notable news on the wire."

// BuildNarrative renders the full prose breakdown for one matchup.
func BuildNarrative(game nfl.Game, home, away DynamicRating, p Projection, homeHeadlines, awayHeadlines []string) string {
	var b strings.Builder

	b.WriteString(introLine(game, p))
	b.WriteString("\n\n")

	b.WriteString("**The Matchup:** ")
	b.WriteString(duelLine(game, home, away))
	b.WriteString(" ")
	b.WriteString(unitLine(game, home, away, p))
	b.WriteString("\n\n")

	b.WriteString("**Market Value:** ")
	b.WriteString(marketLine(game, p))
	b.WriteString("\n\n")

	b.WriteString("**X-Factor:** ")
	b.WriteString(xFactorLine(game, homeHeadlines, awayHeadlines))
	b.WriteString("\n\n")

	b.WriteString("**The Verdict:** ")
	b.WriteString(verdictLine(game, p))

	return b.String()
}

// introLine sets the stakes from the margin and the playoff picture.
func introLine(game nfl.Game, p Projection) string {
	margin := p.Margin
	switch {
	case margin <= 3:
		return fmt.Sprintf("Expect a nail-biter at %s. This one comes down to the final possession.", game.Venue)
	case margin > 14:
		return fmt.Sprintf("The models are predicting a lopsided affair. The %s have too much firepower.", p.Winner)
	}

	if game.HomeTeam.Status == nfl.StatusEliminated && game.AwayTeam.Status == nfl.StatusEliminated {
		return fmt.Sprintf("Draft positioning is the real stake at %s, but the %s still project to control this one.",
			game.Venue, p.Winner)
	}
	if game.HomeTeam.Status == nfl.StatusBubble || game.AwayTeam.Status == nfl.StatusBubble {
		return fmt.Sprintf("Playoff math hangs over Week %d at %s, and the %s look ready to seize it.",
			game.Week, game.Venue, p.Winner)
	}
	return fmt.Sprintf("In a Week %d clash at %s, the %s look to assert dominance.", game.Week, game.Venue, p.Winner)
}

// duelLine covers the quarterback/offense duel in terms of the rating gap.
func duelLine(game nfl.Game, home, away DynamicRating) string {
	gap := home.Offense - away.Offense
	switch {
	case gap >= 10:
		return fmt.Sprintf("%s bring the clearly superior attack (%d offense vs %d).",
			game.HomeTeam.Name, home.Offense, away.Offense)
	case gap <= -10:
		return fmt.Sprintf("%s bring the clearly superior attack (%d offense vs %d).",
			game.AwayTeam.Name, away.Offense, home.Offense)
	default:
		return fmt.Sprintf("The offenses grade nearly even (%d vs %d), so the duel under center decides the tempo.",
			home.Offense, away.Offense)
	}
}

// unitLine covers the offense-on-defense cross matchups.
func unitLine(game nfl.Game, home, away DynamicRating, p Projection) string {
	homeEdge := home.Offense - away.Defense
	awayEdge := away.Offense - home.Defense

	if homeEdge > awayEdge+8 {
		return fmt.Sprintf("%s's offense against this %s defense is the leverage point (%d%% home offensive leverage).",
			game.HomeTeam.Abbreviation, game.AwayTeam.Abbreviation, p.Leverage.Offense)
	}
	if awayEdge > homeEdge+8 {
		return fmt.Sprintf("%s's offense against this %s defense is the leverage point (%d%% home offensive leverage).",
			game.AwayTeam.Abbreviation, game.HomeTeam.Abbreviation, p.Leverage.Offense)
	}
	return "Neither unit matchup offers a decisive edge; special teams and field position loom larger than usual."
}

// marketLine compares the book's number to the projection.
func marketLine(game nfl.Game, p Projection) string {
	if game.Betting == nil {
		return "No line posted for this one. The model is flying without a market anchor."
	}

	projectedHomeMargin := float64(p.HomeScore - p.AwayScore)
	edge := projectedHomeMargin - p.HomeSpread
	switch {
	case math.Abs(edge) < 1.5:
		return fmt.Sprintf("Vegas set the line at %s and the model agrees almost to the point. No value either way.",
			game.Betting.Spread)
	case edge > 0:
		return fmt.Sprintf("Vegas set the line at %s, but the model projects a %d-point home margin. Value sits with %s.",
			game.Betting.Spread, p.HomeScore-p.AwayScore, game.HomeTeam.Abbreviation)
	default:
		return fmt.Sprintf("Vegas set the line at %s, but the model leans the other way. Value sits with %s.",
			game.Betting.Spread, game.AwayTeam.Abbreviation)
	}
}

// xFactorLine surfaces the most relevant headline for each side, guarded so
// a stray wire story about a third team never leaks into the writeup.
func xFactorLine(game nfl.Game, homeHeadlines, awayHeadlines []string) string {
	homeLine := firstCleanHeadline(homeHeadlines, game.HomeTeam, game.AwayTeam)
	awayLine := firstCleanHeadline(awayHeadlines, game.HomeTeam, game.AwayTeam)

	if homeLine == "" && awayLine == "" {
		return fillerHeadline
	}
	if awayLine == "" {
		return fmt.Sprintf("[%s] %s", game.HomeTeam.Abbreviation, homeLine)
	}
	if homeLine == "" {
		return fmt.Sprintf("[%s] %s", game.AwayTeam.Abbreviation, awayLine)
	}
	return fmt.Sprintf("[%s] %s Meanwhile, %s is dealing with: \"%s\"",
		game.HomeTeam.Abbreviation, homeLine, game.AwayTeam.Abbreviation, awayLine)
}

func firstCleanHeadline(headlines []string, home, away nfl.Team) string {
	for _, h := range headlines {
		if !nfl.MentionsThirdTeam(h, home.Abbreviation, away.Abbreviation) {
			return h
		}
	}
	return ""
}

// verdictLine closes with the pick.
func verdictLine(game nfl.Game, p Projection) string {
	injuryClause := ""
	if p.WinnerHome && len(game.HomeTeam.KeyInjuries) > 0 {
		injuryClause = fmt.Sprintf("Despite injuries to %s, ", game.HomeTeam.KeyInjuries[0])
	} else if !p.WinnerHome && len(game.AwayTeam.KeyInjuries) > 0 {
		injuryClause = fmt.Sprintf("Despite injuries to %s, ", game.AwayTeam.KeyInjuries[0])
	}

	winScore, loseScore := p.HomeScore, p.AwayScore
	if !p.WinnerHome {
		winScore, loseScore = p.AwayScore, p.HomeScore
	}
	return fmt.Sprintf("%sthe %s prevail %d-%d (%d%% confidence).",
		injuryClause, p.Winner, winScore, loseScore, p.Confidence)
}

// KeyFactors lists the categorical drivers shown on the analysis card.
func KeyFactors(game nfl.Game, p Projection) []string {
	atsTrend := "Trap Line"
	homeCovers := float64(p.HomeScore-p.AwayScore) > p.HomeSpread
	if p.WinnerHome == homeCovers {
		atsTrend = "Likely Cover"
	}

	factors := []string{
		"ATS Trend: " + atsTrend,
		"Turnover Margin",
		"Red Zone Efficiency",
	}
	if p.ExplosiveRating >= 85 {
		factors = append(factors, "Explosive Play Rate")
	}
	return factors
}

// Summary is the one-line result shown on the game card.
func Summary(p Projection) string {
	winScore, loseScore := p.HomeScore, p.AwayScore
	if !p.WinnerHome {
		winScore, loseScore = p.AwayScore, p.HomeScore
	}
	return fmt.Sprintf("%s wins %d-%d", p.Winner, winScore, loseScore)
}

// BuildRetrospective grades a finished game against the projection.
func BuildRetrospective(game nfl.Game, p Projection, result nfl.GameResult) *nfl.Retrospective {
	actualWinner := result.AwayName
	actualWinnerAbbr := result.AwayAbbr
	if result.HomeScore > result.AwayScore {
		actualWinner = result.HomeName
		actualWinnerAbbr = result.HomeAbbr
	}

	key := "Sustained drives and field position tilted this one late."
	if abs(result.HomeScore-result.AwayScore) > 14 {
		key = "A one-sided turnover battle turned a close line into a rout."
	}

	verdict := fmt.Sprintf("%s won %d-%d; the model projected %s.",
		actualWinner, max(result.HomeScore, result.AwayScore), min(result.HomeScore, result.AwayScore), p.Winner)
	if actualWinner == p.Winner {
		verdict = fmt.Sprintf("%s won %d-%d, as projected.",
			actualWinner, max(result.HomeScore, result.AwayScore), min(result.HomeScore, result.AwayScore))
	}

	return &nfl.Retrospective{
		Result:       verdict,
		KeyToVictory: key,
		StandoutPerformers: []string{
			actualWinnerAbbr + " QB1",
			actualWinnerAbbr + " front seven",
		},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
