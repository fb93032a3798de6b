package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fortuna/jinx/internal/nfl"
)

// Market defaults when a game arrives without betting data.
const (
	defaultTotal = 44.0

	// Elo-style win probabilities inside this band are a no-bet signal;
	// confidence is capped so the pick reads as a coin flip.
	noBetLow  = 0.40
	noBetHigh = 0.60
	noBetCap  = 45

	eloScale = 25.0 // rating points per factor-of-10 odds shift
)

// Projection is the numeric half of an analysis: final scores, winner,
// confidence, and the derived matchup metrics the narrative interpolates.
type Projection struct {
	HomeScore  int
	AwayScore  int
	Winner     string // team name
	WinnerHome bool
	Confidence int // 0-99

	HomeSpread float64 // market line, positive when home is favored
	Total      float64
	Margin     int     // |home - away| after clamping
	WinProb    float64 // home win probability, Elo-style

	ExplosiveRating int // 0-99
	ExecutionRating int // 0-99
	Leverage        nfl.Leverage

	JinxScore        int // 1-10
	UpsetProbability int // 0-100

	HomeNewsImpact int // [-10, +10]
	AwayNewsImpact int
}

// Project blends the market line, rating differentials, injury penalties,
// news impact, and a seeded variance term into a final score pair. For a
// fixed game id and fixed inputs the output is identical across calls and
// across processes.
func Project(game nfl.Game, home, away DynamicRating, homeNews, awayNews []nfl.NewsArticle) Projection {
	spread, total := parseMarket(game)

	// Implied market scores anchor everything else.
	impliedHome := (total + spread) / 2
	impliedAway := (total - spread) / 2

	// Offense vs opposing defense; 10 rating points is worth about 2.5.
	homeAdvantage := float64(home.Offense-away.Defense) / 4
	awayAdvantage := float64(away.Offense-home.Defense) / 4

	homeScore := impliedHome + homeAdvantage - float64(injuryPenalty(game.HomeTeam))
	awayScore := impliedAway + awayAdvantage - float64(injuryPenalty(game.AwayTeam))

	homeImpact := newsImpact(homeNews)
	awayImpact := newsImpact(awayNews)
	homeScore += float64(homeImpact)
	awayScore += float64(awayImpact)

	// Any-given-Sunday noise, seeded by game id. The perturbation moves the
	// scores in opposite directions so the projected total stays plausible.
	r := newRNG(game.ID)
	variance := r.Float64()*6 - 3
	homeScore += variance
	awayScore -= variance

	hs := clampScore(homeScore)
	as := clampScore(awayScore)

	// A projected tie goes to the better offense, not a coin flip. Equal
	// offense ratings default to the road side.
	if hs == as {
		if home.Offense > away.Offense {
			hs += 3
		} else {
			as += 3
		}
	}

	winnerHome := hs > as
	winner := game.AwayTeam.Name
	if winnerHome {
		winner = game.HomeTeam.Name
	}

	margin := hs - as
	if margin < 0 {
		margin = -margin
	}

	winProb := eloWinProb(home, away)
	confidence := clampInt(50+margin*2, 0, 99)
	if winProb >= noBetLow && winProb <= noBetHigh && confidence > noBetCap {
		confidence = noBetCap
	}

	p := Projection{
		HomeScore:        hs,
		AwayScore:        as,
		Winner:           winner,
		WinnerHome:       winnerHome,
		Confidence:       confidence,
		HomeSpread:       spread,
		Total:            total,
		Margin:           margin,
		WinProb:          winProb,
		HomeNewsImpact:   homeImpact,
		AwayNewsImpact:   awayImpact,
		ExplosiveRating:  explosiveRating(home, away, total),
		ExecutionRating:  executionRating(confidence, home, away),
		Leverage:         leverage(home, away),
		UpsetProbability: upsetProbability(winnerHome, winProb),
	}
	p.JinxScore = jinxScore(game, p)
	return p
}

// parseMarket converts the book's spread notation into a home-relative line.
// Malformed or missing betting data degrades to a pick'em at the league
// average total.
func parseMarket(game nfl.Game) (spread, total float64) {
	total = defaultTotal
	if game.Betting == nil {
		return 0, total
	}
	if game.Betting.Total > 0 {
		total = game.Betting.Total
	}

	parts := strings.Fields(game.Betting.Spread)
	if len(parts) < 2 {
		return 0, total
	}
	favAbbr := parts[0]
	points, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		return 0, total
	}

	if strings.EqualFold(favAbbr, game.HomeTeam.Abbreviation) {
		return math.Abs(points), total
	}
	return -math.Abs(points), total
}

// injuryPenalty charges a team's own score for its injury report: a flagged
// quarterback costs roughly half a touchdown, anyone else a field goal's
// worth of drive stalls.
func injuryPenalty(team nfl.Team) int {
	penalty := 0
	for _, note := range team.KeyInjuries {
		if strings.Contains(strings.ToLower(note), "qb") {
			penalty += 4
		} else {
			penalty += 2
		}
	}
	return penalty
}

var (
	newsNegative = map[string]int{"out": -3, "injury": -3, "concussion": -3, "ir": -3}
	newsCaution  = map[string]int{"doubtful": -2, "questionable": -2, "benched": -2}
	newsPositive = map[string]int{"return": 2, "cleared": 2, "active": 2}
)

// newsImpact scores a team's relevant headlines into a point swing in
// [-10, +10].
func newsImpact(news []nfl.NewsArticle) int {
	impact := 0
	for _, article := range news {
		text := strings.ToLower(article.Headline + " " + article.Description)
		for _, table := range []map[string]int{newsNegative, newsCaution, newsPositive} {
			for keyword, points := range table {
				if strings.Contains(text, keyword) {
					impact += points
				}
			}
		}
	}
	return clampInt(impact, -10, 10)
}

// clampScore rounds a raw projection to a legal football score. 1 is
// impossible and 4 is near-impossible in regulation; both collapse to the
// nearest reachable number.
func clampScore(score float64) int {
	s := int(math.Round(score))
	switch {
	case s <= 1:
		return 0
	case s == 4:
		return 3
	default:
		return s
	}
}

// eloWinProb maps the composite rating gap (plus a small home edge) onto a
// logistic curve.
func eloWinProb(home, away DynamicRating) float64 {
	homeComposite := float64(home.Offense+home.Defense) / 2
	awayComposite := float64(away.Offense+away.Defense) / 2
	diff := homeComposite - awayComposite + 2 // home field
	return 1 / (1 + math.Pow(10, -diff/eloScale))
}

// explosiveRating estimates scoreboard fireworks from the offenses and the
// market total.
func explosiveRating(home, away DynamicRating, total float64) int {
	avgOffense := float64(home.Offense+away.Offense) / 2
	rating := avgOffense

	switch {
	case total > 46:
		rating += 8
	case total < 40:
		rating -= 8
	}

	mismatch := home.Offense - away.Offense
	if mismatch < 0 {
		mismatch = -mismatch
	}
	if mismatch > 15 {
		rating += 5
	}

	return clampInt(int(math.Round(rating)), 0, 99)
}

// executionRating blends pick confidence with how clean both rosters are,
// tier 1 teams simply make fewer mistakes.
func executionRating(confidence int, home, away DynamicRating) int {
	avgTier := float64(home.Tier+away.Tier) / 2
	tierQuality := 100 - (avgTier-1)*12
	return clampInt(int(math.Round(0.6*float64(confidence)+0.4*tierQuality)), 0, 99)
}

// leverage computes the home team's share of each positional edge.
func leverage(home, away DynamicRating) nfl.Leverage {
	share := func(delta, mult float64) int {
		return clampInt(int(math.Round(50+delta*mult)), 5, 95)
	}
	offDelta := float64(home.Offense - away.Offense)
	defDelta := float64(home.Defense - away.Defense)
	qbDelta := offDelta + float64(away.Tier-home.Tier)*2

	return nfl.Leverage{
		Offense: share(offDelta, 1.5),
		Defense: share(defDelta, 1.5),
		QB:      share(qbDelta, 1.2),
	}
}

func upsetProbability(winnerHome bool, winProb float64) int {
	loser := winProb
	if winnerHome {
		loser = 1 - winProb
	}
	return clampInt(int(math.Round(loser*100)), 0, 100)
}

// jinxScore rates trap-game risk on 1-10: tight projected margins are
// inherently jumpy, and heavy public money on one side marks a classic line
// trap.
func jinxScore(game nfl.Game, p Projection) int {
	score := 3
	if p.Margin < 7 {
		score = 8
	}
	if game.Betting != nil && game.Betting.PublicBettingPct >= 80 && p.Margin < 7 {
		score++
	}
	return clampInt(score, 1, 10)
}

// JinxAnalysis explains the trap score in one line.
func JinxAnalysis(game nfl.Game, p Projection) string {
	if game.Betting != nil && game.Betting.PublicBettingPct >= 80 && p.Margin < 7 {
		return fmt.Sprintf("%d%% of public money on one side of a %d-point projection. Classic trap setup.",
			game.Betting.PublicBettingPct, p.Margin)
	}
	if p.Margin < 7 {
		return "One-score projection. Any bounce of the ball flips this result."
	}
	return "Monitoring public money percentages."
}

// QuickTake compresses the projection into a two-word card label.
func QuickTake(p Projection) string {
	switch {
	case p.Margin > 10:
		return "Mismatch"
	case p.Total > 48:
		return "Shootout Alert"
	default:
		return "Close Game"
	}
}

// ForecastWeather renders deterministic environmental flavor for a game.
// Same game id, same forecast.
func ForecastWeather(gameID string) nfl.Weather {
	r := newRNG(gameID + "-wx")
	conditions := []string{"Clear", "Partly Cloudy", "Overcast", "Light Snow", "Rain"}

	w := nfl.Weather{
		Temp:      20 + r.IntN(55),
		Condition: conditions[r.IntN(len(conditions))],
		WindSpeed: r.IntN(21),
	}
	switch {
	case w.WindSpeed >= 15:
		w.ImpactOnPassing = "High"
	case w.WindSpeed >= 8:
		w.ImpactOnPassing = "Moderate"
	default:
		w.ImpactOnPassing = "Low"
	}
	return w
}
