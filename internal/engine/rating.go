package engine

import (
	"strconv"
	"strings"

	"github.com/fortuna/jinx/internal/nfl"
)

// DynamicRating is the per-analysis strength snapshot for one team. Tier 1
// is the strongest bucket. Ratings live in [50, 99].
type DynamicRating struct {
	Tier    int `json:"tier"`
	Offense int `json:"offense"`
	Defense int `json:"defense"`
}

// quarterback availability keywords scanned in injury notes and headlines
var (
	qbMarkers       = []string{"qb"}
	outMarkers      = []string{"out", "ir", "bench"}
	genericDownbeat = []string{"out", "ir"}
)

// RateTeam converts a team's live record, injury list, and relevant news
// into a tier and offense/defense rating pair. Pure and order-independent
// between opponents; callers re-rate on every analysis because record and
// news can change between requests.
func RateTeam(team nfl.Team, news []nfl.NewsArticle) DynamicRating {
	wins := parseWins(team.Record)
	tier := tierForWins(wins)
	base := 95 - (tier-1)*5

	qbBoost := 0
	if qb := team.QB; qb != nil {
		ratio := tdIntRatio(qb.PassingTDs, qb.Interceptions)
		yardsPerWeek := qb.PassingYards / 15

		switch {
		case ratio > 2.5 && yardsPerWeek > 250:
			qbBoost = 10
		case ratio > 1.5 && yardsPerWeek > 200:
			qbBoost = 5
		case ratio < 1.0:
			qbBoost = -10
		}

		// An elite passing season lifts the whole team a bucket.
		if ratio > 2.0 && qb.PassingTDs > 25 {
			tier = max(1, tier-1)
		}
	}

	penalty := 0
	switch {
	case quarterbackOut(team, news):
		penalty = 15
		tier = min(5, tier+2)
	case anyMentions(team, news, genericDownbeat):
		penalty = 5
	}

	return DynamicRating{
		Tier:    clampInt(tier, 1, 5),
		Offense: clampInt(base+qbBoost-penalty, 50, 99),
		Defense: clampInt(base-penalty/2, 50, 99),
	}
}

// parseWins reads the leading win count from a record string like "10-4-0".
// Any parse failure counts as zero wins.
func parseWins(record string) int {
	if record == "" {
		return 0
	}
	first := record
	for i, r := range record {
		if r < '0' || r > '9' {
			first = record[:i]
			break
		}
	}
	wins, err := strconv.Atoi(first)
	if err != nil {
		return 0
	}
	return wins
}

func tierForWins(wins int) int {
	switch {
	case wins >= 10:
		return 1
	case wins >= 8:
		return 2
	case wins >= 6:
		return 3
	case wins >= 4:
		return 4
	default:
		return 5
	}
}

func tdIntRatio(tds, ints int) float64 {
	if ints <= 0 {
		return float64(tds)
	}
	return float64(tds) / float64(ints)
}

// quarterbackOut reports whether the injury list or headlines flag the
// starting quarterback as unavailable: an out/IR/bench marker co-occurring
// with a QB mention in the same snippet.
func quarterbackOut(team nfl.Team, news []nfl.NewsArticle) bool {
	for _, snippet := range snippets(team, news) {
		lower := strings.ToLower(snippet)
		if !containsAny(lower, qbMarkers) {
			continue
		}
		if containsAny(lower, outMarkers) {
			return true
		}
	}
	return false
}

func anyMentions(team nfl.Team, news []nfl.NewsArticle, markers []string) bool {
	for _, snippet := range snippets(team, news) {
		if containsAny(strings.ToLower(snippet), markers) {
			return true
		}
	}
	return false
}

func snippets(team nfl.Team, news []nfl.NewsArticle) []string {
	out := make([]string, 0, len(team.KeyInjuries)+len(news))
	out = append(out, team.KeyInjuries...)
	for _, article := range news {
		out = append(out, article.Headline+" "+article.Description)
	}
	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
