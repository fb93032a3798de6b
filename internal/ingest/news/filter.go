package news

import (
	"strings"

	"github.com/fortuna/jinx/internal/nfl"
)

// roundupMarkers flag league-wide aggregation content that name-drops half
// the league and poisons per-team keyword scans.
var roundupMarkers = []string{
	"roundup",
	"power rankings",
	"takeaways",
	"winners and losers",
	"everything you need to know",
	"week in review",
}

// ForTeam narrows the league wire down to articles about one team in one
// matchup: tagged with or mentioning the team, not a roundup, and not
// referencing any club outside the matchup.
func ForTeam(articles []nfl.NewsArticle, team nfl.Team, opponent nfl.Team) []nfl.NewsArticle {
	var out []nfl.NewsArticle
	for _, article := range articles {
		if isRoundup(article) {
			continue
		}
		if !isAbout(article, team) {
			continue
		}
		text := article.Headline + " " + article.Description
		if nfl.MentionsThirdTeam(text, team.Abbreviation, opponent.Abbreviation) {
			continue
		}
		out = append(out, article)
	}
	return out
}

func isRoundup(article nfl.NewsArticle) bool {
	// An article tagged with three or more clubs is roundup content no
	// matter what the headline says.
	if len(article.Teams) >= 3 {
		return true
	}
	lower := strings.ToLower(article.Headline + " " + article.Description)
	for _, marker := range roundupMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func isAbout(article nfl.NewsArticle, team nfl.Team) bool {
	for _, tagged := range article.Teams {
		if strings.EqualFold(tagged, team.Abbreviation) {
			return true
		}
	}
	return nfl.MentionsTeam(article.Headline+" "+article.Description, team.Abbreviation)
}
