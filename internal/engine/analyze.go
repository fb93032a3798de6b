package engine

import (
	"fmt"

	"github.com/fortuna/jinx/internal/nfl"
)

// AnalyzeMatchup runs the full pipeline for one game: rate both teams from
// live record plus news, project the score, and render the narrative. Pure;
// the result is deterministic for a fixed game and fixed news inputs. A
// non-nil result attaches the post-game retrospective.
func AnalyzeMatchup(game nfl.Game, homeNews, awayNews []nfl.NewsArticle, result *nfl.GameResult) nfl.AnalysisResult {
	home := RateTeam(game.HomeTeam, homeNews)
	away := RateTeam(game.AwayTeam, awayNews)

	p := Project(game, home, away, homeNews, awayNews)

	homeHeadlines := headlines(homeNews)
	awayHeadlines := headlines(awayNews)

	analysis := nfl.AnalysisResult{
		GameID:           game.ID,
		WinnerPrediction: p.Winner,
		HomeScore:        p.HomeScore,
		AwayScore:        p.AwayScore,
		ConfidenceScore:  p.Confidence,
		Summary:          Summary(p),
		Narrative:        BuildNarrative(game, home, away, p, homeHeadlines, awayHeadlines),
		KeyFactors:       KeyFactors(game, p),
		JinxScore:        p.JinxScore,
		JinxAnalysis:     JinxAnalysis(game, p),
		UpsetProbability: p.UpsetProbability,
		QuickTake:        QuickTake(p),
		ExecutionRating:  p.ExecutionRating,
		ExplosiveRating:  p.ExplosiveRating,
		LatestNews:       tagHeadlines(game, homeHeadlines, awayHeadlines),
		Weather:          ForecastWeather(game.ID),
		Leverage:         p.Leverage,
	}

	if result != nil {
		analysis.Retrospective = BuildRetrospective(game, p, *result)
	}
	return analysis
}

func headlines(news []nfl.NewsArticle) []string {
	out := make([]string, 0, len(news))
	for _, article := range news {
		out = append(out, article.Headline)
	}
	return out
}

func tagHeadlines(game nfl.Game, homeHeadlines, awayHeadlines []string) []string {
	tagged := make([]string, 0, len(homeHeadlines)+len(awayHeadlines))
	for _, h := range homeHeadlines {
		tagged = append(tagged, fmt.Sprintf("[%s] %s", game.HomeTeam.Abbreviation, h))
	}
	for _, h := range awayHeadlines {
		tagged = append(tagged, fmt.Sprintf("[%s] %s", game.AwayTeam.Abbreviation, h))
	}
	return tagged
}
