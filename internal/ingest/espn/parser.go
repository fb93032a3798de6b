package espn

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fortuna/jinx/internal/nfl"
)

// ParseScoreboard normalizes an ESPN NFL scoreboard payload into the domain
// shape. Individual malformed events are skipped with a log line, never
// fatal to the rest of the slate.
func ParseScoreboard(scoreboardData map[string]interface{}) (nfl.Schedule, error) {
	schedule := nfl.Schedule{
		Meta: nfl.ScheduleMeta{
			Status:    "LIVE",
			Timestamp: time.Now().UTC(),
			Source:    "ESPN_V2",
		},
	}

	if season := extractMap(scoreboardData, "season"); len(season) > 0 {
		schedule.Meta.Season = extractInt(season, "year")
	}
	if week := extractMap(scoreboardData, "week"); len(week) > 0 {
		schedule.Meta.Week = extractInt(week, "number")
	}

	events := extractArray(scoreboardData, "events")
	if len(events) == 0 {
		// A bye-heavy or offseason response; normal, not an error.
		return schedule, nil
	}

	for _, eventInterface := range events {
		event, ok := eventInterface.(map[string]interface{})
		if !ok {
			continue
		}
		game, err := parseEvent(event, schedule.Meta.Week)
		if err != nil {
			fmt.Printf("[espn-parser] Warning: skipping game %s: %v\n", extractString(event, "id"), err)
			continue
		}
		schedule.Games = append(schedule.Games, game)
	}

	return schedule, nil
}

func parseEvent(event map[string]interface{}, week int) (nfl.Game, error) {
	game := nfl.Game{
		ID:   extractString(event, "id"),
		Week: week,
	}
	if game.ID == "" {
		return game, fmt.Errorf("event missing id")
	}

	if dateStr := extractString(event, "date"); dateStr != "" {
		kickoff, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			// ESPN sometimes omits seconds: "2025-12-21T18:00Z"
			kickoff, err = time.Parse("2006-01-02T15:04Z", dateStr)
		}
		if err == nil {
			est, _ := time.LoadLocation("America/New_York")
			game.Kickoff = kickoff.In(est)
			game.Date = game.Kickoff.Format("Mon, Jan 2 • 3:04 PM ET")
		}
	}

	status := extractMap(event, "status")
	if statusType := extractMap(status, "type"); len(statusType) > 0 {
		game.Status = normalizeStatus(extractString(statusType, "state"))
	}
	if clock := extractString(status, "displayClock"); clock != "" && game.Status == nfl.GameIn {
		period := extractInt(status, "period")
		game.Clock = fmt.Sprintf("%s %s", clock, ordinal(period))
	}

	competitions := extractArray(event, "competitions")
	if len(competitions) == 0 {
		return game, fmt.Errorf("no competitions")
	}
	comp, ok := competitions[0].(map[string]interface{})
	if !ok {
		return game, fmt.Errorf("malformed competition")
	}

	if venue := extractMap(comp, "venue"); len(venue) > 0 {
		game.Venue = extractString(venue, "fullName")
	}

	competitors := extractArray(comp, "competitors")
	if len(competitors) < 2 {
		return game, fmt.Errorf("insufficient competitors")
	}

	haveHome, haveAway := false, false
	for _, competitorInterface := range competitors {
		competitor, ok := competitorInterface.(map[string]interface{})
		if !ok {
			continue
		}
		team := parseCompetitor(competitor)
		switch extractString(competitor, "homeAway") {
		case "home":
			game.HomeTeam = team
			haveHome = true
		case "away":
			game.AwayTeam = team
			haveAway = true
		}
	}
	if !haveHome || !haveAway {
		return game, fmt.Errorf("missing home or away competitor")
	}

	game.Betting = parseOdds(comp)

	return game, nil
}

func parseCompetitor(competitor map[string]interface{}) nfl.Team {
	teamData := extractMap(competitor, "team")
	team := nfl.Team{
		ID:           extractString(teamData, "id"),
		Name:         extractString(teamData, "displayName"),
		Abbreviation: strings.ToUpper(extractString(teamData, "abbreviation")),
		LogoURL:      extractString(teamData, "logo"),
		Color:        extractString(teamData, "color"),
	}

	// Enrich with the calibrated dataset where the feed is silent.
	if ref, ok := nfl.TeamByID(team.Abbreviation); ok {
		if team.Name == "" {
			team.Name = ref.Name
		}
		team.Standing = ref.Standing
		team.Status = ref.Status
		team.KeyInjuries = ref.KeyInjuries
	}

	for _, recordInterface := range extractArray(competitor, "records") {
		record, ok := recordInterface.(map[string]interface{})
		if !ok {
			continue
		}
		if extractString(record, "name") == "overall" || extractString(record, "type") == "total" {
			team.Record = extractString(record, "summary")
			break
		}
	}

	// Live score arrives as a string in the NFL feed.
	if scoreStr := extractString(competitor, "score"); scoreStr != "" {
		if score, err := strconv.Atoi(scoreStr); err == nil {
			team.Score = &score
		}
	} else if score := extractInt(competitor, "score"); score > 0 {
		team.Score = &score
	}

	team.QB = parsePassingLeader(competitor)

	return team
}

// parsePassingLeader pulls the QB season line out of the competitor's
// leaders block. The displayValue reads like "3112 YDS, 24 TD, 8 INT".
func parsePassingLeader(competitor map[string]interface{}) *nfl.QBStats {
	for _, leaderGroupInterface := range extractArray(competitor, "leaders") {
		leaderGroup, ok := leaderGroupInterface.(map[string]interface{})
		if !ok {
			continue
		}
		if name := extractString(leaderGroup, "name"); name != "passingYards" && name != "passingLeader" {
			continue
		}
		leaders := extractArray(leaderGroup, "leaders")
		if len(leaders) == 0 {
			return nil
		}
		leader, ok := leaders[0].(map[string]interface{})
		if !ok {
			return nil
		}

		qb := &nfl.QBStats{}
		if athlete := extractMap(leader, "athlete"); len(athlete) > 0 {
			qb.Name = extractString(athlete, "displayName")
		}

		display := extractString(leader, "displayValue")
		for _, part := range strings.Split(display, ",") {
			fields := strings.Fields(strings.TrimSpace(part))
			if len(fields) != 2 {
				continue
			}
			value, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				continue
			}
			switch strings.ToUpper(fields[1]) {
			case "YDS":
				qb.PassingYards = value
			case "TD":
				qb.PassingTDs = int(value)
			case "INT":
				qb.Interceptions = int(value)
			}
		}

		if qb.PassingYards == 0 {
			qb.PassingYards = extractFloat(leader, "value")
		}
		if qb.Name == "" && qb.PassingYards == 0 {
			return nil
		}
		return qb
	}
	return nil
}

// parseOdds reads the pregame line. ESPN's details field is already in
// favorite-plus-points notation ("KC -3.5").
func parseOdds(comp map[string]interface{}) *nfl.BettingData {
	oddsArr := extractArray(comp, "odds")
	if len(oddsArr) == 0 {
		return nil
	}
	odds, ok := oddsArr[0].(map[string]interface{})
	if !ok {
		return nil
	}

	betting := &nfl.BettingData{
		Spread: extractString(odds, "details"),
		Total:  extractFloat(odds, "overUnder"),
	}
	if betting.Spread == "" && betting.Total == 0 {
		return nil
	}
	return betting
}

// ParseNews normalizes the league news feed into articles with team tags.
func ParseNews(newsData map[string]interface{}) []nfl.NewsArticle {
	var out []nfl.NewsArticle
	for _, articleInterface := range extractArray(newsData, "articles") {
		articleData, ok := articleInterface.(map[string]interface{})
		if !ok {
			continue
		}

		article := nfl.NewsArticle{
			Headline:    extractString(articleData, "headline"),
			Description: extractString(articleData, "description"),
		}
		if article.Headline == "" {
			continue
		}
		if published := extractString(articleData, "published"); published != "" {
			if ts, err := time.Parse(time.RFC3339, published); err == nil {
				article.Published = ts
			}
		}

		for _, categoryInterface := range extractArray(articleData, "categories") {
			category, ok := categoryInterface.(map[string]interface{})
			if !ok {
				continue
			}
			if extractString(category, "type") != "team" {
				continue
			}
			if team := extractMap(category, "team"); len(team) > 0 {
				if abbr := strings.ToUpper(extractString(team, "abbreviation")); abbr != "" {
					article.Teams = append(article.Teams, abbr)
				} else if desc := extractString(category, "description"); desc != "" {
					article.Teams = append(article.Teams, desc)
				}
			}
		}

		out = append(out, article)
	}
	return out
}

func normalizeStatus(state string) string {
	switch state {
	case "pre":
		return nfl.GamePre
	case "in":
		return nfl.GameIn
	case "post":
		return nfl.GamePost
	default:
		return nfl.GamePre
	}
}

func ordinal(period int) string {
	switch period {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	case 4:
		return "4th"
	default:
		return "OT"
	}
}
