package odds

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BoardLine is one matchup's market numbers scraped from the odds board.
type BoardLine struct {
	HomeAbbr  string
	AwayAbbr  string
	Spread    string // favorite notation, e.g. "KC -3.5"
	Total     float64
	PublicPct int // percent of tickets on the favorite
}

var (
	spreadPattern = regexp.MustCompile(`([A-Z]{2,4})\s+([+-]\d+(?:\.\d+)?)`)
	totalPattern  = regexp.MustCompile(`[OoUu]\s*(\d+(?:\.\d+)?)`)
	pctPattern    = regexp.MustCompile(`(\d{1,3})\s*%`)
)

// ParseBoard extracts matchup lines from the rendered odds board. The page
// structure shifts between redesigns, so two selector strategies are tried.
func ParseBoard(doc *goquery.Document) []BoardLine {
	var lines []BoardLine

	// Strategy 1: structured game rows
	doc.Find("tr.event-card, div.game-row").Each(func(i int, s *goquery.Selection) {
		if line := parseGameRow(s); line != nil {
			lines = append(lines, *line)
		}
	})

	// Strategy 2: loose text scan over anything that looks like a matchup block
	if len(lines) == 0 {
		doc.Find("div[class*='matchup'], section[class*='game']").Each(func(i int, s *goquery.Selection) {
			if line := parseLooseBlock(s.Text()); line != nil {
				lines = append(lines, *line)
			}
		})
	}

	return lines
}

func parseGameRow(s *goquery.Selection) *BoardLine {
	line := &BoardLine{}

	s.Find("span.team-abbr, td.team abbr").Each(func(i int, team *goquery.Selection) {
		abbr := strings.ToUpper(strings.TrimSpace(team.Text()))
		if i == 0 {
			line.AwayAbbr = abbr
		} else if i == 1 {
			line.HomeAbbr = abbr
		}
	})

	text := s.Text()
	if m := spreadPattern.FindStringSubmatch(text); len(m) == 3 {
		line.Spread = m[1] + " " + m[2]
	}
	if m := totalPattern.FindStringSubmatch(text); len(m) == 2 {
		line.Total, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := pctPattern.FindStringSubmatch(text); len(m) == 2 {
		line.PublicPct, _ = strconv.Atoi(m[1])
	}

	if line.HomeAbbr == "" || line.AwayAbbr == "" || line.Spread == "" {
		return nil
	}
	return line
}

// parseLooseBlock is a fallback for unrecognized layouts: scan the block's
// text for "AWY @ HOM" plus a spread.
func parseLooseBlock(text string) *BoardLine {
	matchup := regexp.MustCompile(`([A-Z]{2,4})\s*@\s*([A-Z]{2,4})`).FindStringSubmatch(text)
	spread := spreadPattern.FindStringSubmatch(text)
	if len(matchup) != 3 || len(spread) != 3 {
		return nil
	}

	line := &BoardLine{
		AwayAbbr: matchup[1],
		HomeAbbr: matchup[2],
		Spread:   spread[1] + " " + spread[2],
	}
	if m := totalPattern.FindStringSubmatch(text); len(m) == 2 {
		line.Total, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := pctPattern.FindStringSubmatch(text); len(m) == 2 {
		line.PublicPct, _ = strconv.Atoi(m[1])
	}
	return line
}
