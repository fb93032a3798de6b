package odds

import (
	"context"
	"log"

	"github.com/fortuna/jinx/internal/nfl"
)

// Ingester backfills betting data onto games the scoreboard returned without
// a line. Entirely best-effort: when the board is unreachable the games keep
// their nil betting data and the projection engine falls back to its
// defaults.
type Ingester struct {
	client *Client
}

// NewIngester creates the ingester. Returns an error only when the headless
// browser cannot be allocated; callers treat that as "run without odds".
func NewIngester() (*Ingester, error) {
	client, err := NewClient()
	if err != nil {
		return nil, err
	}
	return &Ingester{client: client}, nil
}

// Close releases the browser allocator.
func (in *Ingester) Close() {
	if in.client != nil {
		in.client.Close()
	}
}

// Enrich merges scraped lines into games that are missing betting data.
// Games that already carry a line from the scoreboard are left untouched.
func (in *Ingester) Enrich(ctx context.Context, games []nfl.Game) []nfl.Game {
	missing := 0
	for _, g := range games {
		if g.Betting == nil {
			missing++
		}
	}
	if missing == 0 {
		return games
	}

	html, err := in.client.FetchBoard(ctx)
	if err != nil {
		log.Printf("[odds-ingester] board fetch failed: %v (leaving %d games unlined)", err, missing)
		return games
	}
	doc, err := ParseHTML(html)
	if err != nil {
		log.Printf("[odds-ingester] board parse failed: %v", err)
		return games
	}

	lines := ParseBoard(doc)
	if len(lines) == 0 {
		log.Printf("[odds-ingester] no lines recognized on board")
		return games
	}

	byMatchup := make(map[string]BoardLine, len(lines))
	for _, line := range lines {
		byMatchup[line.AwayAbbr+"@"+line.HomeAbbr] = line
	}

	enriched := 0
	for i := range games {
		if games[i].Betting != nil {
			continue
		}
		line, ok := byMatchup[games[i].AwayTeam.Abbreviation+"@"+games[i].HomeTeam.Abbreviation]
		if !ok {
			continue
		}
		games[i].Betting = &nfl.BettingData{
			Spread:           line.Spread,
			Total:            line.Total,
			PublicBettingPct: line.PublicPct,
		}
		enriched++
	}

	if enriched > 0 {
		log.Printf("[odds-ingester] enriched %d/%d games from the board", enriched, missing)
	}
	return games
}
