package espn

import (
	"context"
	"log"
	"time"

	"github.com/fortuna/jinx/internal/nfl"
)

// Adapter is the schedule and news source for the rest of the service. Every
// fetch degrades to a usable result: the static Week 16 slate for games, an
// empty list for news. Callers never see an error from it.
type Adapter struct {
	client *Client
	week   int
}

// NewAdapter wires the adapter. week pins scoreboard requests; zero means
// ESPN's current week.
func NewAdapter(client *Client, week int) *Adapter {
	if client == nil {
		client = NewClient()
	}
	return &Adapter{client: client, week: week}
}

// Schedule returns the normalized current slate.
func (a *Adapter) Schedule(ctx context.Context) nfl.Schedule {
	raw, err := a.client.FetchScoreboard(ctx, FootballNFL, a.week)
	if err != nil {
		log.Printf("[espn-adapter] scoreboard fetch failed: %v (serving static slate)", err)
		return staticSchedule()
	}

	schedule, err := ParseScoreboard(raw)
	if err != nil || len(schedule.Games) == 0 {
		log.Printf("[espn-adapter] scoreboard parse failed or empty: %v (serving static slate)", err)
		return staticSchedule()
	}

	return schedule
}

// News returns the league wire feed, empty on any failure.
func (a *Adapter) News(ctx context.Context) []nfl.NewsArticle {
	raw, err := a.client.FetchNews(ctx, FootballNFL)
	if err != nil {
		log.Printf("[espn-adapter] news fetch failed: %v (proceeding without news)", err)
		return nil
	}
	return ParseNews(raw)
}

func staticSchedule() nfl.Schedule {
	return nfl.Schedule{
		Meta: nfl.ScheduleMeta{
			Season:    2025,
			Week:      16,
			Status:    "STATIC_FALLBACK",
			Timestamp: time.Now().UTC(),
			Source:    "DATASET",
		},
		Games: nfl.Week16Schedule,
	}
}
