package service

import (
	"context"
	"testing"

	"github.com/fortuna/jinx/internal/nfl"
	"github.com/stretchr/testify/assert"
)

// gatedSource hands each Schedule call to the test, which decides when and
// with what snapshot the call completes.
type gatedSource struct {
	calls chan chan nfl.Schedule
}

func (g *gatedSource) Schedule(ctx context.Context) nfl.Schedule {
	reply := make(chan nfl.Schedule)
	g.calls <- reply
	return <-reply
}

func (g *gatedSource) News(ctx context.Context) []nfl.NewsArticle { return nil }

func weekSnapshot(source, gameID string) nfl.Schedule {
	return nfl.Schedule{
		Meta:  nfl.ScheduleMeta{Season: 2025, Week: 16, Status: "ok", Source: source},
		Games: []nfl.Game{{ID: gameID, Week: 16}},
	}
}

func TestStalePollCannotReplaceNewerSnapshot(t *testing.T) {
	src := &gatedSource{calls: make(chan chan nfl.Schedule)}
	svc := NewAnalysisService(src, nil, nil, nil)
	ctx := context.Background()

	returned := make(chan nfl.Schedule, 2)

	go func() { returned <- svc.Refresh(ctx) }()
	slow := <-src.calls // first poll hangs mid-fetch

	go func() { returned <- svc.Refresh(ctx) }()
	fast := <-src.calls

	// The second poll finishes first and becomes the applied snapshot.
	fast <- weekSnapshot("ESPN", "fresh")
	assert.Equal(t, "fresh", (<-returned).Games[0].ID)

	// The stalled first poll now completes with older data; it must lose,
	// and its caller still gets the freshest applied snapshot back.
	slow <- weekSnapshot("DATASET", "stale")
	assert.Equal(t, "fresh", (<-returned).Games[0].ID)

	assert.Equal(t, "fresh", svc.Schedule(ctx).Games[0].ID)
	assert.Equal(t, "ESPN", svc.Schedule(ctx).Meta.Source)
}

func TestScheduleFetchesOnFirstUse(t *testing.T) {
	src := &gatedSource{calls: make(chan chan nfl.Schedule)}
	svc := NewAnalysisService(src, nil, nil, nil)
	ctx := context.Background()

	go func() {
		reply := <-src.calls
		reply <- weekSnapshot("ESPN", "w16-1")
	}()

	sched := svc.Schedule(ctx)
	assert.Equal(t, "w16-1", sched.Games[0].ID)

	// Second call serves the snapshot without another fetch; an unserved
	// gatedSource call would deadlock here.
	assert.Equal(t, "w16-1", svc.Schedule(ctx).Games[0].ID)
}
