package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/fortuna/jinx/internal/cache"
	"github.com/fortuna/jinx/internal/engine"
	"github.com/fortuna/jinx/internal/ingest/news"
	"github.com/fortuna/jinx/internal/ingest/odds"
	"github.com/fortuna/jinx/internal/metrics"
	"github.com/fortuna/jinx/internal/nfl"
)

// ScheduleSource feeds the analysis service scoreboard snapshots and the
// league news wire. *espn.Adapter is the production implementation.
type ScheduleSource interface {
	Schedule(ctx context.Context) nfl.Schedule
	News(ctx context.Context) []nfl.NewsArticle
}

// AnalysisService owns the current schedule snapshot and runs the full
// matchup pipeline: scoreboard → news filter → ratings → projection →
// narrative. Analyses are cached in Redis when available.
type AnalysisService struct {
	source ScheduleSource
	odds   *odds.Ingester    // nil when the lines scraper is disabled
	cache  *cache.RedisCache // nil when Redis is unavailable
	store  *PredictionService

	mu         sync.RWMutex
	snapshot   nfl.Schedule
	appliedSeq uint64
	fetchSeq   atomic.Uint64
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(source ScheduleSource, oddsIngester *odds.Ingester, redisCache *cache.RedisCache, store *PredictionService) *AnalysisService {
	return &AnalysisService{
		source: source,
		odds:   oddsIngester,
		cache:  redisCache,
		store:  store,
	}
}

// Refresh fetches a fresh scoreboard snapshot and applies it. Fetches carry a
// monotonic sequence number so a slow poll finishing late can never replace a
// newer snapshot; the freshest applied snapshot is always returned.
func (s *AnalysisService) Refresh(ctx context.Context) nfl.Schedule {
	seq := s.fetchSeq.Add(1)

	sched := s.source.Schedule(ctx)
	if s.odds != nil {
		sched.Games = s.odds.Enrich(ctx, sched.Games)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq > s.appliedSeq {
		s.appliedSeq = seq
		s.snapshot = sched
		s.cacheSchedule(ctx, sched)
	}
	return s.snapshot
}

func (s *AnalysisService) cacheSchedule(ctx context.Context, sched nfl.Schedule) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(sched)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.ScheduleKey(sched.Meta.Week), raw, cache.ScheduleTTL); err != nil {
		log.Printf("[analysis] schedule cache write failed for week %d: %v", sched.Meta.Week, err)
	}
}

// Schedule returns the current snapshot, fetching one on first use.
func (s *AnalysisService) Schedule(ctx context.Context) nfl.Schedule {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if len(snap.Games) > 0 {
		return snap
	}
	return s.Refresh(ctx)
}

// Game finds a single game in the current snapshot by id.
func (s *AnalysisService) Game(ctx context.Context, gameID string) (nfl.Game, error) {
	for _, game := range s.Schedule(ctx).Games {
		if game.ID == gameID {
			return game, nil
		}
	}
	return nfl.Game{}, fmt.Errorf("game not found: %s", gameID)
}

// Analyze runs the full pipeline for one game. A news-fetch failure degrades
// to synthetic headlines; a cache failure degrades to recomputation. Once the
// game has a recorded final, the analysis gains a retrospective and the
// pre-game cache entry is replaced.
func (s *AnalysisService) Analyze(ctx context.Context, gameID string) (nfl.AnalysisResult, error) {
	game, err := s.Game(ctx, gameID)
	if err != nil {
		return nfl.AnalysisResult{}, err
	}

	var result *nfl.GameResult
	if finals, err := s.store.Results(ctx); err == nil {
		if res, ok := finals[gameID]; ok {
			result = &res
		}
	}

	if cached, ok := s.cachedAnalysis(ctx, gameID, result != nil); ok {
		metrics.AnalysisCacheHits.Inc()
		return cached, nil
	}

	homeNews, awayNews := s.matchupNews(ctx, game)
	analysis := engine.AnalyzeMatchup(game, homeNews, awayNews, result)
	metrics.AnalysesComputed.Inc()

	s.cacheAnalysis(ctx, gameID, analysis)
	return analysis, nil
}

// matchupNews fetches the league feed and filters it down per team. An empty
// or failed feed falls back to deterministic synthetic headlines so the
// narrative always has material to work with.
func (s *AnalysisService) matchupNews(ctx context.Context, game nfl.Game) (homeNews, awayNews []nfl.NewsArticle) {
	feed := s.source.News(ctx)

	homeNews = news.ForTeam(feed, game.HomeTeam, game.AwayTeam)
	awayNews = news.ForTeam(feed, game.AwayTeam, game.HomeTeam)

	if len(homeNews) == 0 {
		homeNews = news.Generate(game.HomeTeam, game.ID)
	}
	if len(awayNews) == 0 {
		awayNews = news.Generate(game.AwayTeam, game.ID)
	}
	return homeNews, awayNews
}

func (s *AnalysisService) cachedAnalysis(ctx context.Context, gameID string, wantRetrospective bool) (nfl.AnalysisResult, bool) {
	if s.cache == nil {
		return nfl.AnalysisResult{}, false
	}

	raw, err := s.cache.Get(ctx, cache.AnalysisKey(gameID))
	if err != nil {
		return nfl.AnalysisResult{}, false
	}

	var analysis nfl.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		log.Printf("[analysis] discarding unreadable cache entry for %s: %v", gameID, err)
		return nfl.AnalysisResult{}, false
	}

	// A pre-game entry is stale once the final is in.
	if wantRetrospective && analysis.Retrospective == nil {
		return nfl.AnalysisResult{}, false
	}
	return analysis, true
}

func (s *AnalysisService) cacheAnalysis(ctx context.Context, gameID string, analysis nfl.AnalysisResult) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(analysis)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.AnalysisKey(gameID), raw, cache.AnalysisTTL); err != nil {
		log.Printf("[analysis] cache write failed for %s: %v", gameID, err)
	}
}
