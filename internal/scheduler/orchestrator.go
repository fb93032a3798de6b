package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/fortuna/jinx/internal/metrics"
	"github.com/fortuna/jinx/internal/nfl"
	"github.com/fortuna/jinx/internal/publisher"
	"github.com/fortuna/jinx/internal/service"
)

// Broadcaster pushes a fresh schedule snapshot to connected clients.
type Broadcaster interface {
	BroadcastSchedule(schedule nfl.Schedule)
}

// Orchestrator drives the scoreboard polling loop: refresh the snapshot,
// capture newly-final games, publish live and final events.
type Orchestrator struct {
	analysis  *service.AnalysisService
	store     *service.PredictionService
	publisher *publisher.RedisStreamPublisher // nil without Redis
	hub       Broadcaster                     // nil without the WebSocket server
	config    *Config
	cancel    context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	PollInterval time.Duration // Default: 60s
	MaxRetries   int           // Default: 3
	RetryDelay   time.Duration // Default: 5s
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() *Config {
	return &Config{
		PollInterval: 60 * time.Second,
		MaxRetries:   3,
		RetryDelay:   5 * time.Second,
	}
}

// NewOrchestrator creates a new scheduler orchestrator
func NewOrchestrator(analysis *service.AnalysisService, store *service.PredictionService, streamPublisher *publisher.RedisStreamPublisher, hub Broadcaster, config *Config) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Orchestrator{
		analysis:  analysis,
		store:     store,
		publisher: streamPublisher,
		hub:       hub,
		config:    config,
	}
}

// Start begins the polling loop and blocks until ctx is cancelled.
func (o *Orchestrator) Start(ctx context.Context) {
	log.Printf("[scheduler] scoreboard polling started (interval: %v)", o.config.PollInterval)

	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	ticker := time.NewTicker(o.config.PollInterval)
	defer ticker.Stop()

	consecutiveErrors := 0
	maxConsecutiveErrors := 5

	// Run immediately on start
	o.pollWithRetry(ctx, &consecutiveErrors, maxConsecutiveErrors)

	for {
		select {
		case <-ctx.Done():
			log.Println("[scheduler] scoreboard polling stopped")
			return
		case <-ticker.C:
			o.pollWithRetry(ctx, &consecutiveErrors, maxConsecutiveErrors)
		}
	}
}

// Stop cancels the polling loop
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
}

// pollWithRetry runs one polling cycle. The adapter itself never errors (it
// degrades to the static slate), so a cycle counts as failed when ESPN could
// not be reached and the fallback had to serve.
func (o *Orchestrator) pollWithRetry(ctx context.Context, consecutiveErrors *int, maxConsecutiveErrors int) {
	var schedule nfl.Schedule
	live := false

	for attempt := 1; attempt <= o.config.MaxRetries; attempt++ {
		schedule = o.analysis.Refresh(ctx)
		live = schedule.Meta.Source != "DATASET"

		if live {
			*consecutiveErrors = 0
			break
		}

		log.Printf("[scheduler] polling attempt %d/%d served fallback data", attempt, o.config.MaxRetries)
		if attempt < o.config.MaxRetries {
			select {
			case <-ctx.Done():
				return
			case <-time.After(o.config.RetryDelay):
			}
		}
	}

	if !live {
		*consecutiveErrors++
		metrics.PollsTotal.WithLabelValues("error").Inc()
		log.Printf("[scheduler] all %d attempts served fallback data, consecutive errors: %d/%d",
			o.config.MaxRetries, *consecutiveErrors, maxConsecutiveErrors)

		if *consecutiveErrors >= maxConsecutiveErrors {
			log.Println("[scheduler] high error rate, slowing polling")
			select {
			case <-ctx.Done():
				return
			case <-time.After(20 * time.Second):
			}
		}
		return
	}

	metrics.PollsTotal.WithLabelValues("ok").Inc()
	o.processSnapshot(ctx, schedule)
}

// processSnapshot captures finals and fans the snapshot out.
func (o *Orchestrator) processSnapshot(ctx context.Context, schedule nfl.Schedule) {
	liveCount := 0
	for _, game := range schedule.Games {
		switch game.Status {
		case nfl.GameIn:
			liveCount++
			if o.publisher != nil {
				if err := o.publisher.PublishLiveGameUpdate(ctx, game); err != nil {
					log.Printf("[scheduler] failed to publish live update for %s: %v", game.ID, err)
				}
			}
		case nfl.GamePost:
			o.captureFinal(ctx, game)
		}
	}

	if o.hub != nil {
		o.hub.BroadcastSchedule(schedule)
	}
	if liveCount > 0 {
		log.Printf("[scheduler] published %d live games", liveCount)
	}
}

// captureFinal records a finished game's score. The store is write-once, so
// seeing the same final on every later poll is harmless.
func (o *Orchestrator) captureFinal(ctx context.Context, game nfl.Game) {
	if game.HomeTeam.Score == nil || game.AwayTeam.Score == nil {
		return
	}

	result := nfl.GameResult{
		GameID:    game.ID,
		HomeScore: *game.HomeTeam.Score,
		AwayScore: *game.AwayTeam.Score,
		HomeAbbr:  game.HomeTeam.Abbreviation,
		AwayAbbr:  game.AwayTeam.Abbreviation,
		HomeName:  game.HomeTeam.Name,
		AwayName:  game.AwayTeam.Name,
	}
	if game.Betting != nil {
		result.Spread = game.Betting.Spread
	}

	if err := o.store.RecordResult(ctx, result); err != nil {
		log.Printf("[scheduler] failed to record final for %s: %v", game.ID, err)
		return
	}
	metrics.ResultsRecorded.Inc()

	if o.publisher != nil {
		if err := o.publisher.PublishFinalResult(ctx, result); err != nil {
			log.Printf("[scheduler] failed to publish final for %s: %v", game.ID, err)
		}
	}
}
