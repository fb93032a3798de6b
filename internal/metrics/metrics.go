// Package metrics registers the service's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PollsTotal counts scoreboard polling cycles, by outcome.
	PollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jinx_scoreboard_polls_total",
		Help: "Scoreboard polling cycles by outcome (ok, error).",
	}, []string{"outcome"})

	// AnalysesComputed counts full pipeline runs (cache misses).
	AnalysesComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jinx_analyses_computed_total",
		Help: "Matchup analyses computed from scratch.",
	})

	// AnalysisCacheHits counts analyses served straight from Redis.
	AnalysisCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jinx_analysis_cache_hits_total",
		Help: "Matchup analyses served from cache.",
	})

	// PredictionsSaved counts persisted picks, by destination store.
	PredictionsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jinx_predictions_saved_total",
		Help: "Saved picks by destination (postgres, local).",
	}, []string{"store"})

	// ResultsRecorded counts finals captured by the poller.
	ResultsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jinx_results_recorded_total",
		Help: "Final scores captured from the scoreboard.",
	})

	// WebsocketClients tracks currently connected live-update clients.
	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "jinx_websocket_clients",
		Help: "Currently connected WebSocket clients.",
	})
)
