package service

import (
	"context"
	"database/sql"
	"log"

	"github.com/fortuna/jinx/internal/metrics"
	"github.com/fortuna/jinx/internal/nfl"
	"github.com/fortuna/jinx/internal/store"
	"github.com/fortuna/jinx/internal/store/localkv"
	"github.com/fortuna/jinx/internal/store/repository"
)

// predictionStore is the remote pick store. *repository.PredictionRepository
// is the production implementation.
type predictionStore interface {
	Upsert(ctx context.Context, p *store.Prediction) error
	ListByUser(ctx context.Context, userID string) ([]*store.Prediction, error)
}

// resultStore is the remote finals store. *repository.ResultRepository is the
// production implementation.
type resultStore interface {
	Record(ctx context.Context, res *store.GameResult) error
	List(ctx context.Context) ([]*store.GameResult, error)
}

// PredictionService handles pick and result persistence. PostgreSQL is the
// primary store; the local file store is the fallback, so a database outage
// degrades durability but never drops a save.
type PredictionService struct {
	predictions predictionStore
	results     resultStore
	local       *localkv.Store
	userID      string
}

// NewPredictionService creates a new prediction service. db may be nil when
// PostgreSQL is not configured; the service then runs on the local store only.
func NewPredictionService(db *store.Database, local *localkv.Store, userID string) *PredictionService {
	s := &PredictionService{
		local:  local,
		userID: userID,
	}
	if db != nil {
		s.predictions = repository.NewPredictionRepository(db)
		s.results = repository.NewResultRepository(db)
	}
	return s
}

// Save persists a pick, overwriting any earlier pick for the same game. On a
// remote failure the pick lands in the local overlay instead.
func (s *PredictionService) Save(ctx context.Context, p nfl.UserPrediction) error {
	if s.predictions != nil {
		err := s.predictions.Upsert(ctx, toPredictionRow(s.userID, p))
		if err == nil {
			metrics.PredictionsSaved.WithLabelValues("postgres").Inc()
			// A successful remote save supersedes any pick stranded in the
			// overlay during an earlier outage.
			s.dropOverlayEntry(localkv.KeyPredictions, p.GameID)
			return nil
		}
		log.Printf("[predictions] remote save failed for %s, falling back to local store: %v", p.GameID, err)
	}

	overlay := map[string]nfl.UserPrediction{}
	if _, err := s.local.Get(localkv.KeyPredictions, &overlay); err != nil {
		return err
	}
	overlay[p.GameID] = p
	if err := s.local.Set(localkv.KeyPredictions, overlay); err != nil {
		return err
	}
	metrics.PredictionsSaved.WithLabelValues("local").Inc()
	return nil
}

// Load returns all saved picks keyed by game id. Picks saved during a
// database outage live in the local overlay and shadow the remote rows.
func (s *PredictionService) Load(ctx context.Context) (map[string]nfl.UserPrediction, error) {
	picks := map[string]nfl.UserPrediction{}

	if s.predictions != nil {
		rows, err := s.predictions.ListByUser(ctx, s.userID)
		if err != nil {
			log.Printf("[predictions] remote load failed, serving local store only: %v", err)
		} else {
			for _, row := range rows {
				picks[row.GameID] = fromPredictionRow(row)
			}
		}
	}

	overlay := map[string]nfl.UserPrediction{}
	if _, err := s.local.Get(localkv.KeyPredictions, &overlay); err != nil {
		return nil, err
	}
	for id, p := range overlay {
		picks[id] = p
	}

	return picks, nil
}

// RecordResult stores a final score exactly once. Replays of an already
// recorded game are ignored on every path.
func (s *PredictionService) RecordResult(ctx context.Context, res nfl.GameResult) error {
	if s.results != nil {
		err := s.results.Record(ctx, toResultRow(res))
		if err == nil {
			return nil
		}
		log.Printf("[predictions] remote result write failed for %s, falling back to local store: %v", res.GameID, err)
	}

	stored := map[string]nfl.GameResult{}
	if _, err := s.local.Get(localkv.KeyResults, &stored); err != nil {
		return err
	}
	if _, exists := stored[res.GameID]; exists {
		return nil
	}
	stored[res.GameID] = res
	return s.local.Set(localkv.KeyResults, stored)
}

// Results returns all recorded finals keyed by game id. When a game has both
// a local and a remote row the local one wins: it was captured at final time
// during an outage, so it is the first-observed score and a later remote row
// for the same game is a correction the write-once policy ignores.
func (s *PredictionService) Results(ctx context.Context) (map[string]nfl.GameResult, error) {
	results := map[string]nfl.GameResult{}

	if s.results != nil {
		rows, err := s.results.List(ctx)
		if err != nil {
			log.Printf("[predictions] remote result load failed, serving local store only: %v", err)
		} else {
			for _, row := range rows {
				results[row.GameID] = fromResultRow(row)
			}
		}
	}

	stored := map[string]nfl.GameResult{}
	if _, err := s.local.Get(localkv.KeyResults, &stored); err != nil {
		return nil, err
	}
	for id, res := range stored {
		results[id] = res
	}

	return results, nil
}

func (s *PredictionService) dropOverlayEntry(key, gameID string) {
	overlay := map[string]nfl.UserPrediction{}
	ok, err := s.local.Get(key, &overlay)
	if err != nil || !ok {
		return
	}
	if _, exists := overlay[gameID]; !exists {
		return
	}
	delete(overlay, gameID)
	if err := s.local.Set(key, overlay); err != nil {
		log.Printf("[predictions] failed to prune local overlay for %s: %v", gameID, err)
	}
}

func toPredictionRow(userID string, p nfl.UserPrediction) *store.Prediction {
	return &store.Prediction{
		UserID:              userID,
		GameID:              p.GameID,
		HomeScore:           p.HomeScore,
		AwayScore:           p.AwayScore,
		PredictedWinner:     p.PredictedWinner,
		UserHomeScore:       nullable(p.UserHomeScore),
		UserAwayScore:       nullable(p.UserAwayScore),
		UserPredictedWinner: nullable(p.UserPredictedWinner),
	}
}

func fromPredictionRow(row *store.Prediction) nfl.UserPrediction {
	return nfl.UserPrediction{
		GameID:              row.GameID,
		HomeScore:           row.HomeScore,
		AwayScore:           row.AwayScore,
		PredictedWinner:     row.PredictedWinner,
		UserHomeScore:       row.UserHomeScore.String,
		UserAwayScore:       row.UserAwayScore.String,
		UserPredictedWinner: row.UserPredictedWinner.String,
	}
}

func toResultRow(res nfl.GameResult) *store.GameResult {
	return &store.GameResult{
		GameID:    res.GameID,
		HomeAbbr:  res.HomeAbbr,
		AwayAbbr:  res.AwayAbbr,
		HomeName:  res.HomeName,
		AwayName:  res.AwayName,
		HomeScore: res.HomeScore,
		AwayScore: res.AwayScore,
		Spread:    nullable(res.Spread),
	}
}

func fromResultRow(row *store.GameResult) nfl.GameResult {
	return nfl.GameResult{
		GameID:    row.GameID,
		HomeAbbr:  row.HomeAbbr,
		AwayAbbr:  row.AwayAbbr,
		HomeName:  row.HomeName,
		AwayName:  row.AwayName,
		HomeScore: row.HomeScore,
		AwayScore: row.AwayScore,
		Spread:    row.Spread.String,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
