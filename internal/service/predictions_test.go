package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fortuna/jinx/internal/nfl"
	"github.com/fortuna/jinx/internal/store"
	"github.com/fortuna/jinx/internal/store/localkv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalOnlyService(t *testing.T) *PredictionService {
	t.Helper()
	local, err := localkv.Open(filepath.Join(t.TempDir(), "jinx.json"))
	require.NoError(t, err)
	return NewPredictionService(nil, local, "default")
}

// fakePredictionRepo stands in for the PostgreSQL pick repository. failWrites
// simulates the database being down.
type fakePredictionRepo struct {
	failWrites bool
	rows       []*store.Prediction
	upserts    int
}

func (r *fakePredictionRepo) Upsert(ctx context.Context, p *store.Prediction) error {
	if r.failWrites {
		return errors.New("dial tcp 127.0.0.1:5434: connection refused")
	}
	r.upserts++
	r.rows = append(r.rows, p)
	return nil
}

func (r *fakePredictionRepo) ListByUser(ctx context.Context, userID string) ([]*store.Prediction, error) {
	return r.rows, nil
}

type fakeResultRepo struct {
	failWrites bool
	rows       []*store.GameResult
}

func (r *fakeResultRepo) Record(ctx context.Context, res *store.GameResult) error {
	if r.failWrites {
		return errors.New("dial tcp 127.0.0.1:5434: connection refused")
	}
	r.rows = append(r.rows, res)
	return nil
}

func (r *fakeResultRepo) List(ctx context.Context) ([]*store.GameResult, error) {
	return r.rows, nil
}

func newFakeBackedService(t *testing.T, preds *fakePredictionRepo, results *fakeResultRepo) (*PredictionService, *localkv.Store) {
	t.Helper()
	local, err := localkv.Open(filepath.Join(t.TempDir(), "jinx.json"))
	require.NoError(t, err)
	svc := NewPredictionService(nil, local, "default")
	if preds != nil {
		svc.predictions = preds
	}
	if results != nil {
		svc.results = results
	}
	return svc, local
}

func TestSaveFallsBackToLocalStore(t *testing.T) {
	svc := newLocalOnlyService(t)
	ctx := context.Background()

	pick := nfl.UserPrediction{
		GameID:          "nfl-w16-kc-den",
		HomeScore:       "27",
		AwayScore:       "17",
		PredictedWinner: "Denver Broncos",
	}
	require.NoError(t, svc.Save(ctx, pick))

	// With no database reachable, the pick must still round-trip.
	picks, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, pick, picks["nfl-w16-kc-den"])
}

func TestSaveOverwritesEarlierPick(t *testing.T) {
	svc := newLocalOnlyService(t)
	ctx := context.Background()

	first := nfl.UserPrediction{GameID: "g1", HomeScore: "27", AwayScore: "17", PredictedWinner: "Denver Broncos"}
	second := nfl.UserPrediction{GameID: "g1", HomeScore: "20", AwayScore: "23", PredictedWinner: "Kansas City Chiefs"}

	require.NoError(t, svc.Save(ctx, first))
	require.NoError(t, svc.Save(ctx, second))

	picks, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, picks, 1)
	assert.Equal(t, second, picks["g1"])
}

func TestRecordResultIsWriteOnce(t *testing.T) {
	svc := newLocalOnlyService(t)
	ctx := context.Background()

	first := nfl.GameResult{GameID: "g1", HomeScore: 27, AwayScore: 24, HomeAbbr: "DEN", AwayAbbr: "KC"}
	corrected := nfl.GameResult{GameID: "g1", HomeScore: 28, AwayScore: 24, HomeAbbr: "DEN", AwayAbbr: "KC"}

	require.NoError(t, svc.RecordResult(ctx, first))
	require.NoError(t, svc.RecordResult(ctx, corrected))

	results, err := svc.Results(ctx)
	require.NoError(t, err)

	// The first observed final sticks; late corrections never re-grade.
	assert.Equal(t, 27, results["g1"].HomeScore)
}

func TestSaveSurvivesRemoteWriteFailure(t *testing.T) {
	repo := &fakePredictionRepo{failWrites: true}
	svc, local := newFakeBackedService(t, repo, nil)
	ctx := context.Background()

	pick := nfl.UserPrediction{
		GameID:          "nfl-w16-kc-den",
		HomeScore:       "27",
		AwayScore:       "17",
		PredictedWinner: "Denver Broncos",
	}
	require.NoError(t, svc.Save(ctx, pick))

	// The failed upsert must land the pick in the local overlay.
	overlay := map[string]nfl.UserPrediction{}
	ok, err := local.Get(localkv.KeyPredictions, &overlay)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, pick, overlay["nfl-w16-kc-den"])

	// On read the overlay shadows a stale remote row for the same game.
	repo.rows = []*store.Prediction{{
		UserID:          "default",
		GameID:          "nfl-w16-kc-den",
		HomeScore:       "10",
		AwayScore:       "3",
		PredictedWinner: "Kansas City Chiefs",
	}}
	picks, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, pick, picks["nfl-w16-kc-den"])
}

func TestSuccessfulSavePrunesOverlay(t *testing.T) {
	repo := &fakePredictionRepo{failWrites: true}
	svc, local := newFakeBackedService(t, repo, nil)
	ctx := context.Background()

	pick := nfl.UserPrediction{GameID: "g1", HomeScore: "24", AwayScore: "20", PredictedWinner: "Denver Broncos"}
	require.NoError(t, svc.Save(ctx, pick)) // outage, stranded in the overlay

	repo.failWrites = false
	require.NoError(t, svc.Save(ctx, pick)) // database back up

	require.Equal(t, 1, repo.upserts)

	overlay := map[string]nfl.UserPrediction{}
	_, err := local.Get(localkv.KeyPredictions, &overlay)
	require.NoError(t, err)
	assert.NotContains(t, overlay, "g1")
}

func TestResultsKeepFirstObservedFinal(t *testing.T) {
	repo := &fakeResultRepo{failWrites: true}
	svc, _ := newFakeBackedService(t, nil, repo)
	ctx := context.Background()

	// Final captured during an outage lands locally.
	observed := nfl.GameResult{GameID: "g1", HomeScore: 27, AwayScore: 24, HomeAbbr: "DEN", AwayAbbr: "KC"}
	require.NoError(t, svc.RecordResult(ctx, observed))

	// A corrected score later shows up remotely, plus an unrelated game.
	repo.failWrites = false
	repo.rows = []*store.GameResult{
		{GameID: "g1", HomeScore: 28, AwayScore: 24, HomeAbbr: "DEN", AwayAbbr: "KC"},
		{GameID: "g2", HomeScore: 31, AwayScore: 13, HomeAbbr: "BUF", AwayAbbr: "CLE"},
	}

	results, err := svc.Results(ctx)
	require.NoError(t, err)

	// First observation wins for g1; remote-only games pass through.
	assert.Equal(t, 27, results["g1"].HomeScore)
	assert.Equal(t, 31, results["g2"].HomeScore)
}

func TestLoadEmptyStore(t *testing.T) {
	svc := newLocalOnlyService(t)

	picks, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, picks)

	results, err := svc.Results(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}
