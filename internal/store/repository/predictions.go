package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/jinx/internal/store"
)

// PredictionRepository handles prediction data access
type PredictionRepository struct {
	db *store.Database
}

// NewPredictionRepository creates a new prediction repository
func NewPredictionRepository(db *store.Database) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Upsert saves a prediction, replacing any earlier pick for the same user and
// game. Re-running the engine or editing a pick always wins over the old row.
func (r *PredictionRepository) Upsert(ctx context.Context, p *store.Prediction) error {
	query := `
		INSERT INTO predictions (user_id, game_id, home_score, away_score, predicted_winner,
			user_home_score, user_away_score, user_predicted_winner, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (user_id, game_id)
		DO UPDATE SET
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			predicted_winner = EXCLUDED.predicted_winner,
			user_home_score = EXCLUDED.user_home_score,
			user_away_score = EXCLUDED.user_away_score,
			user_predicted_winner = EXCLUDED.user_predicted_winner,
			updated_at = NOW()
	`

	_, err := r.db.DB().ExecContext(ctx, query,
		p.UserID, p.GameID, p.HomeScore, p.AwayScore, p.PredictedWinner,
		p.UserHomeScore, p.UserAwayScore, p.UserPredictedWinner,
	)
	if err != nil {
		return fmt.Errorf("upserting prediction: %w", err)
	}

	return nil
}

// GetByGame finds a prediction for a single game
func (r *PredictionRepository) GetByGame(ctx context.Context, userID, gameID string) (*store.Prediction, error) {
	query := `
		SELECT user_id, game_id, home_score, away_score, predicted_winner,
			user_home_score, user_away_score, user_predicted_winner, created_at, updated_at
		FROM predictions
		WHERE user_id = $1 AND game_id = $2
	`

	p := &store.Prediction{}
	err := r.db.DB().QueryRowContext(ctx, query, userID, gameID).Scan(
		&p.UserID, &p.GameID, &p.HomeScore, &p.AwayScore, &p.PredictedWinner,
		&p.UserHomeScore, &p.UserAwayScore, &p.UserPredictedWinner,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("prediction not found: %s", gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying prediction: %w", err)
	}

	return p, nil
}

// ListByUser returns all predictions saved by a user, oldest game first
func (r *PredictionRepository) ListByUser(ctx context.Context, userID string) ([]*store.Prediction, error) {
	query := `
		SELECT user_id, game_id, home_score, away_score, predicted_winner,
			user_home_score, user_away_score, user_predicted_winner, created_at, updated_at
		FROM predictions
		WHERE user_id = $1
		ORDER BY game_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying predictions: %w", err)
	}
	defer rows.Close()

	var predictions []*store.Prediction
	for rows.Next() {
		p := &store.Prediction{}
		if err := rows.Scan(
			&p.UserID, &p.GameID, &p.HomeScore, &p.AwayScore, &p.PredictedWinner,
			&p.UserHomeScore, &p.UserAwayScore, &p.UserPredictedWinner,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning prediction: %w", err)
		}
		predictions = append(predictions, p)
	}

	return predictions, rows.Err()
}
