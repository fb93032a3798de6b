package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/jinx/internal/store"
)

// ResultRepository handles final-score data access
type ResultRepository struct {
	db *store.Database
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *store.Database) *ResultRepository {
	return &ResultRepository{db: db}
}

// Record stores a final score if none exists for the game yet. The first
// snapshot wins; replays of the same final are silently ignored so late
// scoreboard corrections cannot rewrite graded standings.
func (r *ResultRepository) Record(ctx context.Context, res *store.GameResult) error {
	query := `
		INSERT INTO results (game_id, home_abbr, away_abbr, home_name, away_name,
			home_score, away_score, spread, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (game_id) DO NOTHING
	`

	_, err := r.db.DB().ExecContext(ctx, query,
		res.GameID, res.HomeAbbr, res.AwayAbbr, res.HomeName, res.AwayName,
		res.HomeScore, res.AwayScore, res.Spread,
	)
	if err != nil {
		return fmt.Errorf("recording result: %w", err)
	}

	return nil
}

// List returns every recorded final score
func (r *ResultRepository) List(ctx context.Context) ([]*store.GameResult, error) {
	query := `
		SELECT game_id, home_abbr, away_abbr, home_name, away_name,
			home_score, away_score, spread, created_at
		FROM results
		ORDER BY game_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []*store.GameResult
	for rows.Next() {
		res := &store.GameResult{}
		if err := rows.Scan(
			&res.GameID, &res.HomeAbbr, &res.AwayAbbr, &res.HomeName, &res.AwayName,
			&res.HomeScore, &res.AwayScore, &res.Spread, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}
