package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/presidential-roast/internal/types"
)

// defaultLeaderboardSize bounds the leaderboard query when no limit is given.
const defaultLeaderboardSize = 10

// ErrNotFound is returned when a roast id has no archive row.
var ErrNotFound = errors.New("roast not found")

// RoastRecord is one archived roast.
type RoastRecord struct {
	ID               uuid.UUID      `json:"id"`
	Category         types.Category `json:"type"`
	Content          string         `json:"content"`
	Roast            string         `json:"roast"`
	Score            int            `json:"score"`
	IsExecutiveOrder bool           `json:"isExecutiveOrder"`
	RewardTokens     int            `json:"rewardTokens"`
	ImageURL         string         `json:"imageUrl,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// SaveRoast archives one roast result and returns its id.
func (db *DB) SaveRoast(ctx context.Context, sub types.Submission, result types.RoastResult) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO roasts (id, category, content, roast, score, is_executive_order, reward_tokens, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, string(sub.Category), sub.RawText, result.Text, result.Score,
		result.IsExecutiveOrder, result.RewardTokens, result.ImageURL,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save roast: %w", err)
	}
	return id, nil
}

// GetRoast loads one archived roast by id.
func (db *DB) GetRoast(ctx context.Context, id uuid.UUID) (*RoastRecord, error) {
	var rec RoastRecord
	var category string
	err := db.pool.QueryRow(ctx,
		`SELECT id, category, content, roast, score, is_executive_order, reward_tokens, image_url, created_at
		 FROM roasts WHERE id = $1`,
		id,
	).Scan(&rec.ID, &category, &rec.Content, &rec.Roast, &rec.Score,
		&rec.IsExecutiveOrder, &rec.RewardTokens, &rec.ImageURL, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roast: %w", err)
	}
	rec.Category = types.Category(category)
	return &rec, nil
}

// TopRoasts returns the highest-scoring roasts, newest first within a score.
func (db *DB) TopRoasts(ctx context.Context, limit int) ([]RoastRecord, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, category, content, roast, score, is_executive_order, reward_tokens, image_url, created_at
		 FROM roasts ORDER BY score DESC, created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var records []RoastRecord
	for rows.Next() {
		var rec RoastRecord
		var category string
		if err := rows.Scan(&rec.ID, &category, &rec.Content, &rec.Roast, &rec.Score,
			&rec.IsExecutiveOrder, &rec.RewardTokens, &rec.ImageURL, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		rec.Category = types.Category(category)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}
	return records, nil
}
