package repository

import (
	"context"
	"time"

	"ifuut-api/internal/infra"
	"ifuut-api/internal/infra/db"
)

type APITokenRepository struct {
	db db.DBTX
}

func NewAPITokenRepository(db db.DBTX) *APITokenRepository {
	return &APITokenRepository{db: db}
}

func (r *APITokenRepository) GetOrCreate(ctx context.Context, userID int64, candidate string, now time.Time) (string, error) {
	// the no-op update makes RETURNING yield the existing key on conflict
	var key string
	err := r.db.QueryRow(ctx, `
		INSERT INTO api_tokens (key, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING key`, candidate, userID, now,
	).Scan(&key)
	if err != nil {
		return "", infra.WrapRepoErr("failed to get or create api token", err)
	}
	return key, nil
}
