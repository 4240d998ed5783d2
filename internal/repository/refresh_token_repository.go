package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, token model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (model.RefreshToken, error)
	Revoke(ctx context.Context, id string, at time.Time) error
	RevokeAllForUser(ctx context.Context, userID int64, at time.Time) error
}
