package repository

import (
	"context"

	"app/internal/domain/model"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *model.Rating) error

	// FindByOrderID: one rating per order, ErrNotFound when unrated.
	FindByOrderID(ctx context.Context, orderID int64) (model.Rating, error)

	// ListByShop: newest first.
	ListByShop(ctx context.Context, shopID int64, limit int) ([]model.Rating, error)
}
