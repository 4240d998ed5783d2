package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type FlashDealRepository interface {
	Create(ctx context.Context, deal *model.FlashDeal) error
	FindByID(ctx context.Context, dealID int64) (model.FlashDeal, error)
	ListByShop(ctx context.Context, shopID int64) ([]model.FlashDeal, error)
	Update(ctx context.Context, deal model.FlashDeal) error
	Delete(ctx context.Context, dealID int64) error

	// ListActive returns the shop's deals whose window contains now,
	// ordered by start_at then id so first-deal-wins resolution is
	// deterministic.
	ListActive(ctx context.Context, shopID int64, now time.Time) ([]model.FlashDeal, error)
}
