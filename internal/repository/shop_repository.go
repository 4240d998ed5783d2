package repository

import (
	"context"

	"app/internal/domain/model"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *model.Shop) error
	FindByID(ctx context.Context, shopID int64) (model.Shop, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]model.Shop, error)

	// ListApproved returns active, approved shops for the public listing.
	ListApproved(ctx context.Context, limit int) ([]model.Shop, error)

	UpdateApproval(ctx context.Context, shopID int64, status model.ApprovalStatus, rejectionReason string) error
	Update(ctx context.Context, shop model.Shop) error
}
