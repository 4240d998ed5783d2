package repository

import (
	"context"

	"app/internal/domain/model"
)

type MenuItemRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	FindByID(ctx context.Context, itemID int64) (model.MenuItem, error)
	ListByShop(ctx context.Context, shopID int64, onlyAvailable bool) ([]model.MenuItem, error)
	Update(ctx context.Context, item model.MenuItem) error
	Delete(ctx context.Context, itemID int64) error

	// FindForOrder resolves the requested ids against this shop, restricted
	// to available items in the enforced food scope. Unknown ids, other
	// shops' items, unavailable or out-of-scope items are simply absent from
	// the result; the caller compares counts.
	FindForOrder(ctx context.Context, shopID int64, itemIDs []int64) ([]model.MenuItem, error)
}
