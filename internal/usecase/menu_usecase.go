package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CreateMenuItemInput struct {
	Name        string
	Description string
	Category    string
	PriceLkr    int64
	ImageURL    string
}

type UpdateMenuItemInput struct {
	Name        *string
	Description *string
	Category    *string
	PriceLkr    *int64
	IsAvailable *bool
	ImageURL    *string
}

type MenuUsecase struct {
	items repo.MenuItemRepository
	shops repo.ShopRepository
	clock Clock
}

func NewMenuUsecase(items repo.MenuItemRepository, shops repo.ShopRepository, clock Clock) *MenuUsecase {
	return &MenuUsecase{items: items, shops: shops, clock: clock}
}

// CreateItem adds a menu item to the seller's shop. The food scope is fixed
// server-side; clients cannot set or change it.
func (u *MenuUsecase) CreateItem(ctx context.Context, sellerID, shopID int64, in CreateMenuItemInput) (model.MenuItem, error) {
	shop, err := u.ownedShop(ctx, sellerID, shopID)
	if err != nil {
		return model.MenuItem{}, err
	}
	if shop.ApprovalStatus != model.ApprovalApproved {
		return model.MenuItem{}, NewHTTPError(http.StatusForbidden, "shop is not approved")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 80 {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "name must be 1-80 characters")
	}
	if len(in.Description) > 300 {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "description too long")
	}
	category := model.MenuCategory(in.Category)
	if !model.ValidMenuCategory(category) {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if in.PriceLkr < model.MenuItemMinPriceLkr || in.PriceLkr > model.MenuItemMaxPriceLkr {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "price out of range")
	}

	now := u.clock.Now()
	item := model.MenuItem{
		ShopID:      shopID,
		SellerID:    sellerID,
		Scope:       model.ScopeSriLankanRiceAndCurry,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Category:    category,
		PriceLkr:    in.PriceLkr,
		IsAvailable: true,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.items.Create(ctx, &item); err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

// ListShopMenu is the public menu of a shop; only available items are shown
// unless the caller is the owning seller.
func (u *MenuUsecase) ListShopMenu(ctx context.Context, shopID int64, includeUnavailable bool) ([]model.MenuItem, error) {
	if _, err := u.shops.FindByID(ctx, shopID); errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "shop not found")
	} else if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.items.ListByShop(ctx, shopID, !includeUnavailable)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *MenuUsecase) UpdateItem(ctx context.Context, sellerID, itemID int64, in UpdateMenuItemInput) (model.MenuItem, error) {
	item, err := u.ownedItem(ctx, sellerID, itemID)
	if err != nil {
		return model.MenuItem{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || len(name) > 80 {
			return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "name must be 1-80 characters")
		}
		item.Name = name
	}
	if in.Description != nil {
		if len(*in.Description) > 300 {
			return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "description too long")
		}
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		category := model.MenuCategory(*in.Category)
		if !model.ValidMenuCategory(category) {
			return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid category")
		}
		item.Category = category
	}
	if in.PriceLkr != nil {
		if *in.PriceLkr < model.MenuItemMinPriceLkr || *in.PriceLkr > model.MenuItemMaxPriceLkr {
			return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "price out of range")
		}
		item.PriceLkr = *in.PriceLkr
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*in.ImageURL)
	}

	item.UpdatedAt = u.clock.Now()
	if err := u.items.Update(ctx, item); err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

func (u *MenuUsecase) DeleteItem(ctx context.Context, sellerID, itemID int64) error {
	if _, err := u.ownedItem(ctx, sellerID, itemID); err != nil {
		return err
	}
	if err := u.items.Delete(ctx, itemID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *MenuUsecase) ownedShop(ctx context.Context, sellerID, shopID int64) (model.Shop, error) {
	shop, err := u.shops.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if shop.SellerID != sellerID {
		return model.Shop{}, NewHTTPError(http.StatusForbidden, "not your shop")
	}
	return shop, nil
}

func (u *MenuUsecase) ownedItem(ctx context.Context, sellerID, itemID int64) (model.MenuItem, error) {
	item, err := u.items.FindByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "menu item not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if item.SellerID != sellerID {
		return model.MenuItem{}, NewHTTPError(http.StatusForbidden, "not your menu item")
	}
	return item, nil
}
