package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/pricing"
	repo "app/internal/repository"
)

type CreateFlashDealInput struct {
	Title         string
	DiscountType  string
	DiscountValue int64
	StartAt       time.Time
	EndAt         time.Time
	MenuItemIDs   []int64
}

type UpdateFlashDealInput struct {
	Title    *string
	EndAt    *time.Time
	IsActive *bool
}

type FlashDealUsecase struct {
	deals   repo.FlashDealRepository
	items   repo.MenuItemRepository
	shops   repo.ShopRepository
	pricing *pricing.Engine
	clock   Clock
}

func NewFlashDealUsecase(
	deals repo.FlashDealRepository,
	items repo.MenuItemRepository,
	shops repo.ShopRepository,
	pricingEngine *pricing.Engine,
	clock Clock,
) *FlashDealUsecase {
	return &FlashDealUsecase{deals: deals, items: items, shops: shops, pricing: pricingEngine, clock: clock}
}

// CreateDeal opens a time-windowed discount over a set of the shop's own
// menu items.
func (u *FlashDealUsecase) CreateDeal(ctx context.Context, sellerID, shopID int64, in CreateFlashDealInput) (model.FlashDeal, error) {
	shop, err := u.shops.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.FlashDeal{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return model.FlashDeal{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if shop.SellerID != sellerID {
		return model.FlashDeal{}, NewHTTPError(http.StatusForbidden, "not your shop")
	}
	if shop.ApprovalStatus != model.ApprovalApproved {
		return model.FlashDeal{}, NewHTTPError(http.StatusForbidden, "shop is not approved")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" || len(title) > 80 {
		return model.FlashDeal{}, NewHTTPError(http.StatusBadRequest, "title must be 1-80 characters")
	}

	discountType := model.DiscountType(in.DiscountType)
	switch discountType {
	case model.DiscountPercent:
		if in.DiscountValue < model.DealPercentMin || in.DiscountValue > model.DealPercentMax {
			return model.FlashDeal{}, NewHTTPError(http.StatusBadRequest, "percent discount must be 1-90")
		}
	case model.DiscountFlatLkr:
		if in.DiscountValue < model.DealFlatMinLkr {
			return model.FlashDeal{}, NewHTTPError(http.StatusBadRequest, "flat discount too small")
		}
	default:
		return model.FlashDeal{}, NewHTTPError(http.StatusBadRequest, "invalid discount type")
	}

	if !in.EndAt.After(in.StartAt) {
		return model.FlashDeal{}, NewHTTPError(http.StatusBadRequest, "end_at must be after start_at")
	}
	if len(in.MenuItemIDs) == 0 {
		return model.FlashDeal{}, NewHTTPError(http.StatusBadRequest, "at least one menu item is required")
	}

	// every referenced item must belong to this shop
	found, err := u.items.FindForOrder(ctx, shopID, in.MenuItemIDs)
	if err != nil {
		return model.FlashDeal{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(found) != len(uniqueIDs(in.MenuItemIDs)) {
		return model.FlashDeal{}, NewHTTPError(http.StatusBadRequest, "unknown menu item in deal")
	}

	now := u.clock.Now()
	deal := model.FlashDeal{
		ShopID:        shopID,
		SellerID:      sellerID,
		Title:         title,
		DiscountType:  discountType,
		DiscountValue: in.DiscountValue,
		StartAt:       in.StartAt,
		EndAt:         in.EndAt,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, id := range uniqueIDs(in.MenuItemIDs) {
		deal.Items = append(deal.Items, model.FlashDealItem{MenuItemID: id})
	}
	if err := u.deals.Create(ctx, &deal); err != nil {
		return model.FlashDeal{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return deal, nil
}

func (u *FlashDealUsecase) ListShopDeals(ctx context.Context, shopID int64) ([]model.FlashDeal, error) {
	deals, err := u.deals.ListByShop(ctx, shopID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return deals, nil
}

// DealItemPriceOutput is one discounted item on the storefront deal view.
type DealItemPriceOutput struct {
	MenuItemID         int64  `json:"menu_item_id"`
	Name               string `json:"name"`
	PriceLkr           int64  `json:"price_lkr"`
	DiscountedPriceLkr int64  `json:"discounted_price_lkr"`
}

type ActiveDealOutput struct {
	ID            int64                 `json:"id"`
	Title         string                `json:"title"`
	DiscountType  model.DiscountType    `json:"discount_type"`
	DiscountValue int64                 `json:"discount_value"`
	StartAt       time.Time             `json:"start_at"`
	EndAt         time.Time             `json:"end_at"`
	Items         []DealItemPriceOutput `json:"items"`
}

// ListActiveDeals is what the storefront shows: deals whose window contains
// now, in deterministic order, with the discounted price computed per item.
// Only items still orderable (available, in scope) are listed.
func (u *FlashDealUsecase) ListActiveDeals(ctx context.Context, shopID int64) ([]ActiveDealOutput, error) {
	deals, err := u.deals.ListActive(ctx, shopID, u.clock.Now())
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ids := make([]int64, 0)
	for _, d := range deals {
		for _, it := range d.Items {
			ids = append(ids, it.MenuItemID)
		}
	}

	byID := make(map[int64]model.MenuItem)
	if len(ids) > 0 {
		found, err := u.items.FindForOrder(ctx, shopID, uniqueIDs(ids))
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		for _, m := range found {
			byID[m.ID] = m
		}
	}

	out := make([]ActiveDealOutput, 0, len(deals))
	for _, d := range deals {
		view := ActiveDealOutput{
			ID:            d.ID,
			Title:         d.Title,
			DiscountType:  d.DiscountType,
			DiscountValue: d.DiscountValue,
			StartAt:       d.StartAt,
			EndAt:         d.EndAt,
			Items:         []DealItemPriceOutput{},
		}
		for _, it := range d.Items {
			m, ok := byID[it.MenuItemID]
			if !ok {
				continue
			}
			view.Items = append(view.Items, DealItemPriceOutput{
				MenuItemID:         m.ID,
				Name:               m.Name,
				PriceLkr:           m.PriceLkr,
				DiscountedPriceLkr: u.pricing.DiscountedPrice(m.PriceLkr, d.DiscountType, d.DiscountValue),
			})
		}
		out = append(out, view)
	}
	return out, nil
}

func (u *FlashDealUsecase) UpdateDeal(ctx context.Context, sellerID, dealID int64, in UpdateFlashDealInput) (model.FlashDeal, error) {
	deal, err := u.ownedDeal(ctx, sellerID, dealID)
	if err != nil {
		return model.FlashDeal{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" || len(title) > 80 {
			return model.FlashDeal{}, NewHTTPError(http.StatusBadRequest, "title must be 1-80 characters")
		}
		deal.Title = title
	}
	if in.EndAt != nil {
		if !in.EndAt.After(deal.StartAt) {
			return model.FlashDeal{}, NewHTTPError(http.StatusBadRequest, "end_at must be after start_at")
		}
		deal.EndAt = *in.EndAt
	}
	if in.IsActive != nil {
		deal.IsActive = *in.IsActive
	}

	deal.UpdatedAt = u.clock.Now()
	if err := u.deals.Update(ctx, deal); err != nil {
		return model.FlashDeal{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return deal, nil
}

func (u *FlashDealUsecase) DeleteDeal(ctx context.Context, sellerID, dealID int64) error {
	if _, err := u.ownedDeal(ctx, sellerID, dealID); err != nil {
		return err
	}
	if err := u.deals.Delete(ctx, dealID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *FlashDealUsecase) ownedDeal(ctx context.Context, sellerID, dealID int64) (model.FlashDeal, error) {
	deal, err := u.deals.FindByID(ctx, dealID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.FlashDeal{}, NewHTTPError(http.StatusNotFound, "deal not found")
	}
	if err != nil {
		return model.FlashDeal{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if deal.SellerID != sellerID {
		return model.FlashDeal{}, NewHTTPError(http.StatusForbidden, "not your deal")
	}
	return deal, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
