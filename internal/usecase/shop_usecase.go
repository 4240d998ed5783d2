package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CreateShopInput struct {
	Name    string
	Address string
	Phone   string
}

type UpdateShopInput struct {
	Name     *string
	Address  *string
	Phone    *string
	IsActive *bool
}

type ShopUsecase struct {
	shops repo.ShopRepository
	clock Clock
}

func NewShopUsecase(shops repo.ShopRepository, clock Clock) *ShopUsecase {
	return &ShopUsecase{shops: shops, clock: clock}
}

// CreateShop registers a new kitchen for the seller. It starts PENDING and
// becomes orderable only after admin approval.
func (u *ShopUsecase) CreateShop(ctx context.Context, sellerID int64, in CreateShopInput) (model.Shop, error) {
	name := strings.TrimSpace(in.Name)
	address := strings.TrimSpace(in.Address)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || len(name) > 80 {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "name must be 1-80 characters")
	}
	if address == "" || len(address) > 200 {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "address must be 1-200 characters")
	}
	if phone == "" || len(phone) > 30 {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "phone must be 1-30 characters")
	}

	now := u.clock.Now()
	shop := model.Shop{
		SellerID:       sellerID,
		Name:           name,
		Address:        address,
		Phone:          phone,
		ApprovalStatus: model.ApprovalPending,
		IsActive:       true,
		CommissionRate: model.DefaultCommissionRate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.shops.Create(ctx, &shop); err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shop, nil
}

func (u *ShopUsecase) ListMyShops(ctx context.Context, sellerID int64) ([]model.Shop, error) {
	shops, err := u.shops.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shops, nil
}

// ListShops is the public storefront listing: approved and active only.
func (u *ShopUsecase) ListShops(ctx context.Context, limit int) ([]model.Shop, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	shops, err := u.shops.ListApproved(ctx, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shops, nil
}

func (u *ShopUsecase) GetShop(ctx context.Context, shopID int64) (model.Shop, error) {
	shop, err := u.shops.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shop, nil
}

func (u *ShopUsecase) UpdateShop(ctx context.Context, sellerID, shopID int64, in UpdateShopInput) (model.Shop, error) {
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

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || len(name) > 80 {
			return model.Shop{}, NewHTTPError(http.StatusBadRequest, "name must be 1-80 characters")
		}
		shop.Name = name
	}
	if in.Address != nil {
		address := strings.TrimSpace(*in.Address)
		if address == "" || len(address) > 200 {
			return model.Shop{}, NewHTTPError(http.StatusBadRequest, "address must be 1-200 characters")
		}
		shop.Address = address
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if phone == "" || len(phone) > 30 {
			return model.Shop{}, NewHTTPError(http.StatusBadRequest, "phone must be 1-30 characters")
		}
		shop.Phone = phone
	}
	if in.IsActive != nil {
		shop.IsActive = *in.IsActive
	}

	shop.UpdatedAt = u.clock.Now()
	if err := u.shops.Update(ctx, shop); err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shop, nil
}
