package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ShopGormRepository struct {
	db *gorm.DB
}

func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{db: db}
}

func (r *ShopGormRepository) Create(ctx context.Context, shop *model.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *ShopGormRepository) FindByID(ctx context.Context, shopID int64) (model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).Where("id = ?", shopID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

func (r *ShopGormRepository) ListBySeller(ctx context.Context, sellerID int64) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id desc").
		Find(&shops).Error
	if err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *ShopGormRepository) ListApproved(ctx context.Context, limit int) ([]model.Shop, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Where("approval_status = ? AND is_active = ?", model.ApprovalApproved, true).
		Order("id desc").
		Limit(limit).
		Find(&shops).Error
	if err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *ShopGormRepository) UpdateApproval(ctx context.Context, shopID int64, status model.ApprovalStatus, rejectionReason string) error {
	res := r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("id = ?", shopID).
		Updates(map[string]interface{}{
			"approval_status":  status,
			"rejection_reason": rejectionReason,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShopGormRepository) Update(ctx context.Context, shop model.Shop) error {
	res := r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("id = ?", shop.ID).
		Updates(map[string]interface{}{
			"name":      shop.Name,
			"address":   shop.Address,
			"phone":     shop.Phone,
			"is_active": shop.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
