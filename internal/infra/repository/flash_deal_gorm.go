package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type FlashDealGormRepository struct {
	db *gorm.DB
}

func NewFlashDealGormRepository(db *gorm.DB) *FlashDealGormRepository {
	return &FlashDealGormRepository{db: db}
}

func (r *FlashDealGormRepository) Create(ctx context.Context, deal *model.FlashDeal) error {
	// inserts flash_deal_items rows through the association
	return r.db.WithContext(ctx).Create(deal).Error
}

func (r *FlashDealGormRepository) FindByID(ctx context.Context, dealID int64) (model.FlashDeal, error) {
	var d model.FlashDeal
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", dealID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FlashDeal{}, repo.ErrNotFound
	}
	if err != nil {
		return model.FlashDeal{}, err
	}
	return d, nil
}

func (r *FlashDealGormRepository) ListByShop(ctx context.Context, shopID int64) ([]model.FlashDeal, error) {
	var deals []model.FlashDeal
	err := r.db.WithContext(ctx).Preload("Items").
		Where("shop_id = ?", shopID).
		Order("id desc").
		Find(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *FlashDealGormRepository) Update(ctx context.Context, deal model.FlashDeal) error {
	res := r.db.WithContext(ctx).Model(&model.FlashDeal{}).
		Where("id = ?", deal.ID).
		Updates(map[string]interface{}{
			"title":     deal.Title,
			"end_at":    deal.EndAt,
			"is_active": deal.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *FlashDealGormRepository) Delete(ctx context.Context, dealID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deal_id = ?", dealID).Delete(&model.FlashDealItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", dealID).Delete(&model.FlashDeal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}

func (r *FlashDealGormRepository) ListActive(ctx context.Context, shopID int64, now time.Time) ([]model.FlashDeal, error) {
	// deterministic order: earliest start_at first, then lowest id, so
	// first-deal-wins resolution never depends on incidental store order
	var deals []model.FlashDeal
	err := r.db.WithContext(ctx).Preload("Items").
		Where("shop_id = ? AND is_active = ?", shopID, true).
		Where("start_at <= ? AND end_at > ?", now, now).
		Order("start_at asc, id asc").
		Find(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}
