package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type MenuItemGormRepository struct {
	db *gorm.DB
}

func NewMenuItemGormRepository(db *gorm.DB) *MenuItemGormRepository {
	return &MenuItemGormRepository{db: db}
}

func (r *MenuItemGormRepository) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *MenuItemGormRepository) FindByID(ctx context.Context, itemID int64) (model.MenuItem, error) {
	var m model.MenuItem
	err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.MenuItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.MenuItem{}, err
	}
	return m, nil
}

func (r *MenuItemGormRepository) ListByShop(ctx context.Context, shopID int64, onlyAvailable bool) ([]model.MenuItem, error) {
	q := r.db.WithContext(ctx).Where("shop_id = ?", shopID)
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}
	var items []model.MenuItem
	if err := q.Order("id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuItemGormRepository) Update(ctx context.Context, item model.MenuItem) error {
	// scope is never updated; it stays server-enforced
	res := r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":         item.Name,
			"description":  item.Description,
			"category":     item.Category,
			"price_lkr":    item.PriceLkr,
			"is_available": item.IsAvailable,
			"image_url":    item.ImageURL,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *MenuItemGormRepository) Delete(ctx context.Context, itemID int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&model.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *MenuItemGormRepository) FindForOrder(ctx context.Context, shopID int64, itemIDs []int64) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Where("id IN ?", itemIDs).
		Where("shop_id = ?", shopID).
		Where("is_available = ?", true).
		Where("scope = ?", model.ScopeSriLankanRiceAndCurry).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
