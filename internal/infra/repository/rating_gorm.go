package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type RatingGormRepository struct {
	db *gorm.DB
}

func NewRatingGormRepository(db *gorm.DB) *RatingGormRepository {
	return &RatingGormRepository{db: db}
}

func (r *RatingGormRepository) Create(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *RatingGormRepository) FindByOrderID(ctx context.Context, orderID int64) (model.Rating, error) {
	var rt model.Rating
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Rating{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Rating{}, err
	}
	return rt, nil
}

func (r *RatingGormRepository) ListByShop(ctx context.Context, shopID int64, limit int) ([]model.Rating, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var ratings []model.Rating
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at desc").
		Limit(limit).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
