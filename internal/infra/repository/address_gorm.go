package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type StudentAddressGormRepository struct {
	db *gorm.DB
}

func NewStudentAddressGormRepository(db *gorm.DB) *StudentAddressGormRepository {
	return &StudentAddressGormRepository{db: db}
}

func (r *StudentAddressGormRepository) Create(ctx context.Context, address *model.StudentAddress) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *StudentAddressGormRepository) FindByID(ctx context.Context, addressID int64) (model.StudentAddress, error) {
	var a model.StudentAddress
	err := r.db.WithContext(ctx).Where("id = ?", addressID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StudentAddress{}, repo.ErrNotFound
	}
	if err != nil {
		return model.StudentAddress{}, err
	}
	return a, nil
}

func (r *StudentAddressGormRepository) ListByUser(ctx context.Context, userID int64) ([]model.StudentAddress, error) {
	var addrs []model.StudentAddress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default desc, id desc").
		Find(&addrs).Error
	if err != nil {
		return nil, err
	}
	return addrs, nil
}

func (r *StudentAddressGormRepository) Update(ctx context.Context, address model.StudentAddress) error {
	res := r.db.WithContext(ctx).Model(&model.StudentAddress{}).
		Where("id = ?", address.ID).
		Updates(map[string]interface{}{
			"label":   address.Label,
			"address": address.Address,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *StudentAddressGormRepository) Delete(ctx context.Context, addressID int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", addressID).Delete(&model.StudentAddress{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *StudentAddressGormRepository) SetDefault(ctx context.Context, userID, addressID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.StudentAddress{}).
			Where("user_id = ? AND is_default = ?", userID, true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.StudentAddress{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Update("is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}
