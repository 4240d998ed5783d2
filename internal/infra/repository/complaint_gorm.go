package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ComplaintGormRepository struct {
	db *gorm.DB
}

func NewComplaintGormRepository(db *gorm.DB) *ComplaintGormRepository {
	return &ComplaintGormRepository{db: db}
}

func (r *ComplaintGormRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *ComplaintGormRepository) FindByID(ctx context.Context, complaintID int64) (model.Complaint, error) {
	var c model.Complaint
	err := r.db.WithContext(ctx).Where("id = ?", complaintID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Complaint{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintGormRepository) ListByStudent(ctx context.Context, studentID int64, limit int) ([]model.Complaint, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var complaints []model.Complaint
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Limit(limit).
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintGormRepository) List(ctx context.Context, f repo.ComplaintFilter) ([]model.Complaint, error) {
	q := r.db.WithContext(ctx).Model(&model.Complaint{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	var complaints []model.Complaint
	if err := q.Order("created_at desc").Limit(limit).Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintGormRepository) Update(ctx context.Context, complaint model.Complaint) error {
	res := r.db.WithContext(ctx).Model(&model.Complaint{}).
		Where("id = ?", complaint.ID).
		Updates(map[string]interface{}{
			"status":           complaint.Status,
			"resolution_notes": complaint.ResolutionNotes,
			"resolved_at":      complaint.ResolvedAt,
			"resolved_by_id":   complaint.ResolvedByID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
