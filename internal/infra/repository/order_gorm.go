package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListByStudent(ctx context.Context, studentID int64, limit int) ([]model.Order, error) {
	return r.list(ctx, "student_id = ?", studentID, "created_at desc", limit)
}

func (r *OrderGormRepository) ListByShop(ctx context.Context, shopID int64, limit int) ([]model.Order, error) {
	return r.list(ctx, "shop_id = ?", shopID, "created_at desc", limit)
}

func (r *OrderGormRepository) ListByRider(ctx context.Context, riderID int64, limit int) ([]model.Order, error) {
	return r.list(ctx, "rider_id = ?", riderID, "created_at desc", limit)
}

func (r *OrderGormRepository) ListAvailableForRiders(ctx context.Context, limit int) ([]model.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("status = ? AND rider_id IS NULL", model.OrderStatusReadyForPickup).
		Order("created_at asc").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) list(ctx context.Context, cond string, arg interface{}, order string, limit int) ([]model.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where(cond, arg).
		Order(order).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 50
	}

	q := r.db.WithContext(ctx).Model(&model.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ShopID != nil {
		q = q.Where("shop_id = ?", *f.ShopID)
	}
	if f.StudentID != nil {
		q = q.Where("student_id = ?", *f.StudentID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	offset := (f.Page - 1) * f.Limit
	if err := q.Order("id desc").Limit(f.Limit).Offset(offset).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderGormRepository) SumEarnings(ctx context.Context, sellerID int64, from time.Time) (repo.EarningsSummary, error) {
	var s repo.EarningsSummary
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COALESCE(SUM(subtotal_lkr), 0) AS gross_lkr, COALESCE(SUM(commission_amount_lkr), 0) AS commission_lkr, COUNT(*) AS order_count").
		Where("seller_id = ? AND status = ? AND created_at >= ?", sellerID, model.OrderStatusCompleted, from).
		Scan(&s).Error
	if err != nil {
		return repo.EarningsSummary{}, err
	}
	return s, nil
}

// casResult maps a zero-row guarded update to ErrConflict when the order
// exists, ErrNotFound when it does not.
func (r *OrderGormRepository) casResult(ctx context.Context, res *gorm.DB, orderID int64) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return repo.ErrNotFound
	}
	return repo.ErrConflict
}

func (r *OrderGormRepository) UpdateStatusCAS(ctx context.Context, orderID int64, from, to model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return r.casResult(ctx, res, orderID)
}

func (r *OrderGormRepository) AssignRiderCAS(ctx context.Context, orderID int64, riderID int64, from, to model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ? AND rider_id IS NULL", orderID, from).
		Updates(map[string]interface{}{
			"status":   to,
			"rider_id": riderID,
		})
	return r.casResult(ctx, res, orderID)
}

func (r *OrderGormRepository) IncrementOtpAttemptsCAS(ctx context.Context, orderID int64, expected int) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND otp_attempts = ?", orderID, expected).
		Update("otp_attempts", expected+1)
	return r.casResult(ctx, res, orderID)
}

func (r *OrderGormRepository) MarkDeliveredCAS(ctx context.Context, orderID int64, usedAt time.Time, expectedAttempts int) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ? AND otp_used_at IS NULL AND otp_attempts = ?",
			orderID, model.OrderStatusOnTheWay, expectedAttempts).
		Updates(map[string]interface{}{
			"status":       model.OrderStatusDelivered,
			"otp_used_at":  usedAt,
			"otp_attempts": expectedAttempts + 1,
		})
	return r.casResult(ctx, res, orderID)
}
