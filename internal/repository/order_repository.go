package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page      int
	Limit     int
	Status    string
	ShopID    *int64
	StudentID *int64
	From      *time.Time
	To        *time.Time
}

// EarningsSummary aggregates a seller's COMPLETED orders since a cutoff.
type EarningsSummary struct {
	GrossLkr      int64
	CommissionLkr int64
	OrderCount    int64
}

// OrderRepository persists orders. All mutations are guarded updates: the
// WHERE clause carries the expected prior state, and a zero-row result is
// reported as ErrConflict (row exists, state moved on) or ErrNotFound. Two
// concurrent transition attempts on one order therefore never both succeed.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	ListByStudent(ctx context.Context, studentID int64, limit int) ([]model.Order, error)
	ListByShop(ctx context.Context, shopID int64, limit int) ([]model.Order, error)
	ListByRider(ctx context.Context, riderID int64, limit int) ([]model.Order, error)

	// ListAvailableForRiders: READY_FOR_PICKUP orders with no rider,
	// oldest first.
	ListAvailableForRiders(ctx context.Context, limit int) ([]model.Order, error)

	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)

	// SumEarnings: gross subtotal and commission over the seller's
	// COMPLETED orders created at or after from.
	SumEarnings(ctx context.Context, sellerID int64, from time.Time) (EarningsSummary, error)

	// UpdateStatusCAS moves status from->to iff the row still holds from.
	UpdateStatusCAS(ctx context.Context, orderID int64, from, to model.OrderStatus) error

	// AssignRiderCAS claims an unassigned order: status must still be from
	// and rider_id must still be NULL. First claim wins.
	AssignRiderCAS(ctx context.Context, orderID int64, riderID int64, from, to model.OrderStatus) error

	// IncrementOtpAttemptsCAS bumps the counter iff it still equals
	// expected, so a stale read can never skip past the cap.
	IncrementOtpAttemptsCAS(ctx context.Context, orderID int64, expected int) error

	// MarkDeliveredCAS finishes delivery in one guarded write: status
	// ON_THE_WAY -> DELIVERED, otp_used_at set, attempts bumped.
	MarkDeliveredCAS(ctx context.Context, orderID int64, usedAt time.Time, expectedAttempts int) error
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}

// OrderEventRepository is append-only.
type OrderEventRepository interface {
	Append(ctx context.Context, event model.OrderStatusEvent) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderStatusEvent, error)
}
