package model

import "time"

type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "PLACED"
	OrderStatusAccepted       OrderStatus = "ACCEPTED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderStatusRiderAssigned  OrderStatus = "RIDER_ASSIGNED"
	OrderStatusPickedUp       OrderStatus = "PICKED_UP"
	OrderStatusOnTheWay       OrderStatus = "ON_THE_WAY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// OrderStatuses lists every lifecycle state.
var OrderStatuses = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusAccepted,
	OrderStatusPreparing,
	OrderStatusReadyForPickup,
	OrderStatusRiderAssigned,
	OrderStatusPickedUp,
	OrderStatusOnTheWay,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

const (
	OrderMinDistanceKm float64 = 0
	OrderMaxDistanceKm float64 = 200
	OrderItemMinQty    int64   = 1
	OrderItemMaxQty    int64   = 50
)

// Order is the central entity. Status is mutated only through validated
// transitions; monetary fields are integer LKR computed at placement.
type Order struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID int64  `gorm:"not null;index" json:"student_id"`
	SellerID  int64  `gorm:"not null;index" json:"seller_id"`
	RiderID   *int64 `gorm:"index" json:"rider_id,omitempty"`
	ShopID    int64  `gorm:"not null;index" json:"shop_id"`

	Status OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	Currency string `gorm:"type:varchar(3);not null;default:'LKR'" json:"currency"`

	SubtotalLkr         int64   `gorm:"not null" json:"subtotal_lkr"`
	CommissionRate      float64 `gorm:"not null" json:"commission_rate"`
	CommissionAmountLkr int64   `gorm:"not null" json:"commission_amount_lkr"`
	// Student pays subtotal only; commission and rider fee are bookkeeping.
	TotalLkr int64 `gorm:"not null" json:"total_lkr"`

	DistanceKm       float64 `gorm:"not null" json:"distance_km"`
	RiderFeePerKmLkr int64   `gorm:"not null" json:"rider_fee_per_km_lkr"`
	RiderFeeLkr      int64   `gorm:"not null" json:"rider_fee_lkr"`

	DeliveryAddress string `gorm:"type:varchar(300);not null" json:"delivery_address"`

	// OTP delivery verification, hash only. The plaintext code is returned
	// exactly once at placement and never stored.
	OtpHash      string     `gorm:"not null" json:"-"`
	OtpExpiresAt time.Time  `gorm:"not null" json:"-"`
	OtpUsedAt    *time.Time `json:"-"`
	OtpAttempts  int        `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
