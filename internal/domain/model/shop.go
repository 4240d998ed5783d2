package model

import "time"

// Platform commission, fixed for v1.
const DefaultCommissionRate = 0.1

// Shop is a seller-owned home kitchen. All menu/deal/order operations are
// gated on ApprovalStatus being APPROVED and IsActive.
type Shop struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID int64  `gorm:"not null;index" json:"seller_id"`
	Name     string `gorm:"type:varchar(80);not null" json:"name"`
	Address  string `gorm:"type:varchar(200);not null" json:"address"`
	Phone    string `gorm:"type:varchar(30);not null" json:"phone"`

	ApprovalStatus  ApprovalStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"approval_status"`
	RejectionReason string         `gorm:"type:varchar(500)" json:"rejection_reason,omitempty"`
	IsActive        bool           `gorm:"not null;default:true" json:"is_active"`

	// Per-shop commission, fixed 10% in v1.
	CommissionRate float64 `gorm:"not null;default:0.1" json:"commission_rate"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
