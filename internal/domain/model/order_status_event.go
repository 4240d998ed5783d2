package model

import "time"

// OrderStatusEvent is one row of the append-only status history, including
// the initial PLACED entry. Rows are never updated or deleted.
type OrderStatusEvent struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID     int64       `gorm:"not null;index" json:"order_id"`
	Status      OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	ActorUserID int64       `gorm:"not null" json:"actor_user_id"`
	At          time.Time   `gorm:"not null" json:"at"`
}
