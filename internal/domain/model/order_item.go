package model

import "time"

// OrderItem is a snapshot of one ordered menu item taken at placement time.
// Later menu edits never alter historical orders.
type OrderItem struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID              int64     `gorm:"not null;index" json:"order_id"`
	MenuItemID           int64     `gorm:"not null;index" json:"menu_item_id"`
	NameSnapshot         string    `gorm:"type:varchar(80);not null" json:"name"`
	UnitPriceLkrSnapshot int64     `gorm:"not null" json:"unit_price_lkr"`
	Qty                  int64     `gorm:"not null" json:"qty"`
	LineTotalLkr         int64     `gorm:"not null" json:"line_total_lkr"`
	CreatedAt            time.Time `gorm:"not null" json:"-"`
}
