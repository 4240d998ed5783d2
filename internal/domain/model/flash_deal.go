package model

import "time"

type DiscountType string

const (
	DiscountPercent DiscountType = "PERCENT"
	DiscountFlatLkr DiscountType = "FLAT_LKR"
)

const (
	DealPercentMin int64 = 1
	DealPercentMax int64 = 90
	DealFlatMinLkr int64 = 10
)

// FlashDeal is a time-windowed discount over a set of menu items of one shop.
// Item membership lives in flash_deal_items rows.
type FlashDeal struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopID   int64  `gorm:"not null;index" json:"shop_id"`
	SellerID int64  `gorm:"not null;index" json:"seller_id"`
	Title    string `gorm:"type:varchar(80);not null" json:"title"`

	DiscountType  DiscountType `gorm:"type:varchar(20);not null" json:"discount_type"`
	DiscountValue int64        `gorm:"not null" json:"discount_value"`

	StartAt  time.Time `gorm:"not null;index" json:"start_at"`
	EndAt    time.Time `gorm:"not null;index" json:"end_at"`
	IsActive bool      `gorm:"not null;default:true;index" json:"is_active"`

	Items []FlashDealItem `gorm:"foreignKey:DealID" json:"items,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

type FlashDealItem struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"-"`
	DealID     int64 `gorm:"not null;index" json:"-"`
	MenuItemID int64 `gorm:"not null;index" json:"menu_item_id"`
}

// MenuItemIDs returns the referenced item ids in stored order.
func (d FlashDeal) MenuItemIDs() []int64 {
	ids := make([]int64, 0, len(d.Items))
	for _, it := range d.Items {
		ids = append(ids, it.MenuItemID)
	}
	return ids
}
