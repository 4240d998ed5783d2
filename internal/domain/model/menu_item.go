package model

import "time"

// v1 lists Sri Lankan rice & curry only. The scope is set server-side on
// every item and is never client-settable.
type FoodScope string

const ScopeSriLankanRiceAndCurry FoodScope = "SRI_LANKAN_RICE_AND_CURRY"

type MenuCategory string

const (
	CategoryRice   MenuCategory = "RICE"
	CategoryCurry  MenuCategory = "CURRY"
	CategorySambol MenuCategory = "SAMBOL"
	CategorySide   MenuCategory = "SIDE"
	CategoryAddOn  MenuCategory = "ADD_ON"
	CategoryDrink  MenuCategory = "DRINK"
)

func ValidMenuCategory(c MenuCategory) bool {
	switch c {
	case CategoryRice, CategoryCurry, CategorySambol, CategorySide, CategoryAddOn, CategoryDrink:
		return true
	}
	return false
}

const (
	MenuItemMinPriceLkr int64 = 50
	MenuItemMaxPriceLkr int64 = 50000
)

type MenuItem struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopID   int64 `gorm:"not null;index" json:"shop_id"`
	SellerID int64 `gorm:"not null;index" json:"seller_id"`

	Scope FoodScope `gorm:"type:varchar(40);not null;default:'SRI_LANKAN_RICE_AND_CURRY'" json:"scope"`

	Name        string       `gorm:"type:varchar(80);not null" json:"name"`
	Description string       `gorm:"type:varchar(300)" json:"description"`
	Category    MenuCategory `gorm:"type:varchar(20);not null" json:"category"`

	PriceLkr    int64  `gorm:"not null" json:"price_lkr"`
	IsAvailable bool   `gorm:"not null;default:true" json:"is_available"`
	ImageURL    string `gorm:"type:varchar(500)" json:"image_url,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
