package model

import "time"

const (
	RatingMin           = 1
	RatingMax           = 5
	RatingCommentMaxLen = 500
)

// Rating is a student's one-shot review of a completed order. The party ids
// are snapshotted from the order so a later reassignment never rewrites who
// was rated.
type Rating struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64  `gorm:"not null;uniqueIndex" json:"order_id"`
	StudentID int64  `gorm:"not null;index" json:"student_id"`
	ShopID    int64  `gorm:"not null;index" json:"shop_id"`
	SellerID  int64  `gorm:"not null;index" json:"seller_id"`
	RiderID   *int64 `gorm:"index" json:"rider_id,omitempty"`

	SellerRating int    `gorm:"not null" json:"seller_rating"`
	RiderRating  *int   `json:"rider_rating,omitempty"`
	Comment      string `gorm:"type:varchar(500)" json:"comment"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
