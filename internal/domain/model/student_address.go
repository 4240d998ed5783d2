package model

import "time"

// Saved delivery address of a student.
type StudentAddress struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Label     string    `gorm:"type:varchar(80)" json:"label"`
	Address   string    `gorm:"type:varchar(300);not null" json:"address"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
