package model

import "time"

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleSeller  Role = "SELLER"
	RoleRider   Role = "RIDER"
	RoleAdmin   Role = "ADMIN"
)

// Approval gate for sellers, riders and shops. Students start APPROVED.
type ApprovalStatus string

const (
	ApprovalPending   ApprovalStatus = "PENDING"
	ApprovalApproved  ApprovalStatus = "APPROVED"
	ApprovalRejected  ApprovalStatus = "REJECTED"
	ApprovalSuspended ApprovalStatus = "SUSPENDED"
)

type User struct {
	ID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string         `gorm:"column:password_hash;not null" json:"-"`
	Role           Role           `gorm:"type:varchar(20);not null;index" json:"role"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"approval_status"`
	TokenVersion   int            `gorm:"not null;default:0" json:"-"`
	IsActive       bool           `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt    *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null" json:"updated_at"`
}
