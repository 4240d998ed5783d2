package model

import "time"

// Admin operations leave an audit trail.
type AuditAction string

const (
	AuditActionUpdateUserApproval AuditAction = "UPDATE_USER_APPROVAL"
	AuditActionUpdateShopApproval AuditAction = "UPDATE_SHOP_APPROVAL"
)

type AuditResourceType string

const (
	AuditResourceUser AuditResourceType = "user"
	AuditResourceShop AuditResourceType = "shop"
)

// AuditLog records who changed what on which resource.
type AuditLog struct {
	ID           int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorUserID  int64             `gorm:"not null;index" json:"actor_user_id"`
	Action       AuditAction       `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`
	ResourceID   int64             `gorm:"not null;index" json:"resource_id"`
	BeforeJSON   string            `gorm:"type:text" json:"before_json"`
	AfterJSON    string            `gorm:"type:text" json:"after_json"`
	CreatedAt    time.Time         `gorm:"not null;index" json:"created_at"`
}
