package model

import "time"

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "OPEN"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
	ComplaintClosed     ComplaintStatus = "CLOSED"
)

type ComplaintTarget string

const (
	ComplaintTargetSeller ComplaintTarget = "SELLER"
	ComplaintTargetRider  ComplaintTarget = "RIDER"
	ComplaintTargetOrder  ComplaintTarget = "ORDER"
)

const (
	ComplaintMessageMinLen         = 5
	ComplaintMessageMaxLen         = 1000
	ComplaintResolutionNotesMaxLen = 500
)

// Complaint is a student issue report against an order, worked by admins.
type Complaint struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	StudentID int64           `gorm:"not null;index" json:"student_id"`
	Target    ComplaintTarget `gorm:"type:varchar(10);not null;default:'ORDER'" json:"target"`
	Message   string          `gorm:"type:varchar(1000);not null" json:"message"`

	Status          ComplaintStatus `gorm:"type:varchar(15);not null;index" json:"status"`
	ResolutionNotes string          `gorm:"type:varchar(500)" json:"resolution_notes"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"`
	ResolvedByID    *int64          `json:"resolved_by_id,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
