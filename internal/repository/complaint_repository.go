package repository

import (
	"context"

	"app/internal/domain/model"
)

type ComplaintFilter struct {
	Status *model.ComplaintStatus
	Limit  int
}

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	FindByID(ctx context.Context, complaintID int64) (model.Complaint, error)

	// ListByStudent: newest first.
	ListByStudent(ctx context.Context, studentID int64, limit int) ([]model.Complaint, error)

	// List is the admin view, newest first, optionally filtered by status.
	List(ctx context.Context, f ComplaintFilter) ([]model.Complaint, error)

	Update(ctx context.Context, complaint model.Complaint) error
}
