package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CreateComplaintInput struct {
	OrderID int64
	Target  string
	Message string
}

type UpdateComplaintInput struct {
	Status          *string
	ResolutionNotes *string
}

type ComplaintUsecase struct {
	complaints repo.ComplaintRepository
	orders     repo.OrderRepository
	clock      Clock
}

func NewComplaintUsecase(
	complaints repo.ComplaintRepository,
	orders repo.OrderRepository,
	clock Clock,
) *ComplaintUsecase {
	return &ComplaintUsecase{complaints: complaints, orders: orders, clock: clock}
}

// CreateComplaint files an issue against the student's own order. Any
// lifecycle state is fine; unlike ratings, a complaint is not gated on
// completion.
func (u *ComplaintUsecase) CreateComplaint(ctx context.Context, studentID int64, in CreateComplaintInput) (model.Complaint, error) {
	target := model.ComplaintTargetOrder
	if in.Target != "" {
		target = model.ComplaintTarget(in.Target)
		switch target {
		case model.ComplaintTargetSeller, model.ComplaintTargetRider, model.ComplaintTargetOrder:
		default:
			return model.Complaint{}, NewHTTPError(http.StatusBadRequest, "invalid target")
		}
	}

	message := strings.TrimSpace(in.Message)
	if len(message) < model.ComplaintMessageMinLen || len(message) > model.ComplaintMessageMaxLen {
		return model.Complaint{}, NewHTTPError(http.StatusBadRequest, "message must be 5-1000 characters")
	}

	order, err := u.orders.FindByID(ctx, in.OrderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Complaint{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Complaint{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if order.StudentID != studentID {
		return model.Complaint{}, NewHTTPError(http.StatusNotFound, "order not found")
	}

	now := u.clock.Now()
	complaint := model.Complaint{
		OrderID:   order.ID,
		StudentID: studentID,
		Target:    target,
		Message:   message,
		Status:    model.ComplaintOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.complaints.Create(ctx, &complaint); err != nil {
		return model.Complaint{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return complaint, nil
}

func (u *ComplaintUsecase) ListMyComplaints(ctx context.Context, studentID int64) ([]model.Complaint, error) {
	complaints, err := u.complaints.ListByStudent(ctx, studentID, 50)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return complaints, nil
}

// ListComplaints is the admin queue, optionally filtered by status.
func (u *ComplaintUsecase) ListComplaints(ctx context.Context, status string) ([]model.Complaint, error) {
	f := repo.ComplaintFilter{}
	if status != "" {
		s := model.ComplaintStatus(status)
		if !validComplaintStatus(s) {
			return nil, NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		f.Status = &s
	}
	complaints, err := u.complaints.List(ctx, f)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return complaints, nil
}

// UpdateComplaint moves a complaint through the admin workflow. Reaching
// RESOLVED or CLOSED stamps when and by whom.
func (u *ComplaintUsecase) UpdateComplaint(ctx context.Context, adminID, complaintID int64, in UpdateComplaintInput) (model.Complaint, error) {
	complaint, err := u.complaints.FindByID(ctx, complaintID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Complaint{}, NewHTTPError(http.StatusNotFound, "complaint not found")
	}
	if err != nil {
		return model.Complaint{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Status != nil {
		s := model.ComplaintStatus(*in.Status)
		if !validComplaintStatus(s) {
			return model.Complaint{}, NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		complaint.Status = s
		if s == model.ComplaintResolved || s == model.ComplaintClosed {
			now := u.clock.Now()
			complaint.ResolvedAt = &now
			complaint.ResolvedByID = &adminID
		}
	}
	if in.ResolutionNotes != nil {
		notes := strings.TrimSpace(*in.ResolutionNotes)
		if len(notes) > model.ComplaintResolutionNotesMaxLen {
			return model.Complaint{}, NewHTTPError(http.StatusBadRequest, "resolution notes too long")
		}
		complaint.ResolutionNotes = notes
	}

	complaint.UpdatedAt = u.clock.Now()
	if err := u.complaints.Update(ctx, complaint); err != nil {
		return model.Complaint{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return complaint, nil
}

func validComplaintStatus(s model.ComplaintStatus) bool {
	switch s {
	case model.ComplaintOpen, model.ComplaintInProgress, model.ComplaintResolved, model.ComplaintClosed:
		return true
	}
	return false
}
