package repository

import (
	"context"

	"app/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	Update(ctx context.Context, user model.User) error

	// UpdateApproval sets the approval status of a seller/rider account.
	UpdateApproval(ctx context.Context, userID int64, status model.ApprovalStatus) error

	// IncrementTokenVersion invalidates all outstanding access tokens.
	IncrementTokenVersion(ctx context.Context, userID int64) (int, error)
}
