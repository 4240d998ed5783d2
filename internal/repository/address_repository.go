package repository

import (
	"context"

	"app/internal/domain/model"
)

type StudentAddressRepository interface {
	Create(ctx context.Context, address *model.StudentAddress) error
	FindByID(ctx context.Context, addressID int64) (model.StudentAddress, error)
	ListByUser(ctx context.Context, userID int64) ([]model.StudentAddress, error)
	Update(ctx context.Context, address model.StudentAddress) error
	Delete(ctx context.Context, addressID int64) error

	// SetDefault flips the default flag to the given address, clearing any
	// previous default of the same user.
	SetDefault(ctx context.Context, userID, addressID int64) error
}
