package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

const (
	addressMinLen = 5
	addressMaxLen = 300
)

type SaveAddressInput struct {
	Label   string
	Address string
}

type AddressUsecase struct {
	addresses repo.StudentAddressRepository
	clock     Clock
}

func NewAddressUsecase(addresses repo.StudentAddressRepository, clock Clock) *AddressUsecase {
	return &AddressUsecase{addresses: addresses, clock: clock}
}

func (u *AddressUsecase) CreateAddress(ctx context.Context, userID int64, in SaveAddressInput) (model.StudentAddress, error) {
	address := strings.TrimSpace(in.Address)
	if len(address) < addressMinLen || len(address) > addressMaxLen {
		return model.StudentAddress{}, NewHTTPError(http.StatusBadRequest, "address must be 5-300 characters")
	}
	label := strings.TrimSpace(in.Label)
	if len(label) > 80 {
		return model.StudentAddress{}, NewHTTPError(http.StatusBadRequest, "label too long")
	}

	existing, err := u.addresses.ListByUser(ctx, userID)
	if err != nil {
		return model.StudentAddress{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := u.clock.Now()
	addr := model.StudentAddress{
		UserID:    userID,
		Label:     label,
		Address:   address,
		IsDefault: len(existing) == 0, // first address becomes the default
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.addresses.Create(ctx, &addr); err != nil {
		return model.StudentAddress{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return addr, nil
}

func (u *AddressUsecase) ListAddresses(ctx context.Context, userID int64) ([]model.StudentAddress, error) {
	addrs, err := u.addresses.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return addrs, nil
}

func (u *AddressUsecase) UpdateAddress(ctx context.Context, userID, addressID int64, in SaveAddressInput) (model.StudentAddress, error) {
	addr, err := u.ownedAddress(ctx, userID, addressID)
	if err != nil {
		return model.StudentAddress{}, err
	}

	address := strings.TrimSpace(in.Address)
	if len(address) < addressMinLen || len(address) > addressMaxLen {
		return model.StudentAddress{}, NewHTTPError(http.StatusBadRequest, "address must be 5-300 characters")
	}
	label := strings.TrimSpace(in.Label)
	if len(label) > 80 {
		return model.StudentAddress{}, NewHTTPError(http.StatusBadRequest, "label too long")
	}

	addr.Label = label
	addr.Address = address
	addr.UpdatedAt = u.clock.Now()
	if err := u.addresses.Update(ctx, addr); err != nil {
		return model.StudentAddress{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return addr, nil
}

func (u *AddressUsecase) SetDefaultAddress(ctx context.Context, userID, addressID int64) error {
	if _, err := u.ownedAddress(ctx, userID, addressID); err != nil {
		return err
	}
	if err := u.addresses.SetDefault(ctx, userID, addressID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AddressUsecase) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	if _, err := u.ownedAddress(ctx, userID, addressID); err != nil {
		return err
	}
	if err := u.addresses.Delete(ctx, addressID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AddressUsecase) ownedAddress(ctx context.Context, userID, addressID int64) (model.StudentAddress, error) {
	addr, err := u.addresses.FindByID(ctx, addressID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.StudentAddress{}, NewHTTPError(http.StatusNotFound, "address not found")
	}
	if err != nil {
		return model.StudentAddress{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if addr.UserID != userID {
		return model.StudentAddress{}, NewHTTPError(http.StatusNotFound, "address not found")
	}
	return addr, nil
}
