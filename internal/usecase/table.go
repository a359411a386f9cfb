package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/domain/repository"
	pkgAuth "github.com/vmesquit/mesapos/internal/pkg/auth"
)

// TransferInput describes a table transfer request.
type TransferInput struct {
	RestaurantID           int64
	SourceTableNumber      int
	DestinationTableNumber int
	WaiterCode             string
	WaiterPassword         string
}

// TableUseCase manages the table registry.
type TableUseCase struct {
	tables  repository.TableRepository
	waiters repository.WaiterRepository
	hasher  pkgAuth.PasswordHasher
}

// NewTableUseCase constructs TableUseCase.
func NewTableUseCase(tables repository.TableRepository, waiters repository.WaiterRepository, hasher pkgAuth.PasswordHasher) *TableUseCase {
	return &TableUseCase{tables: tables, waiters: waiters, hasher: hasher}
}

// ListByRestaurant returns the current snapshot of the restaurant's tables.
func (u *TableUseCase) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Table, error) {
	return u.tables.ListByRestaurant(ctx, restaurantID)
}

// Release frees a table and zeroes its consumption. Tables still holding
// non-terminal orders are refused with ErrConflict; tables of another
// restaurant are indistinguishable from missing ones.
func (u *TableUseCase) Release(ctx context.Context, restaurantID, tableID int64) error {
	table, err := u.tables.GetByID(ctx, tableID)
	if err != nil {
		return err
	}
	if table.RestaurantID != restaurantID {
		return domainErrors.ErrNotFound
	}
	return u.tables.Release(ctx, tableID)
}

// Transfer re-authenticates the waiter and moves all active orders from the
// source table to the destination atomically.
func (u *TableUseCase) Transfer(ctx context.Context, input TransferInput) error {
	if input.SourceTableNumber == input.DestinationTableNumber {
		return domainErrors.ErrValidation
	}

	code := strings.TrimSpace(input.WaiterCode)
	if code == "" || input.WaiterPassword == "" {
		return domainErrors.ErrInvalidCredentials
	}

	waiter, err := u.waiters.GetByPin(ctx, input.RestaurantID, code)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrInvalidCredentials
		}
		return err
	}
	if err := u.hasher.Compare(waiter.PasswordHash, input.WaiterPassword); err != nil {
		return domainErrors.ErrInvalidCredentials
	}

	return u.tables.Transfer(ctx, input.RestaurantID, input.SourceTableNumber, input.DestinationTableNumber)
}
