package repository

import (
	"context"

	"github.com/vmesquit/mesapos/internal/domain/model"
)

// TableRepository manages table occupancy state.
type TableRepository interface {
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Table, error)
	GetByID(ctx context.Context, id int64) (*model.Table, error)
	GetByNumber(ctx context.Context, restaurantID int64, number int) (*model.Table, error)
	// Release frees the table and zeroes its consumption. Tables holding
	// non-terminal orders are refused with ErrConflict.
	Release(ctx context.Context, tableID int64) error
	// Transfer re-points all active orders from the source table to the
	// destination, recomputes both consumptions and flips both statuses.
	// All-or-nothing: both table rows stay locked for the duration.
	Transfer(ctx context.Context, restaurantID int64, sourceNumber, destinationNumber int) error
}
