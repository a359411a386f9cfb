package repository

import (
	"context"

	"github.com/vmesquit/mesapos/internal/domain/model"
)

// WaiterRepository describes persistence operations for waiters.
type WaiterRepository interface {
	GetByPin(ctx context.Context, restaurantID int64, pinCode string) (*model.Waiter, error)
	GetByID(ctx context.Context, id int64) (*model.Waiter, error)
}
