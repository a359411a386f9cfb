package repository

import (
	"context"

	"github.com/vmesquit/mesapos/internal/domain/model"
)

// RestaurantRepository describes persistence operations for restaurant accounts.
type RestaurantRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)
}
