package repository

import (
	"context"

	"github.com/vmesquit/mesapos/internal/domain/model"
)

// MenuRepository gives read access to a restaurant's menu.
type MenuRepository interface {
	// GetItemForRestaurant resolves a menu item only when it belongs to the
	// given restaurant; cross-tenant ids surface as ErrNotFound.
	GetItemForRestaurant(ctx context.Context, menuItemID, restaurantID int64) (*model.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.MenuItem, error)
}
