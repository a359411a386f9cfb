package repository

import (
	"context"
	"time"

	"github.com/vmesquit/mesapos/internal/domain/model"
)

// OrderFilter narrows order listings. IncludeItems controls whether the
// embedded item lists are loaded; compact listings leave them out.
type OrderFilter struct {
	TableID      *int64
	WaiterID     *int64
	IncludeItems bool
}

// OrderRepository describes persistence operations with orders.
// Reporting aggregations live here as well, mirroring how listing and
// analytics share the same order relations.
type OrderRepository interface {
	// Create persists the order with its items atomically. When an order
	// with the same (restaurant, transaction id) already exists the stored
	// one is returned and the created flag is false.
	Create(ctx context.Context, order *model.Order) (*model.Order, bool, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByCode(ctx context.Context, restaurantID int64, code string) (*model.Order, error)
	CodeUsedInLast24h(ctx context.Context, restaurantID int64, code string) (bool, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, filter OrderFilter) ([]model.Order, error)
	ListByCustomerInLast24h(ctx context.Context, restaurantID, customerID int64) ([]model.Order, error)
	ListByTemporaryCustomerInLast24h(ctx context.Context, restaurantID int64, temporaryCustomerID string) ([]model.Order, error)
	// Confirm moves the order out of WAITING, records the confirming waiter
	// and reflects the order total on the table in one transaction.
	Confirm(ctx context.Context, orderID, waiterID int64) (*model.Order, error)
	// UpdateStatus moves the order from one status to another. The prior
	// status is part of the update condition so a concurrent transition
	// cannot be overwritten; a mismatch reports ErrInvalidTransition.
	UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error
	CalculateDailyMetrics(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error)
	SalesByProduct(ctx context.Context, restaurantID int64, from, to time.Time) ([]model.ProductSales, error)
	FindByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, status *model.OrderStatus) ([]model.Order, error)
	SoldItemsByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, isSuggestion *bool) ([]model.SoldItem, error)
}
