package handlers

import (
	"context"
	"time"

	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/domain/repository"
	pkgAuth "github.com/vmesquit/mesapos/internal/pkg/auth"
	"github.com/vmesquit/mesapos/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	AuthenticateWaiter(ctx context.Context, pinCode, password string, restaurantID int64) (*model.Waiter, string, error)
	LoginRestaurant(ctx context.Context, email, password string) (*model.Restaurant, string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, bool, error)
	OrderByCode(ctx context.Context, code string, restaurantID int64) (*model.Order, error)
	ConfirmOrderWithPin(ctx context.Context, restaurantID, orderID int64, pinCode string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, restaurantID, orderID int64, status model.OrderStatus) (*model.Order, error)
	Orders(ctx context.Context, restaurantID int64, filter repository.OrderFilter) ([]model.Order, error)
	OrdersByCustomer(ctx context.Context, restaurantID, customerID int64) ([]model.Order, error)
	OrdersByTemporaryCustomer(ctx context.Context, restaurantID int64, temporaryCustomerID string) ([]model.Order, error)
	OrdersByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, status *model.OrderStatus) ([]model.Order, error)
	SoldItemsByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, isSuggestion *bool) ([]model.SoldItem, error)
}

// TableFacade provides table registry operations.
type TableFacade interface {
	Tables(ctx context.Context, restaurantID int64) ([]model.Table, error)
	ReleaseTable(ctx context.Context, restaurantID, tableID int64) error
	TransferTable(ctx context.Context, input usecase.TransferInput) error
}

// ReportFacade exposes daily metrics and sales aggregates.
type ReportFacade interface {
	DailyMetrics(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error)
	SalesByProduct(ctx context.Context, restaurantID int64, from, to time.Time) ([]model.ProductSales, error)
}

// PosFacade aggregates the full set of operations used across handlers.
type PosFacade interface {
	AuthFacade
	OrderFacade
	TableFacade
	ReportFacade
}
