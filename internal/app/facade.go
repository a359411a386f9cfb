package app

import (
	"context"
	"time"

	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/domain/repository"
	pkgAuth "github.com/vmesquit/mesapos/internal/pkg/auth"
	"github.com/vmesquit/mesapos/internal/usecase"
)

// PosFacade aggregates the use cases behind one application surface.
type PosFacade struct {
	auth    *usecase.AuthUseCase
	orders  *usecase.OrderUseCase
	tables  *usecase.TableUseCase
	metrics *usecase.MetricsUseCase
}

// NewPosFacade constructs PosFacade.
func NewPosFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, tables *usecase.TableUseCase, metrics *usecase.MetricsUseCase) *PosFacade {
	return &PosFacade{auth: auth, orders: orders, tables: tables, metrics: metrics}
}

func (f *PosFacade) AuthenticateWaiter(ctx context.Context, pinCode, password string, restaurantID int64) (*model.Waiter, string, error) {
	return f.auth.AuthenticateWaiter(ctx, pinCode, password, restaurantID)
}

func (f *PosFacade) LoginRestaurant(ctx context.Context, email, password string) (*model.Restaurant, string, error) {
	return f.auth.LoginRestaurant(ctx, email, password)
}

func (f *PosFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *PosFacade) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, bool, error) {
	return f.orders.Create(ctx, input)
}

func (f *PosFacade) OrderByCode(ctx context.Context, code string, restaurantID int64) (*model.Order, error) {
	return f.orders.GetByCode(ctx, code, restaurantID)
}

func (f *PosFacade) ConfirmOrderWithPin(ctx context.Context, restaurantID, orderID int64, pinCode string) (*model.Order, error) {
	return f.orders.ConfirmWithPin(ctx, restaurantID, orderID, pinCode)
}

func (f *PosFacade) UpdateOrderStatus(ctx context.Context, restaurantID, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, restaurantID, orderID, status)
}

func (f *PosFacade) Orders(ctx context.Context, restaurantID int64, filter repository.OrderFilter) ([]model.Order, error) {
	return f.orders.ListByRestaurant(ctx, restaurantID, filter)
}

func (f *PosFacade) OrdersByCustomer(ctx context.Context, restaurantID, customerID int64) ([]model.Order, error) {
	return f.orders.ListByCustomer(ctx, restaurantID, customerID)
}

func (f *PosFacade) OrdersByTemporaryCustomer(ctx context.Context, restaurantID int64, temporaryCustomerID string) ([]model.Order, error) {
	return f.orders.ListByTemporaryCustomer(ctx, restaurantID, temporaryCustomerID)
}

func (f *PosFacade) OrdersByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, status *model.OrderStatus) ([]model.Order, error) {
	return f.orders.FindByDateRange(ctx, restaurantID, from, to, status)
}

func (f *PosFacade) SoldItemsByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, isSuggestion *bool) ([]model.SoldItem, error) {
	return f.orders.SoldItemsByDateRange(ctx, restaurantID, from, to, isSuggestion)
}

func (f *PosFacade) Tables(ctx context.Context, restaurantID int64) ([]model.Table, error) {
	return f.tables.ListByRestaurant(ctx, restaurantID)
}

func (f *PosFacade) ReleaseTable(ctx context.Context, restaurantID, tableID int64) error {
	return f.tables.Release(ctx, restaurantID, tableID)
}

func (f *PosFacade) TransferTable(ctx context.Context, input usecase.TransferInput) error {
	return f.tables.Transfer(ctx, input)
}

func (f *PosFacade) DailyMetrics(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error) {
	return f.metrics.Daily(ctx, restaurantID, date)
}

func (f *PosFacade) SalesByProduct(ctx context.Context, restaurantID int64, from, to time.Time) ([]model.ProductSales, error) {
	return f.metrics.SalesByProduct(ctx, restaurantID, from, to)
}
