// Package facadetest provides facade stubs for HTTP layer tests. It lives
// apart from the shared stubs because the facade surface exposes usecase
// input types, which the usecase tests themselves must not import back.
package facadetest

import (
	"context"
	"time"

	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/domain/repository"
	pkgAuth "github.com/vmesquit/mesapos/internal/pkg/auth"
	"github.com/vmesquit/mesapos/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	AuthenticateWaiterFn func(context.Context, string, string, int64) (*model.Waiter, string, error)
	LoginRestaurantFn    func(context.Context, string, string) (*model.Restaurant, string, error)
	ParseFn              func(string) (*pkgAuth.Claims, error)
}

// AuthenticateWaiter returns waiter and token for successful scenarios.
func (s AuthFacadeStub) AuthenticateWaiter(ctx context.Context, pinCode, password string, restaurantID int64) (*model.Waiter, string, error) {
	if s.AuthenticateWaiterFn != nil {
		return s.AuthenticateWaiterFn(ctx, pinCode, password, restaurantID)
	}
	return &model.Waiter{ID: 1, RestaurantID: restaurantID, Name: "Ana", Nickname: "ana"}, "token", nil
}

// LoginRestaurant returns restaurant and token for successful scenarios.
func (s AuthFacadeStub) LoginRestaurant(ctx context.Context, email, password string) (*model.Restaurant, string, error) {
	if s.LoginRestaurantFn != nil {
		return s.LoginRestaurantFn(ctx, email, password)
	}
	return &model.Restaurant{ID: 1, Name: "Cantina", Email: email}, "token", nil
}

// ParseToken returns claims for the supplied token.
func (s AuthFacadeStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.Claims{SubjectID: 1, RestaurantID: 1, Role: pkgAuth.RoleWaiter}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn       func(context.Context, usecase.CreateOrderInput) (*model.Order, bool, error)
	ByCodeFn       func(context.Context, string, int64) (*model.Order, error)
	ConfirmFn      func(context.Context, int64, int64, string) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, int64, model.OrderStatus) (*model.Order, error)
	OrdersFn       func(context.Context, int64, repository.OrderFilter) ([]model.Order, error)
	ByDateRangeFn  func(context.Context, int64, time.Time, time.Time, *model.OrderStatus) ([]model.Order, error)
	SoldItemsFn    func(context.Context, int64, time.Time, time.Time, *bool) ([]model.SoldItem, error)
	StoredOrders   []model.Order
}

// CreateOrder delegates to the override or returns a default created order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, bool, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	return &model.Order{ID: 1, RestaurantID: input.RestaurantID, Code: "AB23CD", Status: model.OrderStatusWaiting}, true, nil
}

// OrderByCode returns a matched order.
func (s OrderFacadeStub) OrderByCode(ctx context.Context, code string, restaurantID int64) (*model.Order, error) {
	if s.ByCodeFn != nil {
		return s.ByCodeFn(ctx, code, restaurantID)
	}
	return &model.Order{ID: 1, RestaurantID: restaurantID, Code: code, Status: model.OrderStatusWaiting}, nil
}

// ConfirmOrderWithPin delegates to the override.
func (s OrderFacadeStub) ConfirmOrderWithPin(ctx context.Context, restaurantID, orderID int64, pinCode string) (*model.Order, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, restaurantID, orderID, pinCode)
	}
	return &model.Order{ID: orderID, RestaurantID: restaurantID, Status: model.OrderStatusPreparing}, nil
}

// UpdateOrderStatus delegates to the override.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, restaurantID, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, restaurantID, orderID, status)
	}
	return &model.Order{ID: orderID, RestaurantID: restaurantID, Status: status}, nil
}

// Orders returns configured orders.
func (s OrderFacadeStub) Orders(ctx context.Context, restaurantID int64, filter repository.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, restaurantID, filter)
	}
	return s.StoredOrders, nil
}

// OrdersByCustomer returns configured orders.
func (s OrderFacadeStub) OrdersByCustomer(ctx context.Context, restaurantID, customerID int64) ([]model.Order, error) {
	return s.StoredOrders, nil
}

// OrdersByTemporaryCustomer returns configured orders.
func (s OrderFacadeStub) OrdersByTemporaryCustomer(ctx context.Context, restaurantID int64, temporaryCustomerID string) ([]model.Order, error) {
	return s.StoredOrders, nil
}

// OrdersByDateRange delegates to the override or returns configured orders.
func (s OrderFacadeStub) OrdersByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, status *model.OrderStatus) ([]model.Order, error) {
	if s.ByDateRangeFn != nil {
		return s.ByDateRangeFn(ctx, restaurantID, from, to, status)
	}
	return s.StoredOrders, nil
}

// SoldItemsByDateRange delegates to the override or returns nothing.
func (s OrderFacadeStub) SoldItemsByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, isSuggestion *bool) ([]model.SoldItem, error) {
	if s.SoldItemsFn != nil {
		return s.SoldItemsFn(ctx, restaurantID, from, to, isSuggestion)
	}
	return nil, nil
}

// TableFacadeStub simulates table registry operations.
type TableFacadeStub struct {
	TablesFn   func(context.Context, int64) ([]model.Table, error)
	ReleaseFn  func(context.Context, int64, int64) error
	TransferFn func(context.Context, usecase.TransferInput) error
	TableList  []model.Table
}

// Tables returns configured tables.
func (s TableFacadeStub) Tables(ctx context.Context, restaurantID int64) ([]model.Table, error) {
	if s.TablesFn != nil {
		return s.TablesFn(ctx, restaurantID)
	}
	return s.TableList, nil
}

// ReleaseTable delegates to the override.
func (s TableFacadeStub) ReleaseTable(ctx context.Context, restaurantID, tableID int64) error {
	if s.ReleaseFn != nil {
		return s.ReleaseFn(ctx, restaurantID, tableID)
	}
	return nil
}

// TransferTable delegates to the override.
func (s TableFacadeStub) TransferTable(ctx context.Context, input usecase.TransferInput) error {
	if s.TransferFn != nil {
		return s.TransferFn(ctx, input)
	}
	return nil
}

// ReportFacadeStub simulates reporting operations.
type ReportFacadeStub struct {
	DailyFn func(context.Context, int64, time.Time) (*model.DailyMetric, error)
	SalesFn func(context.Context, int64, time.Time, time.Time) ([]model.ProductSales, error)
}

// DailyMetrics delegates to the override or returns an empty day.
func (s ReportFacadeStub) DailyMetrics(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error) {
	if s.DailyFn != nil {
		return s.DailyFn(ctx, restaurantID, date)
	}
	return &model.DailyMetric{RestaurantID: restaurantID, Date: date}, nil
}

// SalesByProduct delegates to the override or returns nothing.
func (s ReportFacadeStub) SalesByProduct(ctx context.Context, restaurantID int64, from, to time.Time) ([]model.ProductSales, error) {
	if s.SalesFn != nil {
		return s.SalesFn(ctx, restaurantID, from, to)
	}
	return nil, nil
}

// PosFacadeStub aggregates facade dependencies for HTTP layer tests.
type PosFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	TableFacadeStub
	ReportFacadeStub
}
