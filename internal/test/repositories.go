package test

import (
	"context"
	"time"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/domain/repository"
)

// WaiterRepositoryStub stores waiters in-memory for tests.
type WaiterRepositoryStub struct {
	Waiters []model.Waiter
	Err     error
}

// GetByPin finds a waiter by PIN within a restaurant.
func (s *WaiterRepositoryStub) GetByPin(ctx context.Context, restaurantID int64, pinCode string) (*model.Waiter, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Waiters {
		if s.Waiters[i].RestaurantID == restaurantID && s.Waiters[i].PinCode == pinCode {
			waiter := s.Waiters[i]
			return &waiter, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID finds a waiter by identifier.
func (s *WaiterRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Waiter, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Waiters {
		if s.Waiters[i].ID == id {
			waiter := s.Waiters[i]
			return &waiter, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// RestaurantRepositoryStub stores restaurant accounts in-memory for tests.
type RestaurantRepositoryStub struct {
	Restaurants []model.Restaurant
	Err         error
}

// GetByEmail finds a restaurant by email.
func (s *RestaurantRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Restaurants {
		if s.Restaurants[i].Email == email {
			restaurant := s.Restaurants[i]
			return &restaurant, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID finds a restaurant by identifier.
func (s *RestaurantRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Restaurants {
		if s.Restaurants[i].ID == id {
			restaurant := s.Restaurants[i]
			return &restaurant, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// TransferCall records Transfer invocations on the table stub.
type TransferCall struct {
	RestaurantID      int64
	SourceNumber      int
	DestinationNumber int
}

// TableRepositoryStub lets tests control table registry behaviour.
type TableRepositoryStub struct {
	Tables     []model.Table
	ReleaseFn  func(context.Context, int64) error
	TransferFn func(context.Context, int64, int, int) error
	Released   []int64
	Transfers  []TransferCall
	Err        error
}

// ListByRestaurant returns configured tables for the restaurant.
func (s *TableRepositoryStub) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Table, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var tables []model.Table
	for _, t := range s.Tables {
		if t.RestaurantID == restaurantID {
			tables = append(tables, t)
		}
	}
	return tables, nil
}

// GetByID finds a table by identifier.
func (s *TableRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Table, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Tables {
		if s.Tables[i].ID == id {
			table := s.Tables[i]
			return &table, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByNumber finds a table by number within a restaurant.
func (s *TableRepositoryStub) GetByNumber(ctx context.Context, restaurantID int64, number int) (*model.Table, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Tables {
		if s.Tables[i].RestaurantID == restaurantID && s.Tables[i].Number == number {
			table := s.Tables[i]
			return &table, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Release records the invocation and delegates to the override.
func (s *TableRepositoryStub) Release(ctx context.Context, tableID int64) error {
	s.Released = append(s.Released, tableID)
	if s.ReleaseFn != nil {
		return s.ReleaseFn(ctx, tableID)
	}
	return s.Err
}

// Transfer records the invocation and delegates to the override.
func (s *TableRepositoryStub) Transfer(ctx context.Context, restaurantID int64, sourceNumber, destinationNumber int) error {
	s.Transfers = append(s.Transfers, TransferCall{restaurantID, sourceNumber, destinationNumber})
	if s.TransferFn != nil {
		return s.TransferFn(ctx, restaurantID, sourceNumber, destinationNumber)
	}
	return s.Err
}

// MenuRepositoryStub serves menu items keyed by owning restaurant.
type MenuRepositoryStub struct {
	Items map[int64][]model.MenuItem
	Err   error
}

// GetItemForRestaurant resolves an item only within its restaurant.
func (s *MenuRepositoryStub) GetItemForRestaurant(ctx context.Context, menuItemID, restaurantID int64) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, item := range s.Items[restaurantID] {
		if item.ID == menuItemID {
			found := item
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByRestaurant returns the restaurant's items.
func (s *MenuRepositoryStub) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items[restaurantID], nil
}

// StatusUpdateCall records UpdateStatus invocations on the order stub.
type StatusUpdateCall struct {
	OrderID int64
	From    model.OrderStatus
	To      model.OrderStatus
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn            func(context.Context, *model.Order) (*model.Order, bool, error)
	GetByIDFn           func(context.Context, int64) (*model.Order, error)
	GetByCodeFn         func(context.Context, int64, string) (*model.Order, error)
	CodeUsedFn          func(context.Context, int64, string) (bool, error)
	ListFn              func(context.Context, int64, repository.OrderFilter) ([]model.Order, error)
	ConfirmFn           func(context.Context, int64, int64) (*model.Order, error)
	UpdateStatusFn      func(context.Context, int64, model.OrderStatus, model.OrderStatus) error
	CalculateMetricsFn  func(context.Context, int64, time.Time) (*model.DailyMetric, error)
	SalesByProductFn    func(context.Context, int64, time.Time, time.Time) ([]model.ProductSales, error)
	FindByDateRangeFn   func(context.Context, int64, time.Time, time.Time, *model.OrderStatus) ([]model.Order, error)
	SoldItemsFn         func(context.Context, int64, time.Time, time.Time, *bool) ([]model.SoldItem, error)
	Orders              []model.Order
	Created             []*model.Order
	StatusUpdates       []StatusUpdateCall
	CodeUsed            bool
	CalculateCallCounts map[int64]int
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, bool, error) {
	s.Created = append(s.Created, order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	stored := *order
	stored.ID = int64(len(s.Created))
	stored.CreatedAt = time.Now()
	return &stored, true, nil
}

// GetByID returns a matched order from the configured slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByCode returns the restaurant's order with the given code.
func (s *OrderRepositoryStub) GetByCode(ctx context.Context, restaurantID int64, code string) (*model.Order, error) {
	if s.GetByCodeFn != nil {
		return s.GetByCodeFn(ctx, restaurantID, code)
	}
	for i := range s.Orders {
		if s.Orders[i].RestaurantID == restaurantID && s.Orders[i].Code == code {
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CodeUsedInLast24h reports the configured flag.
func (s *OrderRepositoryStub) CodeUsedInLast24h(ctx context.Context, restaurantID int64, code string) (bool, error) {
	if s.CodeUsedFn != nil {
		return s.CodeUsedFn(ctx, restaurantID, code)
	}
	return s.CodeUsed, nil
}

// ListByRestaurant returns configured orders.
func (s *OrderRepositoryStub) ListByRestaurant(ctx context.Context, restaurantID int64, filter repository.OrderFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, restaurantID, filter)
	}
	return s.Orders, nil
}

// ListByCustomerInLast24h returns configured orders.
func (s *OrderRepositoryStub) ListByCustomerInLast24h(ctx context.Context, restaurantID, customerID int64) ([]model.Order, error) {
	return s.Orders, nil
}

// ListByTemporaryCustomerInLast24h returns configured orders.
func (s *OrderRepositoryStub) ListByTemporaryCustomerInLast24h(ctx context.Context, restaurantID int64, temporaryCustomerID string) ([]model.Order, error) {
	return s.Orders, nil
}

// Confirm delegates to the override or flips the stored order to PREPARING.
func (s *OrderRepositoryStub) Confirm(ctx context.Context, orderID, waiterID int64) (*model.Order, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, orderID, waiterID)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			order := s.Orders[i]
			order.Status = model.OrderStatusPreparing
			order.WaiterID = &waiterID
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, from, to)
	}
	s.StatusUpdates = append(s.StatusUpdates, StatusUpdateCall{OrderID: orderID, From: from, To: to})
	return nil
}

// CalculateDailyMetrics counts invocations and delegates to the override.
func (s *OrderRepositoryStub) CalculateDailyMetrics(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error) {
	if s.CalculateCallCounts == nil {
		s.CalculateCallCounts = make(map[int64]int)
	}
	s.CalculateCallCounts[restaurantID]++
	if s.CalculateMetricsFn != nil {
		return s.CalculateMetricsFn(ctx, restaurantID, date)
	}
	return &model.DailyMetric{RestaurantID: restaurantID, Date: date}, nil
}

// SalesByProduct delegates to the override or returns nothing.
func (s *OrderRepositoryStub) SalesByProduct(ctx context.Context, restaurantID int64, from, to time.Time) ([]model.ProductSales, error) {
	if s.SalesByProductFn != nil {
		return s.SalesByProductFn(ctx, restaurantID, from, to)
	}
	return nil, nil
}

// FindByDateRange delegates to the override or returns configured orders.
func (s *OrderRepositoryStub) FindByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, status *model.OrderStatus) ([]model.Order, error) {
	if s.FindByDateRangeFn != nil {
		return s.FindByDateRangeFn(ctx, restaurantID, from, to, status)
	}
	return s.Orders, nil
}

// SoldItemsByDateRange delegates to the override or returns nothing.
func (s *OrderRepositoryStub) SoldItemsByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, isSuggestion *bool) ([]model.SoldItem, error) {
	if s.SoldItemsFn != nil {
		return s.SoldItemsFn(ctx, restaurantID, from, to, isSuggestion)
	}
	return nil, nil
}

// MetricRepositoryStub stores daily metrics in-memory for tests.
type MetricRepositoryStub struct {
	Upserted []model.DailyMetric
	Metric   *model.DailyMetric
	GetErr   error
	Err      error
}

// Upsert records the metric.
func (s *MetricRepositoryStub) Upsert(ctx context.Context, metric *model.DailyMetric) error {
	if s.Err != nil {
		return s.Err
	}
	s.Upserted = append(s.Upserted, *metric)
	return nil
}

// Get returns the configured metric or the configured error.
func (s *MetricRepositoryStub) Get(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if s.Metric == nil {
		return nil, domainErrors.ErrNotFound
	}
	return s.Metric, nil
}
