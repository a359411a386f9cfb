package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/domain/repository"
	"github.com/vmesquit/mesapos/internal/events"
)

// MetricsScheduler accepts fire-and-forget daily metrics recomputation
// requests. Implemented by the background worker.
type MetricsScheduler interface {
	Schedule(restaurantID int64, date time.Time)
}

// CreateOrderItemInput is one requested order line.
type CreateOrderItemInput struct {
	MenuItemID     int64
	Quantity       int
	Observation    *string
	DecisionTime   int
	IsSuggestion   bool
	SuggestionType *string
}

// CreateOrderInput carries everything needed to register an order.
type CreateOrderInput struct {
	RestaurantID        int64
	TransactionID       string
	TableID             *int64
	WaiterID            *int64
	CustomerID          *int64
	TemporaryCustomerID *string
	CustomerName        *string
	TotalDecisionTime   int
	Items               []CreateOrderItemInput
}

// OrderUseCase encapsulates the order lifecycle.
type OrderUseCase struct {
	orders    repository.OrderRepository
	menu      repository.MenuRepository
	waiters   repository.WaiterRepository
	scheduler MetricsScheduler
	publisher events.Publisher
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, menu repository.MenuRepository, waiters repository.WaiterRepository, scheduler MetricsScheduler, publisher events.Publisher) *OrderUseCase {
	return &OrderUseCase{orders: orders, menu: menu, waiters: waiters, scheduler: scheduler, publisher: publisher}
}

// Create registers a new order. Replays of the same (restaurant, transaction
// id) return the stored order unchanged; the created flag tells them apart.
func (u *OrderUseCase) Create(ctx context.Context, input CreateOrderInput) (*model.Order, bool, error) {
	input.TransactionID = strings.TrimSpace(input.TransactionID)
	if input.RestaurantID == 0 || input.TransactionID == "" {
		return nil, false, domainErrors.ErrValidation
	}
	if len(input.Items) == 0 {
		return nil, false, domainErrors.ErrValidation
	}

	order := &model.Order{
		RestaurantID:        input.RestaurantID,
		TableID:             input.TableID,
		WaiterID:            input.WaiterID,
		CustomerID:          input.CustomerID,
		TemporaryCustomerID: input.TemporaryCustomerID,
		CustomerName:        input.CustomerName,
		TransactionID:       input.TransactionID,
		Status:              model.OrderStatusWaiting,
		DecisionTime:        input.TotalDecisionTime,
	}

	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, false, domainErrors.ErrValidation
		}
		item, err := u.menu.GetItemForRestaurant(ctx, line.MenuItemID, input.RestaurantID)
		if err != nil {
			return nil, false, err
		}
		if !item.IsActive {
			return nil, false, domainErrors.ErrValidation
		}
		order.Items = append(order.Items, model.OrderItem{
			MenuItemID:     line.MenuItemID,
			Quantity:       line.Quantity,
			UnitPrice:      item.Price,
			Observation:    line.Observation,
			IsSuggestion:   line.IsSuggestion,
			SuggestionType: line.SuggestionType,
			DecisionTime:   line.DecisionTime,
		})
		order.Total += item.Price * float64(line.Quantity)
	}

	code, err := u.freshOrderCode(ctx, input.RestaurantID)
	if err != nil {
		return nil, false, err
	}
	order.Code = code

	stored, created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, false, err
	}

	if created {
		u.scheduler.Schedule(stored.RestaurantID, stored.CreatedAt)
		_ = u.publisher.OrderCreated(ctx, orderEvent(stored))
	}

	return stored, created, nil
}

// freshOrderCode draws codes until one is unused within the restaurant's
// last 24 hours. Codes are not globally unique.
func (u *OrderUseCase) freshOrderCode(ctx context.Context, restaurantID int64) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := GenerateOrderCode()
		if err != nil {
			return "", err
		}
		used, err := u.orders.CodeUsedInLast24h(ctx, restaurantID, code)
		if err != nil {
			return "", err
		}
		if !used {
			return code, nil
		}
	}
	return "", domainErrors.ErrConflict
}

// GetByCode looks up an order by its short code within a restaurant.
func (u *OrderUseCase) GetByCode(ctx context.Context, code string, restaurantID int64) (*model.Order, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || restaurantID == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return u.orders.GetByCode(ctx, restaurantID, code)
}

// ConfirmWithPin re-validates the waiter PIN against the order's restaurant
// and moves the order out of WAITING. The repository reflects the total on
// the order's table within the same transaction. Orders belonging to another
// restaurant are indistinguishable from missing ones.
func (u *OrderUseCase) ConfirmWithPin(ctx context.Context, restaurantID, orderID int64, pinCode string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, domainErrors.ErrNotFound
	}
	if order.Status != model.OrderStatusWaiting {
		return nil, domainErrors.ErrInvalidTransition
	}

	waiter, err := u.waiters.GetByPin(ctx, order.RestaurantID, strings.TrimSpace(pinCode))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidPin
		}
		return nil, err
	}

	confirmed, err := u.orders.Confirm(ctx, order.ID, waiter.ID)
	if err != nil {
		return nil, err
	}

	u.scheduler.Schedule(confirmed.RestaurantID, confirmed.CreatedAt)
	_ = u.publisher.OrderConfirmed(ctx, orderEvent(confirmed))

	return confirmed, nil
}

// UpdateStatus applies a forward lifecycle transition. The prior status is
// handed to the repository so the update only lands if the order has not
// moved in the meantime.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, restaurantID, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrValidation
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, domainErrors.ErrNotFound
	}
	if !CanTransition(order.Status, status) {
		return nil, domainErrors.ErrInvalidTransition
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, order.Status, status); err != nil {
		return nil, err
	}
	order.Status = status

	u.scheduler.Schedule(order.RestaurantID, order.CreatedAt)
	_ = u.publisher.OrderStatusChanged(ctx, orderEvent(order))

	return order, nil
}

// ListByRestaurant returns the restaurant's orders with optional filters.
func (u *OrderUseCase) ListByRestaurant(ctx context.Context, restaurantID int64, filter repository.OrderFilter) ([]model.Order, error) {
	return u.orders.ListByRestaurant(ctx, restaurantID, filter)
}

// ListByCustomer returns a customer's orders from the last 24 hours.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, restaurantID, customerID int64) ([]model.Order, error) {
	return u.orders.ListByCustomerInLast24h(ctx, restaurantID, customerID)
}

// ListByTemporaryCustomer returns a temporary customer's orders from the
// last 24 hours.
func (u *OrderUseCase) ListByTemporaryCustomer(ctx context.Context, restaurantID int64, temporaryCustomerID string) ([]model.Order, error) {
	if strings.TrimSpace(temporaryCustomerID) == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.orders.ListByTemporaryCustomerInLast24h(ctx, restaurantID, temporaryCustomerID)
}

// FindByDateRange returns orders within a date range, optionally filtered
// by status.
func (u *OrderUseCase) FindByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, status *model.OrderStatus) ([]model.Order, error) {
	if to.Before(from) {
		return nil, domainErrors.ErrValidation
	}
	return u.orders.FindByDateRange(ctx, restaurantID, from, to, status)
}

// SoldItemsByDateRange returns sold order lines within a date range,
// optionally filtered by the suggestion flag.
func (u *OrderUseCase) SoldItemsByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, isSuggestion *bool) ([]model.SoldItem, error) {
	if to.Before(from) {
		return nil, domainErrors.ErrValidation
	}
	return u.orders.SoldItemsByDateRange(ctx, restaurantID, from, to, isSuggestion)
}

func orderEvent(order *model.Order) events.OrderEvent {
	return events.OrderEvent{
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Code:         order.Code,
		Status:       order.Status,
		TableID:      order.TableID,
		WaiterID:     order.WaiterID,
		Total:        order.Total,
		OccurredAt:   time.Now(),
	}
}
