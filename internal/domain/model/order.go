package model

import "time"

// OrderStatus describes order processing lifecycle.
type OrderStatus string

const (
	OrderStatusWaiting   OrderStatus = "WAITING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusFinished  OrderStatus = "FINISHED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// Terminal reports whether no further transition is allowed from the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusFinished || s == OrderStatusCanceled
}

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusWaiting, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivered, OrderStatusFinished, OrderStatusCanceled:
		return true
	}
	return false
}

// Order describes a customer order submitted to a restaurant.
type Order struct {
	ID                  int64
	RestaurantID        int64
	TableID             *int64
	WaiterID            *int64
	CustomerID          *int64
	TemporaryCustomerID *string
	CustomerName        *string
	TransactionID       string
	Code                string
	Status              OrderStatus
	Total               float64
	DecisionTime        int
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Items               []OrderItem
}

// OrderItem is a single order line owned exclusively by its order.
type OrderItem struct {
	ID             int64
	OrderID        int64
	MenuItemID     int64
	Quantity       int
	UnitPrice      float64
	Observation    *string
	IsSuggestion   bool
	SuggestionType *string
	DecisionTime   int
}
