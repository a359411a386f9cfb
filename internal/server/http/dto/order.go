package dto

import "time"

// CreateOrderItemRequest is one requested order line.
type CreateOrderItemRequest struct {
	MenuItemID     int64   `json:"menuItemId" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required"`
	Observation    *string `json:"observation"`
	DecisionTime   int     `json:"decisionTime"`
	IsSuggestion   bool    `json:"isSuggestion"`
	SuggestionType *string `json:"suggestionType"`
}

// CreateOrderKPIs carries client-measured decision timings.
type CreateOrderKPIs struct {
	TotalDecisionTime int `json:"totalDecisionTime"`
}

// CreateOrderRequest describes a new order submission.
type CreateOrderRequest struct {
	RestaurantID        int64                    `json:"restaurantId" binding:"required"`
	TransactionID       string                   `json:"transactionId" binding:"required"`
	TableID             *int64                   `json:"tableId"`
	WaiterID            *int64                   `json:"waiterId"`
	CustomerID          *int64                   `json:"customerId"`
	TemporaryCustomerID *string                  `json:"temporaryCustomerId"`
	CustomerName        *string                  `json:"customerName"`
	Items               []CreateOrderItemRequest `json:"items" binding:"required"`
	KPIs                CreateOrderKPIs          `json:"kpis"`
}

// ConfirmOrderRequest carries the waiter PIN gating order confirmation.
type ConfirmOrderRequest struct {
	PinCode string `json:"pinCode" binding:"required"`
}

// UpdateOrderStatusRequest requests an order lifecycle transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse is one order line in responses.
type OrderItemResponse struct {
	ID             int64   `json:"id"`
	MenuItemID     int64   `json:"menuItemId"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	Observation    *string `json:"observation,omitempty"`
	IsSuggestion   bool    `json:"isSuggestion"`
	SuggestionType *string `json:"suggestionType,omitempty"`
}

// OrderResponse is the order view returned by all order endpoints.
type OrderResponse struct {
	ID           int64               `json:"id"`
	Code         string              `json:"code"`
	Status       string              `json:"status"`
	Total        float64             `json:"total"`
	TableID      *int64              `json:"tableId,omitempty"`
	WaiterID     *int64              `json:"waiterId,omitempty"`
	CustomerName *string             `json:"customerName,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []OrderItemResponse `json:"items,omitempty"`
}
