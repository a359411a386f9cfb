package events

import (
	"context"
	"time"

	"github.com/vmesquit/mesapos/internal/domain/model"
)

// OrderEvent is the wire payload emitted on order lifecycle changes.
type OrderEvent struct {
	OrderID      int64             `json:"order_id"`
	RestaurantID int64             `json:"restaurant_id"`
	Code         string            `json:"code"`
	Status       model.OrderStatus `json:"status"`
	TableID      *int64            `json:"table_id,omitempty"`
	WaiterID     *int64            `json:"waiter_id,omitempty"`
	Total        float64           `json:"total"`
	OccurredAt   time.Time         `json:"occurred_at"`
}

// Publisher emits order lifecycle events to interested consumers
// (kitchen displays, notification services). Publishing is best effort;
// callers must not fail their own transaction on publish errors.
type Publisher interface {
	OrderCreated(ctx context.Context, event OrderEvent) error
	OrderConfirmed(ctx context.Context, event OrderEvent) error
	OrderStatusChanged(ctx context.Context, event OrderEvent) error
}

// NoopPublisher discards all events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) OrderCreated(context.Context, OrderEvent) error       { return nil }
func (NoopPublisher) OrderConfirmed(context.Context, OrderEvent) error     { return nil }
func (NoopPublisher) OrderStatusChanged(context.Context, OrderEvent) error { return nil }
