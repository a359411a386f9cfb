package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx/fxtest"

	"github.com/vmesquit/mesapos/internal/config"
	"github.com/vmesquit/mesapos/internal/domain/model"
)

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	event := OrderEvent{OrderID: 10, RestaurantID: 1, Code: "ABC234", Status: model.OrderStatusWaiting}

	if err := p.OrderCreated(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.OrderConfirmed(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.OrderStatusChanged(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderEventJSONShape(t *testing.T) {
	tableID := int64(3)
	event := OrderEvent{
		OrderID:      10,
		RestaurantID: 1,
		Code:         "ABC234",
		Status:       model.OrderStatusPreparing,
		TableID:      &tableID,
		Total:        42.5,
		OccurredAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["code"] != "ABC234" || decoded["status"] != "PREPARING" {
		t.Fatalf("unexpected payload: %s", body)
	}
	if _, ok := decoded["waiter_id"]; ok {
		t.Fatalf("nil waiter id must be omitted: %s", body)
	}
}

func TestNewPublisherWithoutBroker(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	p, err := newPublisher(publisherParams{
		Lifecycle: lc,
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(NoopPublisher); !ok {
		t.Fatalf("expected noop publisher, got %T", p)
	}
}
