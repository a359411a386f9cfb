package test

import (
	"context"
	"sync"
	"time"

	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/events"
)

// SchedulerStub records scheduled metric recomputations.
type SchedulerStub struct {
	mu    sync.Mutex
	Calls []int64
}

// Schedule stores the restaurant id of each request.
func (s *SchedulerStub) Schedule(restaurantID int64, date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, restaurantID)
}

// Count returns how many recomputations were scheduled.
func (s *SchedulerStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}

// PublisherStub records published order events.
type PublisherStub struct {
	mu        sync.Mutex
	Created   []events.OrderEvent
	Confirmed []events.OrderEvent
	Changed   []events.OrderEvent
	Err       error
}

// OrderCreated records the event.
func (s *PublisherStub) OrderCreated(ctx context.Context, event events.OrderEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Created = append(s.Created, event)
	return s.Err
}

// OrderConfirmed records the event.
func (s *PublisherStub) OrderConfirmed(ctx context.Context, event events.OrderEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Confirmed = append(s.Confirmed, event)
	return s.Err
}

// OrderStatusChanged records the event.
func (s *PublisherStub) OrderStatusChanged(ctx context.Context, event events.OrderEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Changed = append(s.Changed, event)
	return s.Err
}

// RecalculatorStub counts worker recalculation calls.
type RecalculatorStub struct {
	mu           sync.Mutex
	Calls        []int64
	RecalcFn     func(context.Context, int64, time.Time) (*model.DailyMetric, error)
	Recalculated chan int64
}

// Recalculate records the call and optionally signals completion.
func (s *RecalculatorStub) Recalculate(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, restaurantID)
	s.mu.Unlock()
	if s.Recalculated != nil {
		select {
		case s.Recalculated <- restaurantID:
		default:
		}
	}
	if s.RecalcFn != nil {
		return s.RecalcFn(ctx, restaurantID, date)
	}
	return &model.DailyMetric{RestaurantID: restaurantID, Date: date}, nil
}

// Count returns how many recalculations ran.
func (s *RecalculatorStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}
