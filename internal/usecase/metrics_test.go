package usecase

import (
	"context"
	"testing"
	"time"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
	testhelpers "github.com/vmesquit/mesapos/internal/test"
)

func TestMetricsRecalculateUpserts(t *testing.T) {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	orders := &testhelpers.OrderRepositoryStub{
		CalculateMetricsFn: func(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error) {
			return &model.DailyMetric{RestaurantID: restaurantID, Date: date, TotalOrders: 4, TotalRevenue: 320, AverageDecisionTime: 42}, nil
		},
	}
	metrics := &testhelpers.MetricRepositoryStub{}
	uc := NewMetricsUseCase(orders, metrics)

	metric, err := uc.Recalculate(context.Background(), 1, day)
	if err != nil {
		t.Fatalf("recalculate failed: %v", err)
	}
	if metric.TotalOrders != 4 || metric.TotalRevenue != 320 {
		t.Fatalf("unexpected metric %+v", metric)
	}
	if len(metrics.Upserted) != 1 {
		t.Fatalf("expected one upsert, got %d", len(metrics.Upserted))
	}
}

func TestMetricsDailyComputesOnMiss(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	metrics := &testhelpers.MetricRepositoryStub{}
	uc := NewMetricsUseCase(orders, metrics)

	if _, err := uc.Daily(context.Background(), 1, time.Now()); err != nil {
		t.Fatalf("daily failed: %v", err)
	}
	if orders.CalculateCallCounts[1] != 1 {
		t.Fatalf("expected on-demand calculation, got %d calls", orders.CalculateCallCounts[1])
	}
	if len(metrics.Upserted) != 1 {
		t.Fatalf("expected computed metric persisted")
	}
}

func TestMetricsDailyServesStored(t *testing.T) {
	stored := &model.DailyMetric{RestaurantID: 1, TotalOrders: 7}
	orders := &testhelpers.OrderRepositoryStub{}
	metrics := &testhelpers.MetricRepositoryStub{Metric: stored}
	uc := NewMetricsUseCase(orders, metrics)

	metric, err := uc.Daily(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatalf("daily failed: %v", err)
	}
	if metric.TotalOrders != 7 {
		t.Fatalf("expected stored metric, got %+v", metric)
	}
	if orders.CalculateCallCounts[1] != 0 {
		t.Fatalf("stored hit must not recalculate")
	}
}

func TestMetricsSalesByProductRange(t *testing.T) {
	uc := NewMetricsUseCase(&testhelpers.OrderRepositoryStub{}, &testhelpers.MetricRepositoryStub{})
	now := time.Now()

	if _, err := uc.SalesByProduct(context.Background(), 1, now, now.Add(-time.Hour)); err != domainErrors.ErrValidation {
		t.Fatalf("expected ErrValidation for inverted range, got %v", err)
	}
}
