package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/domain/repository"
)

// MetricsUseCase recomputes and serves per-day restaurant aggregates.
type MetricsUseCase struct {
	orders  repository.OrderRepository
	metrics repository.MetricRepository
}

// NewMetricsUseCase constructs MetricsUseCase.
func NewMetricsUseCase(orders repository.OrderRepository, metrics repository.MetricRepository) *MetricsUseCase {
	return &MetricsUseCase{orders: orders, metrics: metrics}
}

// Recalculate aggregates the restaurant's day from persisted orders and
// upserts the daily metric row.
func (u *MetricsUseCase) Recalculate(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error) {
	metric, err := u.orders.CalculateDailyMetrics(ctx, restaurantID, date)
	if err != nil {
		return nil, err
	}
	if err := u.metrics.Upsert(ctx, metric); err != nil {
		return nil, err
	}
	return metric, nil
}

// Daily returns the stored aggregate for the day, computing it on first
// access.
func (u *MetricsUseCase) Daily(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error) {
	metric, err := u.metrics.Get(ctx, restaurantID, date)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return u.Recalculate(ctx, restaurantID, date)
		}
		return nil, err
	}
	return metric, nil
}

// SalesByProduct aggregates per-product sales over a date range.
func (u *MetricsUseCase) SalesByProduct(ctx context.Context, restaurantID int64, from, to time.Time) ([]model.ProductSales, error) {
	if to.Before(from) {
		return nil, domainErrors.ErrValidation
	}
	return u.orders.SalesByProduct(ctx, restaurantID, from, to)
}
