package repository

import (
	"context"
	"time"

	"github.com/vmesquit/mesapos/internal/domain/model"
)

// MetricRepository stores derived per-day aggregates.
type MetricRepository interface {
	Upsert(ctx context.Context, metric *model.DailyMetric) error
	Get(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error)
}
