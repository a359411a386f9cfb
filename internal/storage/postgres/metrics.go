package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
)

type metricRepository struct {
	storage *Storage
}

func (r *metricRepository) Upsert(ctx context.Context, metric *model.DailyMetric) error {
	const query = `INSERT INTO daily_metrics (restaurant_id, date, total_orders, total_revenue, average_decision_time)
                   VALUES ($1, $2::date, $3, $4, $5)
                   ON CONFLICT (restaurant_id, date) DO UPDATE
                   SET total_orders = EXCLUDED.total_orders,
                       total_revenue = EXCLUDED.total_revenue,
                       average_decision_time = EXCLUDED.average_decision_time,
                       updated_at = NOW()`
	_, err := r.storage.pool.Exec(ctx, query,
		metric.RestaurantID, metric.Date, metric.TotalOrders, metric.TotalRevenue, metric.AverageDecisionTime)
	return err
}

func (r *metricRepository) Get(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error) {
	const query = `SELECT id, restaurant_id, date, total_orders, total_revenue, average_decision_time, updated_at
                   FROM daily_metrics WHERE restaurant_id=$1 AND date=$2::date`
	var m model.DailyMetric
	err := r.storage.pool.QueryRow(ctx, query, restaurantID, date).
		Scan(&m.ID, &m.RestaurantID, &m.Date, &m.TotalOrders, &m.TotalRevenue, &m.AverageDecisionTime, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
