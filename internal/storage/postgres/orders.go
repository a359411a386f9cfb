package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/domain/repository"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, restaurant_id, table_id, waiter_id, customer_id, temporary_customer_id,
       customer_name, transaction_id, code, status, total, decision_time, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.RestaurantID, &o.TableID, &o.WaiterID, &o.CustomerID, &o.TemporaryCustomerID,
		&o.CustomerName, &o.TransactionID, &o.Code, &o.Status, &o.Total, &o.DecisionTime, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.RestaurantID, &o.TableID, &o.WaiterID, &o.CustomerID, &o.TemporaryCustomerID,
			&o.CustomerName, &o.TransactionID, &o.Code, &o.Status, &o.Total, &o.DecisionTime, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, bool, error) {
	var (
		stored  *model.Order
		created bool
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (restaurant_id, table_id, waiter_id, customer_id, temporary_customer_id,
                                customer_name, transaction_id, code, status, total, decision_time)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                             ON CONFLICT (restaurant_id, transaction_id) DO NOTHING
                             RETURNING id, created_at, updated_at`

		inserted := *order
		err := tx.QueryRow(ctx, insertOrder,
			order.RestaurantID, order.TableID, order.WaiterID, order.CustomerID, order.TemporaryCustomerID,
			order.CustomerName, order.TransactionID, order.Code, order.Status, order.Total, order.DecisionTime,
		).Scan(&inserted.ID, &inserted.CreatedAt, &inserted.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Lost the idempotency race or a retry: hand back the winner.
				existing, err := getOrderByTransactionID(ctx, tx, order.RestaurantID, order.TransactionID)
				if err != nil {
					return err
				}
				stored = existing
				created = false
				return nil
			}
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price,
                                observation, is_suggestion, suggestion_type, decision_time)
                            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                            RETURNING id`
		for i := range inserted.Items {
			item := &inserted.Items[i]
			item.OrderID = inserted.ID
			if err := tx.QueryRow(ctx, insertItem,
				inserted.ID, item.MenuItemID, item.Quantity, item.UnitPrice,
				item.Observation, item.IsSuggestion, item.SuggestionType, item.DecisionTime,
			).Scan(&item.ID); err != nil {
				return err
			}
		}

		stored = &inserted
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

func getOrderByTransactionID(ctx context.Context, q querier, restaurantID int64, transactionID string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE restaurant_id=$1 AND transaction_id=$2`
	order, err := scanOrder(q.QueryRow(ctx, query, restaurantID, transactionID))
	if err != nil {
		return nil, err
	}
	if err := loadOrderItems(ctx, q, order); err != nil {
		return nil, err
	}
	return order, nil
}

func loadOrderItems(ctx context.Context, q querier, order *model.Order) error {
	const query = `SELECT id, order_id, menu_item_id, quantity, unit_price, observation,
                          is_suggestion, suggestion_type, decision_time
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := q.Query(ctx, query, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	order.Items = nil
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.UnitPrice,
			&item.Observation, &item.IsSuggestion, &item.SuggestionType, &item.DecisionTime); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := loadOrderItems(ctx, r.storage.pool, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByCode(ctx context.Context, restaurantID int64, code string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders
                   WHERE restaurant_id=$1 AND code=$2 AND created_at > NOW() - INTERVAL '24 hours'
                   ORDER BY created_at DESC
                   LIMIT 1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, restaurantID, code))
	if err != nil {
		return nil, err
	}
	if err := loadOrderItems(ctx, r.storage.pool, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) CodeUsedInLast24h(ctx context.Context, restaurantID int64, code string) (bool, error) {
	const query = `SELECT EXISTS(
                       SELECT 1 FROM orders
                       WHERE restaurant_id=$1 AND code=$2 AND created_at > NOW() - INTERVAL '24 hours')`
	var used bool
	if err := r.storage.pool.QueryRow(ctx, query, restaurantID, code).Scan(&used); err != nil {
		return false, err
	}
	return used, nil
}

func (r *orderRepository) ListByRestaurant(ctx context.Context, restaurantID int64, filter repository.OrderFilter) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE restaurant_id=$1`
	args := []any{restaurantID}
	if filter.TableID != nil {
		args = append(args, *filter.TableID)
		query += ` AND table_id=$2`
	}
	if filter.WaiterID != nil {
		args = append(args, *filter.WaiterID)
		if len(args) == 2 {
			query += ` AND waiter_id=$2`
		} else {
			query += ` AND waiter_id=$3`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	if filter.IncludeItems {
		for i := range orders {
			if err := loadOrderItems(ctx, r.storage.pool, &orders[i]); err != nil {
				return nil, err
			}
		}
	}
	return orders, nil
}

func (r *orderRepository) ListByCustomerInLast24h(ctx context.Context, restaurantID, customerID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders
                   WHERE restaurant_id=$1 AND customer_id=$2 AND created_at > NOW() - INTERVAL '24 hours'
                   ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, restaurantID, customerID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListByTemporaryCustomerInLast24h(ctx context.Context, restaurantID int64, temporaryCustomerID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders
                   WHERE restaurant_id=$1 AND temporary_customer_id=$2 AND created_at > NOW() - INTERVAL '24 hours'
                   ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, restaurantID, temporaryCustomerID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) Confirm(ctx context.Context, orderID, waiterID int64) (*model.Order, error) {
	var confirmed *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockOrder = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
		order, err := scanOrder(tx.QueryRow(ctx, lockOrder, orderID))
		if err != nil {
			return err
		}
		if order.Status != model.OrderStatusWaiting {
			return domainErrors.ErrInvalidTransition
		}

		const updateOrder = `UPDATE orders SET status=$1, waiter_id=$2, updated_at=NOW() WHERE id=$3`
		if _, err := tx.Exec(ctx, updateOrder, model.OrderStatusPreparing, waiterID, order.ID); err != nil {
			return err
		}

		if order.TableID != nil {
			const updateTable = `UPDATE tables
                                 SET status=$1, consumption=consumption+$2, waiter_id=COALESCE(waiter_id, $3)
                                 WHERE id=$4`
			if _, err := tx.Exec(ctx, updateTable, model.TableStatusOccupied, order.Total, waiterID, *order.TableID); err != nil {
				return err
			}
		}

		order.Status = model.OrderStatusPreparing
		order.WaiterID = &waiterID
		if err := loadOrderItems(ctx, tx, order); err != nil {
			return err
		}
		confirmed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 AND status=$3`
		tag, err := tx.Exec(ctx, query, to, orderID, from)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			// Either the order is gone or its status moved under us.
			const exists = `SELECT EXISTS(SELECT 1 FROM orders WHERE id=$1)`
			var found bool
			if err := tx.QueryRow(ctx, exists, orderID).Scan(&found); err != nil {
				return err
			}
			if !found {
				return domainErrors.ErrNotFound
			}
			return domainErrors.ErrInvalidTransition
		}

		// Cancelling an order already reflected on its table takes the
		// total back out of the running consumption.
		if to == model.OrderStatusCanceled && from != model.OrderStatusWaiting {
			const refund = `UPDATE tables t
                            SET consumption = GREATEST(t.consumption - o.total, 0)
                            FROM orders o
                            WHERE o.id=$1 AND t.id = o.table_id`
			if _, err := tx.Exec(ctx, refund, orderID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) CalculateDailyMetrics(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error) {
	const query = `SELECT COUNT(*),
                          COALESCE(SUM(total) FILTER (WHERE status <> 'CANCELED'), 0),
                          COALESCE(AVG(decision_time), 0)
                   FROM orders
                   WHERE restaurant_id=$1 AND created_at::date = $2::date`
	metric := &model.DailyMetric{RestaurantID: restaurantID, Date: date}
	err := r.storage.pool.QueryRow(ctx, query, restaurantID, date).
		Scan(&metric.TotalOrders, &metric.TotalRevenue, &metric.AverageDecisionTime)
	if err != nil {
		return nil, err
	}
	return metric, nil
}

func (r *orderRepository) SalesByProduct(ctx context.Context, restaurantID int64, from, to time.Time) ([]model.ProductSales, error) {
	const query = `SELECT mi.id, mi.name, SUM(oi.quantity), SUM(oi.quantity * oi.unit_price)
                   FROM order_items oi
                   JOIN orders o ON o.id = oi.order_id
                   JOIN menu_items mi ON mi.id = oi.menu_item_id
                   WHERE o.restaurant_id=$1 AND o.status <> 'CANCELED'
                     AND o.created_at >= $2 AND o.created_at < $3
                   GROUP BY mi.id, mi.name
                   ORDER BY SUM(oi.quantity * oi.unit_price) DESC`
	rows, err := r.storage.pool.Query(ctx, query, restaurantID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ProductSales
	for rows.Next() {
		var p model.ProductSales
		if err := rows.Scan(&p.MenuItemID, &p.Name, &p.TotalSold, &p.TotalRevenue); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) FindByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, status *model.OrderStatus) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders
              WHERE restaurant_id=$1 AND created_at >= $2 AND created_at < $3`
	args := []any{restaurantID, from, to}
	if status != nil {
		args = append(args, *status)
		query += ` AND status=$4`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) SoldItemsByDateRange(ctx context.Context, restaurantID int64, from, to time.Time, isSuggestion *bool) ([]model.SoldItem, error) {
	query := `SELECT mi.id, mi.name, mc.name, SUM(oi.quantity), SUM(oi.quantity * oi.unit_price), oi.is_suggestion
              FROM order_items oi
              JOIN orders o ON o.id = oi.order_id
              JOIN menu_items mi ON mi.id = oi.menu_item_id
              JOIN menu_categories mc ON mc.id = mi.category_id
              WHERE o.restaurant_id=$1 AND o.status <> 'CANCELED'
                AND o.created_at >= $2 AND o.created_at < $3`
	args := []any{restaurantID, from, to}
	if isSuggestion != nil {
		args = append(args, *isSuggestion)
		query += ` AND oi.is_suggestion=$4`
	}
	query += ` GROUP BY mi.id, mi.name, mc.name, oi.is_suggestion ORDER BY SUM(oi.quantity) DESC`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SoldItem
	for rows.Next() {
		var item model.SoldItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Category, &item.Quantity, &item.Total, &item.IsSuggestion); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
