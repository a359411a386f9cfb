package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
)

type tableRepository struct {
	storage *Storage
}

const tableColumns = `id, restaurant_id, number, status, consumption, capacity, waiter_id`

func scanTable(row pgx.Row) (*model.Table, error) {
	var t model.Table
	err := row.Scan(&t.ID, &t.RestaurantID, &t.Number, &t.Status, &t.Consumption, &t.Capacity, &t.WaiterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *tableRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Table, error) {
	const query = `SELECT ` + tableColumns + ` FROM tables WHERE restaurant_id=$1 ORDER BY number`
	rows, err := r.storage.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Table
	for rows.Next() {
		var t model.Table
		if err := rows.Scan(&t.ID, &t.RestaurantID, &t.Number, &t.Status, &t.Consumption, &t.Capacity, &t.WaiterID); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *tableRepository) GetByID(ctx context.Context, id int64) (*model.Table, error) {
	const query = `SELECT ` + tableColumns + ` FROM tables WHERE id=$1`
	return scanTable(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *tableRepository) GetByNumber(ctx context.Context, restaurantID int64, number int) (*model.Table, error) {
	const query = `SELECT ` + tableColumns + ` FROM tables WHERE restaurant_id=$1 AND number=$2`
	return scanTable(r.storage.pool.QueryRow(ctx, query, restaurantID, number))
}

func (r *tableRepository) Release(ctx context.Context, tableID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockTable = `SELECT id FROM tables WHERE id=$1 FOR UPDATE`
		var id int64
		if err := tx.QueryRow(ctx, lockTable, tableID).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const activeOrders = `SELECT EXISTS(
                                  SELECT 1 FROM orders
                                  WHERE table_id=$1 AND status NOT IN ('FINISHED', 'CANCELED'))`
		var busy bool
		if err := tx.QueryRow(ctx, activeOrders, tableID).Scan(&busy); err != nil {
			return err
		}
		if busy {
			return domainErrors.ErrConflict
		}

		const freeTable = `UPDATE tables SET status=$1, consumption=0, waiter_id=NULL WHERE id=$2`
		_, err := tx.Exec(ctx, freeTable, model.TableStatusFree, tableID)
		return err
	})
}

func (r *tableRepository) Transfer(ctx context.Context, restaurantID int64, sourceNumber, destinationNumber int) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// One query locks both rows, so a concurrent confirmation cannot land
		// on the source after it was freed.
		const lockTables = `SELECT id, number FROM tables
                            WHERE restaurant_id=$1 AND number IN ($2, $3)
                            ORDER BY number
                            FOR UPDATE`
		rows, err := tx.Query(ctx, lockTables, restaurantID, sourceNumber, destinationNumber)
		if err != nil {
			return err
		}

		var sourceID, destinationID int64
		found := 0
		for rows.Next() {
			var id int64
			var number int
			if err := rows.Scan(&id, &number); err != nil {
				rows.Close()
				return err
			}
			switch number {
			case sourceNumber:
				sourceID = id
			case destinationNumber:
				destinationID = id
			}
			found++
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if found != 2 {
			return domainErrors.ErrNotFound
		}

		const moveOrders = `UPDATE orders SET table_id=$1, updated_at=NOW()
                            WHERE table_id=$2 AND status NOT IN ('FINISHED', 'CANCELED')`
		if _, err := tx.Exec(ctx, moveOrders, destinationID, sourceID); err != nil {
			return err
		}

		const recompute = `UPDATE tables t
                           SET consumption = COALESCE((
                               SELECT SUM(o.total) FROM orders o
                               WHERE o.table_id = t.id AND o.status NOT IN ('FINISHED', 'CANCELED')), 0)
                           WHERE t.id IN ($1, $2)`
		if _, err := tx.Exec(ctx, recompute, sourceID, destinationID); err != nil {
			return err
		}

		const freeSource = `UPDATE tables SET status=$1, waiter_id=NULL WHERE id=$2`
		if _, err := tx.Exec(ctx, freeSource, model.TableStatusFree, sourceID); err != nil {
			return err
		}

		const occupyDestination = `UPDATE tables SET status=$1 WHERE id=$2`
		if _, err := tx.Exec(ctx, occupyDestination, model.TableStatusOccupied, destinationID); err != nil {
			return err
		}

		return nil
	})
}
