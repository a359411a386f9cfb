package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
)

type waiterRepository struct {
	storage *Storage
}

const waiterColumns = `id, restaurant_id, pin_code, password_hash, name, nickname, created_at`

func scanWaiter(row pgx.Row) (*model.Waiter, error) {
	var w model.Waiter
	err := row.Scan(&w.ID, &w.RestaurantID, &w.PinCode, &w.PasswordHash, &w.Name, &w.Nickname, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *waiterRepository) GetByPin(ctx context.Context, restaurantID int64, pinCode string) (*model.Waiter, error) {
	const query = `SELECT ` + waiterColumns + ` FROM waiters WHERE restaurant_id=$1 AND pin_code=$2`
	return scanWaiter(r.storage.pool.QueryRow(ctx, query, restaurantID, pinCode))
}

func (r *waiterRepository) GetByID(ctx context.Context, id int64) (*model.Waiter, error) {
	const query = `SELECT ` + waiterColumns + ` FROM waiters WHERE id=$1`
	return scanWaiter(r.storage.pool.QueryRow(ctx, query, id))
}
