package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
)

type restaurantRepository struct {
	storage *Storage
}

const restaurantColumns = `id, name, email, password_hash, created_at`

func scanRestaurant(row pgx.Row) (*model.Restaurant, error) {
	var rest model.Restaurant
	err := row.Scan(&rest.ID, &rest.Name, &rest.Email, &rest.PasswordHash, &rest.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepository) GetByEmail(ctx context.Context, email string) (*model.Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE email=$1`
	return scanRestaurant(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id=$1`
	return scanRestaurant(r.storage.pool.QueryRow(ctx, query, id))
}
