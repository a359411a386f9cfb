package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
)

type menuRepository struct {
	storage *Storage
}

func (r *menuRepository) GetItemForRestaurant(ctx context.Context, menuItemID, restaurantID int64) (*model.MenuItem, error) {
	const query = `SELECT mi.id, mi.category_id, mi.name, mi.description, mi.price, mi.is_active, mi.image
                   FROM menu_items mi
                   JOIN menu_categories mc ON mc.id = mi.category_id
                   WHERE mi.id=$1 AND mc.restaurant_id=$2`
	var item model.MenuItem
	err := r.storage.pool.QueryRow(ctx, query, menuItemID, restaurantID).
		Scan(&item.ID, &item.CategoryID, &item.Name, &item.Description, &item.Price, &item.IsActive, &item.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	const query = `SELECT mi.id, mi.category_id, mi.name, mi.description, mi.price, mi.is_active, mi.image
                   FROM menu_items mi
                   JOIN menu_categories mc ON mc.id = mi.category_id
                   WHERE mc.restaurant_id=$1
                   ORDER BY mi.name`
	rows, err := r.storage.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Description, &item.Price, &item.IsActive, &item.Image); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
