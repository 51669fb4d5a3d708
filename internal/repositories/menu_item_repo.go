package repositories

import (
	"context"
	"fmt"

	"restomart/internal/models"
	"restomart/pkg/database"

	"github.com/jackc/pgx/v5"
)

const (
	insertMenuItemQuery = `
		INSERT INTO menu_items (name, price)
		VALUES ($1, $2)
		RETURNING id
	`
	listMenuItemsQuery = `
		SELECT id, name, price
		FROM menu_items
		ORDER BY id ASC
	`
)

type MenuItemRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	List(ctx context.Context) ([]*models.MenuItem, error)
}

type menuItemRepo struct {
	db database.DB
}

func NewMenuItemRepo(db database.DB) MenuItemRepository {
	return &menuItemRepo{db: db}
}

// Create inserts the item in its own transaction and fills in the generated id.
func (r *menuItemRepo) Create(ctx context.Context, item *models.MenuItem) error {
	return database.RunInTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertMenuItemQuery, item.Name, item.Price).Scan(&item.ID); err != nil {
			return fmt.Errorf("insert menu item: %w", database.ClassifyError(err))
		}
		return nil
	})
}

// List returns every menu item in insertion order.
func (r *menuItemRepo) List(ctx context.Context) ([]*models.MenuItem, error) {
	rows, err := r.db.Query(ctx, listMenuItemsQuery)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", database.ClassifyError(err))
	}
	defer rows.Close()

	items := make([]*models.MenuItem, 0)
	for rows.Next() {
		item := &models.MenuItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list menu items: %w", database.ClassifyError(err))
	}
	return items, nil
}
