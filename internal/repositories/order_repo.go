package repositories

import (
	"context"
	"fmt"
	"time"

	"restomart/internal/common"
	"restomart/internal/models"
	"restomart/pkg/database"

	"github.com/jackc/pgx/v5"
)

// Daily queries take the day as $1; a NULL day falls back to the store's CURRENT_DATE.
const (
	insertOrderQuery = `
		INSERT INTO orders (menu_id, quantity, order_time)
		VALUES ($1, $2, NOW())
		RETURNING id, order_time
	`
	listOrdersQuery = `
		SELECT o.id, m.name, o.quantity, o.order_time
		FROM orders o
		JOIN menu_items m ON o.menu_id = m.id
		ORDER BY o.id ASC
	`
	dailySalesSummaryQuery = `
		SELECT COUNT(o.id), COALESCE(SUM(m.price * o.quantity), 0)::bigint
		FROM orders o
		JOIN menu_items m ON o.menu_id = m.id
		WHERE o.order_time::date = COALESCE($1::date, CURRENT_DATE)
	`
	dailySalesByMenuItemQuery = `
		SELECT m.name, SUM(m.price * o.quantity)::bigint AS total_sales
		FROM orders o
		JOIN menu_items m ON o.menu_id = m.id
		WHERE o.order_time::date = COALESCE($1::date, CURRENT_DATE)
		GROUP BY m.name
		ORDER BY m.name ASC
	`
	currentDateQuery = `SELECT CURRENT_DATE`
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context) ([]*models.OrderLine, error)
	DailySalesSummary(ctx context.Context, day time.Time) (*models.SalesSummary, error)
	DailySalesByMenuItem(ctx context.Context, day time.Time) (models.SalesByMenuItem, error)
	CurrentDate(ctx context.Context) (time.Time, error)
}

type orderRepo struct {
	db database.DB
}

func NewOrderRepo(db database.DB) OrderRepository {
	return &orderRepo{db: db}
}

// dayArg renders day as a query argument; the zero day becomes NULL.
func dayArg(day time.Time) any {
	if day.IsZero() {
		return nil
	}
	return day.Format(common.DayLayout)
}

// Create inserts the order in its own transaction. The menu item is not looked up
// first: a missing item surfaces from the foreign key as a ReferentialError.
func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	return database.RunInTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrderQuery, order.MenuID, order.Quantity).Scan(&order.ID, &order.OrderTime)
		if err != nil {
			if database.IsForeignKeyViolation(err) {
				return &common.ReferentialError{MenuID: order.MenuID, Err: err}
			}
			return fmt.Errorf("insert order: %w", database.ClassifyError(err))
		}
		return nil
	})
}

// List returns orders joined with their menu item names. Orders whose menu item
// no longer exists are excluded by the inner join.
func (r *orderRepo) List(ctx context.Context) ([]*models.OrderLine, error) {
	rows, err := r.db.Query(ctx, listOrdersQuery)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", database.ClassifyError(err))
	}
	defer rows.Close()

	lines := make([]*models.OrderLine, 0)
	for rows.Next() {
		line := &models.OrderLine{}
		if err := rows.Scan(&line.OrderID, &line.MenuName, &line.Quantity, &line.OrderTime); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", database.ClassifyError(err))
	}
	return lines, nil
}

// DailySalesSummary counts the orders of one day and sums price * quantity over them.
// A day without orders yields a zero summary.
func (r *orderRepo) DailySalesSummary(ctx context.Context, day time.Time) (*models.SalesSummary, error) {
	summary := &models.SalesSummary{Day: common.FormatDay(day)}
	err := r.db.QueryRow(ctx, dailySalesSummaryQuery, dayArg(day)).Scan(&summary.OrderCount, &summary.TotalSales)
	if err != nil {
		return nil, fmt.Errorf("daily sales summary: %w", database.ClassifyError(err))
	}
	return summary, nil
}

// DailySalesByMenuItem sums price * quantity per menu item name for one day.
func (r *orderRepo) DailySalesByMenuItem(ctx context.Context, day time.Time) (models.SalesByMenuItem, error) {
	rows, err := r.db.Query(ctx, dailySalesByMenuItemQuery, dayArg(day))
	if err != nil {
		return nil, fmt.Errorf("daily sales by menu item: %w", database.ClassifyError(err))
	}
	defer rows.Close()

	sales := make(models.SalesByMenuItem)
	for rows.Next() {
		var name string
		var total int64
		if err := rows.Scan(&name, &total); err != nil {
			return nil, err
		}
		sales[name] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("daily sales by menu item: %w", database.ClassifyError(err))
	}
	return sales, nil
}

// CurrentDate returns the store's current calendar date.
func (r *orderRepo) CurrentDate(ctx context.Context) (time.Time, error) {
	var today time.Time
	if err := r.db.QueryRow(ctx, currentDateQuery).Scan(&today); err != nil {
		return time.Time{}, fmt.Errorf("current date: %w", database.ClassifyError(err))
	}
	return today, nil
}
