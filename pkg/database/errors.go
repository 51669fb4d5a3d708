package database

import (
	"errors"
	"fmt"

	"restomart/internal/common"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the data layer reacts to.
const (
	notNullViolation    = "23502"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// constraintFields maps schema constraint names onto the input field they guard.
var constraintFields = map[string]string{
	"menu_items_name_not_blank":     "name",
	"menu_items_price_non_negative": "price",
	"orders_quantity_positive":      "quantity",
	"orders_menu_id_fkey":           "menu_id",
}

// IsForeignKeyViolation reports whether err is a foreign key violation raised by the store.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

// ClassifyError turns store errors into the data layer's error taxonomy.
// Constraint violations become ValidationErrors, connection failures wrap
// common.ErrStorageUnavailable, and everything else is returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case checkViolation, notNullViolation:
			field := pgErr.ColumnName
			if f, ok := constraintFields[pgErr.ConstraintName]; ok {
				field = f
			}
			return &common.ValidationError{Field: field, Message: pgErr.Message}
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return err
}
