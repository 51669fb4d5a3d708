package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"

	"github.com/jackc/pgx/v5"
)

//go:embed migrations/*.sql
var schemaFS embed.FS

// schemaFiles returns the embedded DDL files in the order they are applied.
func schemaFiles() ([]string, error) {
	names, err := fs.Glob(schemaFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list schema files: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// EnsureSchema creates the menu_items and orders tables when they are missing.
// Every statement is IF NOT EXISTS, so running it against an initialized store is a no-op.
func EnsureSchema(ctx context.Context, db DB) error {
	names, err := schemaFiles()
	if err != nil {
		return err
	}

	err = RunInTx(ctx, db, func(tx pgx.Tx) error {
		for _, name := range names {
			sqlBytes, err := schemaFS.ReadFile(name)
			if err != nil {
				return fmt.Errorf("read schema %s: %w", name, err)
			}
			if _, err := tx.Exec(ctx, string(sqlBytes)); err != nil {
				return fmt.Errorf("apply schema %s: %w", name, ClassifyError(err))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Schema ensured (%d files)", len(names))
	return nil
}
