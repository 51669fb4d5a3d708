package testhelpers

import (
	"context"
	"testing"
	"time"

	"restomart/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB holds a schema-initialised PostgreSQL pool for integration tests
type TestDB struct {
	Pool    *pgxpool.Pool
	ConnStr string
	Cleanup func()
}

// SetupTestDB starts a disposable PostgreSQL container, connects to it in UTC
// and applies the schema. Cleanup closes the pool and terminates the container.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("restomart_test"),
		postgres.WithUsername("restomart"),
		postgres.WithPassword("restomart"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		t.Fatalf("Failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(ctx, connStr, "UTC")
	if err != nil {
		terminate()
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		terminate()
		t.Fatalf("Failed to apply schema: %v", err)
	}

	return &TestDB{
		Pool:    pool,
		ConnStr: connStr,
		Cleanup: func() {
			pool.Close()
			terminate()
		},
	}
}

// Reset empties both tables and restarts their identity sequences
func (db *TestDB) Reset(t *testing.T) {
	t.Helper()

	_, err := db.Pool.Exec(context.Background(), "TRUNCATE orders, menu_items RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to reset test database: %v", err)
	}
}

// SetupTestMenuItem inserts a menu item and returns its id
func SetupTestMenuItem(t *testing.T, db *TestDB, name string, price int64) int64 {
	t.Helper()

	var id int64
	err := db.Pool.QueryRow(context.Background(),
		"INSERT INTO menu_items (name, price) VALUES ($1, $2) RETURNING id", name, price).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test menu item: %v", err)
	}

	return id
}

// SetupTestOrderAt inserts an order with an explicit order time, for tests
// that need orders on days other than today
func SetupTestOrderAt(t *testing.T, db *TestDB, menuID int64, quantity int, orderTime time.Time) int64 {
	t.Helper()

	var id int64
	err := db.Pool.QueryRow(context.Background(),
		"INSERT INTO orders (menu_id, quantity, order_time) VALUES ($1, $2, $3) RETURNING id",
		menuID, quantity, orderTime).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test order: %v", err)
	}

	return id
}
