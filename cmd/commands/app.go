package commands

import (
	"context"
	"fmt"
	"time"

	"restomart/internal/analytics"
	"restomart/internal/caching"
	"restomart/internal/config"
	"restomart/internal/repositories"
	"restomart/internal/services"
	"restomart/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

// app holds the wired dependencies shared by every command
type app struct {
	cfg     *config.Config
	loc     *time.Location
	pool    *pgxpool.Pool
	cache   caching.CacheService
	menus   services.MenuService
	orders  services.OrderService
	reports *analytics.Service
}

// newApp loads configuration, opens the store and makes sure the schema exists.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	pool, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var cache caching.CacheService
	if cfg.CacheEnabled() {
		cache = caching.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	orders := services.NewOrderService(repositories.NewOrderRepo(pool), cache, cfg.ReportCacheTTL)

	return &app{
		cfg:     cfg,
		loc:     loc,
		pool:    pool,
		cache:   cache,
		menus:   services.NewMenuService(repositories.NewMenuItemRepo(pool)),
		orders:  orders,
		reports: analytics.NewService(orders),
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.StoreTimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return pool, nil
}

func (a *app) Close() {
	a.pool.Close()
}
