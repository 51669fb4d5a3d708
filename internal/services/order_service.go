package services

import (
	"context"
	"log"
	"time"

	"restomart/internal/caching"
	"restomart/internal/common"
	"restomart/internal/models"
	"restomart/internal/repositories"
)

// OrderService defines the order and daily sales operations exposed to the presentation layer
type OrderService interface {
	PlaceOrder(ctx context.Context, menuID int64, quantity int) (*models.Order, error)
	ListOrders(ctx context.Context) ([]*models.OrderLine, error)
	DailySalesSummary(ctx context.Context, day time.Time) (*models.SalesSummary, error)
	DailySalesByMenuItem(ctx context.Context, day time.Time) (models.SalesByMenuItem, error)
	CurrentDate(ctx context.Context) (time.Time, error)
}

type orderService struct {
	orderRepo repositories.OrderRepository
	cache     caching.CacheService
	cacheTTL  time.Duration
}

// NewOrderService creates a new order service instance. cache may be nil, in which
// case every report is read from the store.
func NewOrderService(orderRepo repositories.OrderRepository, cache caching.CacheService, cacheTTL time.Duration) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// PlaceOrder records an order for an existing menu item. Existence of the menu item
// is left to the store; a missing item comes back as a ReferentialError.
func (s *orderService) PlaceOrder(ctx context.Context, menuID int64, quantity int) (*models.Order, error) {
	if quantity < 1 {
		return nil, common.NewValidationError("quantity", "quantity must be at least 1")
	}

	order := &models.Order{MenuID: menuID, Quantity: quantity}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	log.Printf("Order %d placed: menu item %d x %d", order.ID, order.MenuID, order.Quantity)
	return order, nil
}

// ListOrders returns all orders joined with their menu item names
func (s *orderService) ListOrders(ctx context.Context) ([]*models.OrderLine, error) {
	return s.orderRepo.List(ctx)
}

// CurrentDate returns the store's current calendar date
func (s *orderService) CurrentDate(ctx context.Context) (time.Time, error) {
	return s.orderRepo.CurrentDate(ctx)
}

// closedDay reports whether day lies strictly before the store's current date.
// Reports of closed days can no longer change and are safe to cache.
func (s *orderService) closedDay(ctx context.Context, day time.Time) (string, bool) {
	if s.cache == nil || day.IsZero() {
		return "", false
	}
	today, err := s.orderRepo.CurrentDate(ctx)
	if err != nil {
		log.Printf("WARN: skipping report cache, current date unavailable: %v", err)
		return "", false
	}
	key := common.FormatDay(day)
	return key, key < common.FormatDay(today)
}

// DailySalesSummary returns the order count and revenue of day; the zero day
// means the store's current date.
func (s *orderService) DailySalesSummary(ctx context.Context, day time.Time) (*models.SalesSummary, error) {
	key, cacheable := s.closedDay(ctx, day)
	if cacheable {
		cached, err := s.cache.GetSalesSummary(ctx, key)
		if err != nil {
			log.Printf("WARN: sales summary cache read failed for %s: %v", key, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	summary, err := s.orderRepo.DailySalesSummary(ctx, day)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.SetSalesSummary(ctx, summary, s.cacheTTL); err != nil {
			log.Printf("WARN: sales summary cache write failed for %s: %v", key, err)
		}
	}
	return summary, nil
}

// DailySalesByMenuItem returns revenue per menu item name for day; the zero day
// means the store's current date.
func (s *orderService) DailySalesByMenuItem(ctx context.Context, day time.Time) (models.SalesByMenuItem, error) {
	key, cacheable := s.closedDay(ctx, day)
	if cacheable {
		cached, err := s.cache.GetSalesByMenuItem(ctx, key)
		if err != nil {
			log.Printf("WARN: sales by menu item cache read failed for %s: %v", key, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	sales, err := s.orderRepo.DailySalesByMenuItem(ctx, day)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.SetSalesByMenuItem(ctx, key, sales, s.cacheTTL); err != nil {
			log.Printf("WARN: sales by menu item cache write failed for %s: %v", key, err)
		}
	}
	return sales, nil
}
