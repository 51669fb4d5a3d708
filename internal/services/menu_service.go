package services

import (
	"context"
	"log"
	"strings"

	"restomart/internal/common"
	"restomart/internal/models"
	"restomart/internal/repositories"
)

// MenuService defines the menu operations exposed to the presentation layer
type MenuService interface {
	AddMenuItem(ctx context.Context, name string, price int64) (*models.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]*models.MenuItem, error)
}

type menuService struct {
	menuRepo repositories.MenuItemRepository
}

// NewMenuService creates a new menu service instance
func NewMenuService(menuRepo repositories.MenuItemRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

// AddMenuItem validates and persists a new menu item.
// Invalid input is rejected before anything is written.
func (s *menuService) AddMenuItem(ctx context.Context, name string, price int64) (*models.MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewValidationError("name", "name is required")
	}
	if price < 0 {
		return nil, common.NewValidationError("price", "price cannot be negative")
	}

	item := &models.MenuItem{Name: name, Price: price}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	log.Printf("Menu item %d added: %s (%d)", item.ID, item.Name, item.Price)
	return item, nil
}

// ListMenuItems returns all menu items in insertion order
func (s *menuService) ListMenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	return s.menuRepo.List(ctx)
}
