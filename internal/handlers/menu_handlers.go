package handlers

import (
	"net/http"

	"restomart/internal/common"
	"restomart/internal/services"

	"github.com/labstack/echo/v4"
)

// MenuHandlers handles menu item HTTP requests
type MenuHandlers struct {
	menuService services.MenuService
}

// NewMenuHandlers creates a new menu handlers instance
func NewMenuHandlers(menuService services.MenuService) *MenuHandlers {
	return &MenuHandlers{
		menuService: menuService,
	}
}

// CreateMenuItemRequest represents the menu item creation payload
type CreateMenuItemRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CreateMenuItem handles POST /menu-items
func (h *MenuHandlers) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item, err := h.menuService.AddMenuItem(ctx, req.Name, req.Price)
	if err != nil {
		return common.SendError(c, "add menu item", err)
	}

	return c.JSON(http.StatusCreated, item)
}

// ListMenuItems handles GET /menu-items
func (h *MenuHandlers) ListMenuItems(c echo.Context) error {
	items, err := h.menuService.ListMenuItems(c.Request().Context())
	if err != nil {
		return common.SendError(c, "list menu items", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"menu_items": items,
	})
}
