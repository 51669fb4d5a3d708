package handlers

import (
	"context"
	"net/http"
	"time"

	"restomart/internal/common"
	"restomart/internal/models"
	"restomart/internal/services"

	"github.com/labstack/echo/v4"
)

// DailyReporter builds the full report of a day
type DailyReporter interface {
	DailyReport(ctx context.Context, day time.Time) (*models.DailyReport, error)
}

// SalesHandlers handles daily sales endpoints. All of them accept an optional
// ?day=YYYY-MM-DD and default to the store's current date.
type SalesHandlers struct {
	orderService services.OrderService
	reporter     DailyReporter
}

// NewSalesHandlers creates a new sales handlers instance
func NewSalesHandlers(orderService services.OrderService, reporter DailyReporter) *SalesHandlers {
	return &SalesHandlers{
		orderService: orderService,
		reporter:     reporter,
	}
}

// GetSummary handles GET /sales/summary
func (h *SalesHandlers) GetSummary(c echo.Context) error {
	day, err := common.ParseDay(c.QueryParam("day"))
	if err != nil {
		return common.SendError(c, "parse day", err)
	}

	summary, err := h.orderService.DailySalesSummary(c.Request().Context(), day)
	if err != nil {
		return common.SendError(c, "get sales summary", err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetByMenuItem handles GET /sales/by-menu-item
func (h *SalesHandlers) GetByMenuItem(c echo.Context) error {
	day, err := common.ParseDay(c.QueryParam("day"))
	if err != nil {
		return common.SendError(c, "parse day", err)
	}

	sales, err := h.orderService.DailySalesByMenuItem(c.Request().Context(), day)
	if err != nil {
		return common.SendError(c, "get sales by menu item", err)
	}

	response := map[string]interface{}{
		"sales": sales,
	}
	if !day.IsZero() {
		response["day"] = common.FormatDay(day)
	}
	return c.JSON(http.StatusOK, response)
}

// GetReport handles GET /sales/report
func (h *SalesHandlers) GetReport(c echo.Context) error {
	day, err := common.ParseDay(c.QueryParam("day"))
	if err != nil {
		return common.SendError(c, "parse day", err)
	}

	report, err := h.reporter.DailyReport(c.Request().Context(), day)
	if err != nil {
		return common.SendError(c, "build sales report", err)
	}

	return c.JSON(http.StatusOK, report)
}
