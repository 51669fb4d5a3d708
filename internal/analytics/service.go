package analytics

import (
	"context"
	"fmt"
	"log"
	"time"

	"restomart/internal/common"
	"restomart/internal/models"
	"restomart/internal/services"
)

// Service builds daily sales reports from the order service
type Service struct {
	orderService services.OrderService
	now          func() time.Time
}

func NewService(orderService services.OrderService) *Service {
	return &Service{
		orderService: orderService,
		now:          time.Now,
	}
}

// DailyReport combines the summary and the per-item breakdown of day.
// The zero day resolves to the store's current date so the report always names its day.
func (a *Service) DailyReport(ctx context.Context, day time.Time) (*models.DailyReport, error) {
	if day.IsZero() {
		today, err := a.orderService.CurrentDate(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve report day: %w", err)
		}
		day = today
	}

	summary, err := a.orderService.DailySalesSummary(ctx, day)
	if err != nil {
		log.Printf("Failed to get sales summary for %s: %v", common.FormatDay(day), err)
		return nil, err
	}

	byMenuItem, err := a.orderService.DailySalesByMenuItem(ctx, day)
	if err != nil {
		log.Printf("Failed to get sales by menu item for %s: %v", common.FormatDay(day), err)
		return nil, err
	}

	return &models.DailyReport{
		Day:         common.FormatDay(day),
		Summary:     *summary,
		ByMenuItem:  byMenuItem,
		GeneratedAt: a.now().UTC(),
	}, nil
}

// PreviousDay returns the day before the store's current date
func (a *Service) PreviousDay(ctx context.Context) (time.Time, error) {
	today, err := a.orderService.CurrentDate(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return today.AddDate(0, 0, -1), nil
}
