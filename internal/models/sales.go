package models

import "time"

// SalesSummary holds the order count and revenue of a single calendar day.
// Day is empty when the summary was computed for the store's current date.
type SalesSummary struct {
	Day        string `json:"day,omitempty"`
	OrderCount int64  `json:"order_count"`
	TotalSales int64  `json:"total_sales"`
}

// SalesByMenuItem maps a menu item name to its revenue for one day.
type SalesByMenuItem map[string]int64

// DailyReport combines the summary and the per-item breakdown of one day.
type DailyReport struct {
	Day         string          `json:"day"`
	Summary     SalesSummary    `json:"summary"`
	ByMenuItem  SalesByMenuItem `json:"by_menu_item"`
	GeneratedAt time.Time       `json:"generated_at"`
}
