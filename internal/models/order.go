package models

import "time"

// Order records a quantity of one menu item sold at OrderTime.
// OrderTime is assigned by the store when the row is inserted.
type Order struct {
	ID        int64     `json:"id" db:"id"`
	MenuID    int64     `json:"menu_id" db:"menu_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	OrderTime time.Time `json:"order_time" db:"order_time"`
}

// OrderLine is an order joined with the name of its menu item.
type OrderLine struct {
	OrderID   int64     `json:"order_id"`
	MenuName  string    `json:"menu_name"`
	Quantity  int       `json:"quantity"`
	OrderTime time.Time `json:"order_time"`
}
