package models

// MenuItem is a sellable product. Price is in the smallest currency unit.
type MenuItem struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Price int64  `json:"price" db:"price"`
}
