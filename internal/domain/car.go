package domain

import "fmt"

// Car is a rentable model as reported by the external API.
// TotalPrice is computed upstream for a specific Window; it is never
// recomputed here.
type Car struct {
	ID             string  `json:"id"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	Stock          int     `json:"stock"`
	AvailableStock int     `json:"availableStock"`
	AvgPricePerDay float64 `json:"avgPricePerDay"`
	TotalPrice     float64 `json:"totalPrice"`
}

// Name returns "Brand Model".
func (c Car) Name() string {
	return c.Brand + " " + c.Model
}

// CheckStock enforces 0 <= AvailableStock <= Stock, the one rule the JSON
// Schema of the payload cannot express.
func (c Car) CheckStock() error {
	if c.AvailableStock > c.Stock {
		return fmt.Errorf("car %s: availableStock %d exceeds stock %d", c.ID, c.AvailableStock, c.Stock)
	}
	return nil
}
