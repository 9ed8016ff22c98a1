package models

import "time"

type InventoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku,omitempty"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
	Price    int    `json:"price"`

	// Quantity at or below this raises a low_stock notification.
	LowStockLevel int `json:"low_stock_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.LowStockLevel
}
