package entity

import "time"

// StockLocation representa la cantidad de un artículo en una bodega concreta
// (par único inventory_id × warehouse_id). Quantity nunca es negativa.
type StockLocation struct {
	ID          string
	InventoryID string
	WarehouseID string
	Location    string // descripción libre del estante
	Quantity    int
	UpdatedAt   time.Time
}
