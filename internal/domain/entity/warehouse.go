package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// Referenciada por InventoryItem y StockLocation, nunca las posee.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
