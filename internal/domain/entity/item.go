package entity

import "time"

// InventoryItem representa un artículo del inventario (multi-bodega).
// WarehouseID/Location son la ubicación principal; las demás ubicaciones viven
// en stock_locations. CurrentStock es el total denormalizado y debe ser siempre
// igual a la suma de las cantidades por bodega (se recalcula dentro de la misma
// transacción que toca stock_locations).
type InventoryItem struct {
	ID           string
	Name         string
	Description  string
	CategoryID   string
	SupplierID   string
	WarehouseID  string // bodega principal; vacío si el artículo aún no tiene bodega
	Location     string // descripción libre del estante en la bodega principal
	CurrentStock int
	MinThreshold int
	Barcode      string
	ImageURL     string
	Unit         string // unidad de medida: und, caja, kg...
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el artículo está en o por debajo de su umbral mínimo.
func (i *InventoryItem) IsLowStock() bool {
	return i.MinThreshold > 0 && i.CurrentStock <= i.MinThreshold
}
