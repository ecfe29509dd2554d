package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockLocationRepository define el puerto para las filas artículo × bodega.
// Usado dentro de transacciones para garantizar consistencia con current_stock.
// Get y GetForUpdate devuelven nil (sin error) cuando la fila no existe.
type StockLocationRepository interface {
	Get(inventoryID, warehouseID string) (*entity.StockLocation, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(inventoryID, warehouseID string) (*entity.StockLocation, error)
	ListByItem(inventoryID string) ([]*entity.StockLocation, error)
	Upsert(loc *entity.StockLocation) error
	// UpdateLocation cambia solo el texto de ubicación; la cantidad no se toca.
	UpdateLocation(inventoryID, warehouseID, location string) error
	// Repoint mueve la fila a otra bodega en el sitio (mismo id, misma cantidad).
	Repoint(inventoryID, fromWarehouseID, toWarehouseID, location string) error
	Delete(inventoryID, warehouseID string) error
	// DeleteNotIn elimina toda fila del artículo cuya bodega no esté en keep
	// (reconciliación completa: omitir una ubicación la elimina con su cantidad).
	DeleteNotIn(inventoryID string, keepWarehouseIDs []string) error
	SumByItem(inventoryID string) (int, error)
}
