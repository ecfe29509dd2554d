package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ItemFilter filtros opcionales para listar artículos; los presentes se combinan con AND.
type ItemFilter struct {
	Name        string // coincidencia parcial, case-insensitive
	CategoryID  string
	WarehouseID string
}

// ItemRepository define el puerto de persistencia para InventoryItem (DIP).
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetByBarcode(barcode string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// UpdateCurrentStock escribe el total denormalizado; se invoca dentro de la
	// misma transacción que mutó stock_locations.
	UpdateCurrentStock(id string, total int) error
	List(filter ItemFilter, limit, offset int) ([]*entity.InventoryItem, error)
	Count() (int, error)
	ListLowStock() ([]*entity.InventoryItem, error)
	Delete(id string) error
}
