package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// TransactionFilter filtros opcionales para el historial de transacciones.
// Todos los filtros presentes se combinan con AND; orden por fecha descendente.
type TransactionFilter struct {
	InventoryID string
	WarehouseID string
	UserID      string
	Type        string // addition | deduction
	From        *time.Time
	To          *time.Time
}

// TransactionRepository define el puerto para el registro de auditoría de stock.
// Las transacciones solo se crean y consultan; nunca se modifican ni eliminan.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// List devuelve la página solicitada y el total de filas que cumplen el filtro.
	List(filter TransactionFilter, limit, offset int) ([]*entity.Transaction, int, error)
}
