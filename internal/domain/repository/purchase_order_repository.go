package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto para órdenes de compra y sus líneas.
type PurchaseOrderRepository interface {
	// Create persiste la orden y sus líneas.
	Create(order *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) error
	GetByID(id string) (*entity.PurchaseOrder, []*entity.PurchaseOrderLine, error)
	List(supplierID string, limit, offset int) ([]*entity.PurchaseOrder, error)
	// UpdateStatus cambia el estado; sentAt solo se escribe al pasar a "sent".
	UpdateStatus(id, status string, sentAt *time.Time) error
}
