package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	OrderStatusDraft     = "draft"
	OrderStatusSent      = "sent"
	OrderStatusReceived  = "received"
	OrderStatusCancelled = "cancelled"
)

// PurchaseOrder representa una orden de compra a un proveedor.
// Enviar la orden compone un correo a partir de un EmailFormat y marca status=sent.
type PurchaseOrder struct {
	ID         string
	SupplierID string
	CreatedBy  string // UserID
	Status     string
	Note       string
	Total      decimal.Decimal
	SentAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PurchaseOrderLine es una línea de la orden: artículo, cantidad y precio unitario.
type PurchaseOrderLine struct {
	ID          string
	OrderID     string
	InventoryID string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// LineTotal devuelve el subtotal de la línea.
func (l *PurchaseOrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
