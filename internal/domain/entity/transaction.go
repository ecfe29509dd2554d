package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeAddition  = "addition"
	TransactionTypeDeduction = "deduction"
)

// Transaction es el registro de auditoría inmutable de un cambio de stock:
// artículo, usuario, bodega, cantidad y dirección. Se crea una por cada
// operación de stock y nunca se modifica ni elimina.
type Transaction struct {
	ID          string
	InventoryID string
	UserID      string
	WarehouseID string
	Quantity    int    // siempre positiva; Type indica la dirección
	Type        string // addition | deduction
	Reason      string
	CreatedAt   time.Time
}

// SignedQuantity devuelve la cantidad con signo según el tipo.
func (t *Transaction) SignedQuantity() int {
	if t.Type == TransactionTypeDeduction {
		return -t.Quantity
	}
	return t.Quantity
}
