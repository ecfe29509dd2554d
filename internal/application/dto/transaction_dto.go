package dto

import "time"

// TransactionResponse representación de una transacción de stock.
type TransactionResponse struct {
	ID          string    `json:"id"`
	InventoryID string    `json:"inventory_id"`
	UserID      string    `json:"user_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int       `json:"quantity"`
	Type        string    `json:"type"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse listado paginado del historial.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
