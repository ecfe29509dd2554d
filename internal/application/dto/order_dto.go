package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea de una orden de compra.
type OrderLineRequest struct {
	InventoryID string          `json:"inventory_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest body para POST /api/suppliers/:id/orders.
type CreateOrderRequest struct {
	Note  string             `json:"note,omitempty"`
	Lines []OrderLineRequest `json:"lines"`
}

// OrderLineResponse línea de orden en respuestas.
type OrderLineResponse struct {
	InventoryID string          `json:"inventory_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderResponse representación de una orden de compra.
type OrderResponse struct {
	ID         string              `json:"id"`
	SupplierID string              `json:"supplier_id"`
	CreatedBy  string              `json:"created_by"`
	Status     string              `json:"status"`
	Note       string              `json:"note,omitempty"`
	Total      decimal.Decimal     `json:"total"`
	Lines      []OrderLineResponse `json:"lines,omitempty"`
	SentAt     *time.Time          `json:"sent_at,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// OrderListResponse listado paginado de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
