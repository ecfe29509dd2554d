package dto

import "time"

// DeliveryNoteLineRequest línea del albarán: artículo y cantidad.
type DeliveryNoteLineRequest struct {
	InventoryID string `json:"inventory_id"`
	Quantity    int    `json:"quantity"`
}

// CreateDeliveryNoteRequest body para POST /api/delivery-notes.
type CreateDeliveryNoteRequest struct {
	Recipient string                    `json:"recipient"`
	Lines     []DeliveryNoteLineRequest `json:"lines"`
}

// SignDeliveryNoteRequest body para POST /api/delivery-notes/:id/sign.
type SignDeliveryNoteRequest struct {
	SignatureID string `json:"signature_id"`
}

// DeliveryNoteLineResponse línea del albarán en respuestas.
type DeliveryNoteLineResponse struct {
	InventoryID string `json:"inventory_id"`
	ItemName    string `json:"item_name,omitempty"`
	Quantity    int    `json:"quantity"`
}

// DeliveryNoteResponse representación de una nota de entrega.
type DeliveryNoteResponse struct {
	ID          string                     `json:"id"`
	Number      string                     `json:"number"`
	Recipient   string                     `json:"recipient"`
	CreatedBy   string                     `json:"created_by"`
	Status      string                     `json:"status"`
	SignatureID string                     `json:"signature_id,omitempty"`
	Lines       []DeliveryNoteLineResponse `json:"lines,omitempty"`
	IssuedAt    *time.Time                 `json:"issued_at,omitempty"`
	CreatedAt   time.Time                  `json:"created_at"`
}

// DeliveryNoteListResponse listado paginado de notas de entrega.
type DeliveryNoteListResponse struct {
	Items []DeliveryNoteResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
