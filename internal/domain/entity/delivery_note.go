package entity

import "time"

// Estados de una nota de entrega.
const (
	DeliveryNoteDraft  = "draft"
	DeliveryNoteIssued = "issued"
	DeliveryNoteSigned = "signed"
)

// DeliveryNote es el albarán de entrega de artículos a un receptor.
// Number tiene formato DN-YYYY-NNN. El PDF se genera bajo demanda.
type DeliveryNote struct {
	ID          string
	Number      string
	Recipient   string
	CreatedBy   string // UserID
	Status      string
	SignatureID string // vacío hasta que se firma
	IssuedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeliveryNoteLine es una línea del albarán: artículo y cantidad entregada.
type DeliveryNoteLine struct {
	ID          string
	NoteID      string
	InventoryID string
	Quantity    int
}
