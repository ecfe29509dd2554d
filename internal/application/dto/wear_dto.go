package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWearEquipmentRequest body para POST /api/wear-equipment.
type CreateWearEquipmentRequest struct {
	Name         string          `json:"name"`
	AssignedTo   string          `json:"assigned_to,omitempty"`
	Condition    string          `json:"condition,omitempty"` // default: new
	PurchaseDate *time.Time      `json:"purchase_date,omitempty"`
	PurchaseCost decimal.Decimal `json:"purchase_cost,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
}

// UpdateWearEquipmentRequest body para PUT /api/wear-equipment/:id.
type UpdateWearEquipmentRequest struct {
	Name           *string    `json:"name,omitempty"`
	AssignedTo     *string    `json:"assigned_to,omitempty"`
	Condition      *string    `json:"condition,omitempty"`
	LastInspection *time.Time `json:"last_inspection,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
}

// WearEquipmentResponse representación de un equipo con desgaste.
type WearEquipmentResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	AssignedTo     string          `json:"assigned_to,omitempty"`
	Condition      string          `json:"condition"`
	PurchaseDate   *time.Time      `json:"purchase_date,omitempty"`
	PurchaseCost   decimal.Decimal `json:"purchase_cost"`
	LastInspection *time.Time      `json:"last_inspection,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// WearEquipmentListResponse listado paginado de equipos.
type WearEquipmentListResponse struct {
	Items []WearEquipmentResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// WearReportResponse informe agregado del parque de equipos por estado.
type WearReportResponse struct {
	Total       int            `json:"total"`
	ByCondition map[string]int `json:"by_condition"`
	GeneratedAt time.Time      `json:"generated_at"`
}
