package dto

import (
	"encoding/json"
	"time"
)

// ── Permisos ──────────────────────────────────────────────────────────────────

// PagePermissionDTO permiso rol × página.
type PagePermissionDTO struct {
	Role    string `json:"role"`
	Page    string `json:"page"`
	Allowed bool   `json:"allowed"`
}

// SetPermissionsRequest body para PUT /api/permissions.
type SetPermissionsRequest struct {
	Permissions []PagePermissionDTO `json:"permissions"`
}

// ── Plantillas de correo ──────────────────────────────────────────────────────

// CreateEmailFormatRequest body para POST /api/email-formats.
type CreateEmailFormatRequest struct {
	Kind      string `json:"kind"` // purchase_order | low_stock
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// UpdateEmailFormatRequest body para PUT /api/email-formats/:id.
type UpdateEmailFormatRequest struct {
	Subject   *string `json:"subject,omitempty"`
	Body      *string `json:"body,omitempty"`
	IsDefault *bool   `json:"is_default,omitempty"`
}

// EmailFormatResponse representación de una plantilla de correo.
type EmailFormatResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Layouts ───────────────────────────────────────────────────────────────────

// SaveLayoutRequest body para PUT /api/layouts/:page.
type SaveLayoutRequest struct {
	Config json.RawMessage `json:"config"`
}

// LayoutResponse layout de interfaz por usuario y página.
type LayoutResponse struct {
	Page      string          `json:"page"`
	Config    json.RawMessage `json:"config"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// DashboardMetricsResponse métricas agregadas del dashboard.
type DashboardMetricsResponse struct {
	TotalItems         int                   `json:"total_items"`
	TotalSuppliers     int                   `json:"total_suppliers"`
	TotalWarehouses    int                   `json:"total_warehouses"`
	TotalStockUnits    int                   `json:"total_stock_units"`
	LowStockCount      int                   `json:"low_stock_count"`
	LowStockItems      []ItemResponse        `json:"low_stock_items,omitempty"`
	RecentTransactions []TransactionResponse `json:"recent_transactions,omitempty"`
}

// ── Firmas ────────────────────────────────────────────────────────────────────

// SignatureResponse firma manuscrita subida.
type SignatureResponse struct {
	ID         string    `json:"id"`
	SignerName string    `json:"signer_name"`
	ImagePath  string    `json:"image_path"`
	CreatedAt  time.Time `json:"created_at"`
}
