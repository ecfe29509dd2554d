package dto

import "time"

// CreateItemRequest body para POST /api/inventory.
// WarehouseID/Location definen la ubicación principal; InitialStock siembra la
// primera fila de stock_locations.
type CreateItemRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	CategoryID   string `json:"category_id,omitempty"`
	SupplierID   string `json:"supplier_id,omitempty"`
	WarehouseID  string `json:"warehouse_id,omitempty"`
	Location     string `json:"location,omitempty"`
	InitialStock int    `json:"initial_stock,omitempty"`
	MinThreshold int    `json:"min_threshold,omitempty"`
	Unit         string `json:"unit,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

// AdditionalLocationRequest ubicación extra {bodega, estante} del artículo.
type AdditionalLocationRequest struct {
	WarehouseID string `json:"warehouse_id"`
	Location    string `json:"location,omitempty"`
}

// UpdateItemRequest body para PUT /api/inventory/:id. Campos nil = sin cambio.
// AdditionalLocations es la lista autoritativa completa: toda fila de
// stock_locations cuya bodega no esté en {principal ∪ adicionales} se elimina,
// con su cantidad (reconciliación completa, no diff incremental).
type UpdateItemRequest struct {
	Name                *string                     `json:"name,omitempty"`
	Description         *string                     `json:"description,omitempty"`
	CategoryID          *string                     `json:"category_id,omitempty"`
	SupplierID          *string                     `json:"supplier_id,omitempty"`
	WarehouseID         *string                     `json:"warehouse_id,omitempty"`
	Location            *string                     `json:"location,omitempty"`
	MinThreshold        *int                        `json:"min_threshold,omitempty"`
	Unit                *string                     `json:"unit,omitempty"`
	ImageURL            *string                     `json:"image_url,omitempty"`
	AdditionalLocations []AdditionalLocationRequest `json:"additional_locations"`
}

// UpdateStockRequest body para POST /api/inventory/:id/stock.
// WarehouseID vacío = bodega principal del artículo.
type UpdateStockRequest struct {
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason,omitempty"`
	Type        string `json:"type"` // addition | deduction
	WarehouseID string `json:"warehouse_id,omitempty"`
}

// StockLocationResponse fila artículo × bodega en respuestas.
type StockLocationResponse struct {
	WarehouseID string `json:"warehouse_id"`
	Location    string `json:"location,omitempty"`
	Quantity    int    `json:"quantity"`
}

// ItemResponse representación de un artículo en respuestas.
type ItemResponse struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Description  string                  `json:"description,omitempty"`
	CategoryID   string                  `json:"category_id,omitempty"`
	SupplierID   string                  `json:"supplier_id,omitempty"`
	WarehouseID  string                  `json:"warehouse_id,omitempty"`
	Location     string                  `json:"location,omitempty"`
	CurrentStock int                     `json:"current_stock"`
	MinThreshold int                     `json:"min_threshold"`
	Barcode      string                  `json:"barcode"`
	ImageURL     string                  `json:"image_url,omitempty"`
	Unit         string                  `json:"unit,omitempty"`
	Locations    []StockLocationResponse `json:"locations,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// StockUpdateResponse resultado de un cambio de stock: artículo refrescado
// más la transacción de auditoría creada.
type StockUpdateResponse struct {
	Item        ItemResponse        `json:"item"`
	Transaction TransactionResponse `json:"transaction"`
}
