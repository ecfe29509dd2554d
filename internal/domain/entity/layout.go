package entity

import (
	"encoding/json"
	"time"
)

// Layout guarda las preferencias de presentación del SPA por usuario y página
// (columnas visibles, orden, anchos). Config es JSON opaco para el backend.
type Layout struct {
	ID        string
	UserID    string
	Page      string
	Config    json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}
