package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de desgaste de un equipo.
const (
	ConditionNew       = "new"
	ConditionGood      = "good"
	ConditionWorn      = "worn"
	ConditionDefective = "defective"
)

// WearEquipment representa un equipo sujeto a desgaste (herramientas, EPP)
// asignado a un usuario y revisado periódicamente.
type WearEquipment struct {
	ID             string
	Name           string
	AssignedTo     string // UserID; vacío si está en bodega
	Condition      string // new | good | worn | defective
	PurchaseDate   *time.Time
	PurchaseCost   decimal.Decimal
	LastInspection *time.Time
	Notes          string
	ImageURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
