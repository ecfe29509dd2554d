package entity

import "time"

// Supplier representa un proveedor al que se le envían órdenes de compra por correo.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
