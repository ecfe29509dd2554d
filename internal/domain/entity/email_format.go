package entity

import (
	"strings"
	"time"
)

// Tipos de plantilla de correo.
const (
	EmailFormatPurchaseOrder = "purchase_order"
	EmailFormatLowStock      = "low_stock"
)

// EmailFormat es una plantilla de correo editable por el administrador.
// Subject y Body admiten placeholders de la forma {{clave}}.
type EmailFormat struct {
	ID        string
	Kind      string // purchase_order | low_stock
	Subject   string
	Body      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Render sustituye los placeholders {{clave}} de Subject y Body con los
// valores de data. Las claves no presentes en data quedan sin sustituir.
func (f *EmailFormat) Render(data map[string]string) (subject, body string) {
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	r := strings.NewReplacer(pairs...)
	return r.Replace(f.Subject), r.Replace(f.Body)
}
