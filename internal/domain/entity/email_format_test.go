package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailFormatRender_SustituyePlaceholders(t *testing.T) {
	f := &EmailFormat{
		Kind:    EmailFormatPurchaseOrder,
		Subject: "Pedido {{order_id}} para {{supplier_name}}",
		Body:    "Estimado {{contact_person}}:\n\n{{items}}\nTotal: {{total}}",
	}

	subject, body := f.Render(map[string]string{
		"order_id":       "PO-123",
		"supplier_name":  "Ferretería Sur",
		"contact_person": "Laura",
		"items":          "- Guantes x10",
		"total":          "45.00",
	})

	assert.Equal(t, "Pedido PO-123 para Ferretería Sur", subject)
	assert.Contains(t, body, "Estimado Laura:")
	assert.Contains(t, body, "- Guantes x10")
	assert.Contains(t, body, "Total: 45.00")
}

func TestEmailFormatRender_ClaveAusenteQuedaSinSustituir(t *testing.T) {
	f := &EmailFormat{Subject: "Alerta {{count}}", Body: "{{items}} y {{desconocida}}"}

	subject, body := f.Render(map[string]string{"count": "3", "items": "- Casco"})

	assert.Equal(t, "Alerta 3", subject)
	assert.Contains(t, body, "- Casco")
	assert.Contains(t, body, "{{desconocida}}", "una clave sin valor no debe desaparecer")
}

func TestEmailFormatRender_SinPlaceholders(t *testing.T) {
	f := &EmailFormat{Subject: "Hola", Body: "Sin variables"}

	subject, body := f.Render(nil)

	assert.Equal(t, "Hola", subject)
	assert.Equal(t, "Sin variables", body)
}
