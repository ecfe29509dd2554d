// Package barcode renderiza códigos de barras Code-128 y códigos QR como PNG
// para imprimir etiquetas de los artículos del inventario.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
)

// Renderer genera imágenes PNG de códigos a partir del barcode del artículo.
type Renderer struct{}

// NewRenderer construye el renderizador.
func NewRenderer() *Renderer { return &Renderer{} }

// Code128PNG renderiza el valor como Code-128 escalado a width × height.
func (r *Renderer) Code128PNG(value string, width, height int) ([]byte, error) {
	bc, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("barcode: codificar %q: %w", value, err)
	}
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, fmt.Errorf("barcode: escalar: %w", err)
	}
	return encodePNG(scaled)
}

// QRPNG renderiza el valor como código QR cuadrado de size × size.
func (r *Renderer) QRPNG(value string, size int) ([]byte, error) {
	qrCode, err := qr.Encode(value, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("barcode: codificar QR %q: %w", value, err)
	}
	scaled, err := barcode.Scale(qrCode, size, size)
	if err != nil {
		return nil, fmt.Errorf("barcode: escalar QR: %w", err)
	}
	return encodePNG(scaled)
}

func encodePNG(img barcode.Barcode) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("barcode: codificar PNG: %w", err)
	}
	return buf.Bytes(), nil
}
