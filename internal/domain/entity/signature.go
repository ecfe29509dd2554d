package entity

import "time"

// Signature es una firma manuscrita subida como imagen (PNG) y referenciada
// por las notas de entrega. ImagePath es la ruta relativa bajo /uploads.
type Signature struct {
	ID         string
	SignerName string
	ImagePath  string
	CreatedAt  time.Time
}
