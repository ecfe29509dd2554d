package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// DeliveryNoteRepository define el puerto para notas de entrega y sus líneas.
type DeliveryNoteRepository interface {
	Create(note *entity.DeliveryNote, lines []*entity.DeliveryNoteLine) error
	GetByID(id string) (*entity.DeliveryNote, []*entity.DeliveryNoteLine, error)
	Update(note *entity.DeliveryNote) error
	List(status string, limit, offset int) ([]*entity.DeliveryNote, error)
	// CountByYear cuenta las notas emitidas en el año (secuencia del número DN-YYYY-NNN).
	CountByYear(year int) (int, error)
}
