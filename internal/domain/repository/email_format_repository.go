package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// EmailFormatRepository define el puerto para plantillas de correo.
// GetDefaultByKind devuelve nil si no hay plantilla por defecto para el tipo.
type EmailFormatRepository interface {
	Create(format *entity.EmailFormat) error
	GetByID(id string) (*entity.EmailFormat, error)
	GetDefaultByKind(kind string) (*entity.EmailFormat, error)
	Update(format *entity.EmailFormat) error
	List(limit, offset int) ([]*entity.EmailFormat, error)
	Delete(id string) error
}
