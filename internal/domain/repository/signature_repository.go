package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// SignatureRepository define el puerto de persistencia para firmas manuscritas.
type SignatureRepository interface {
	Create(sig *entity.Signature) error
	GetByID(id string) (*entity.Signature, error)
	List(limit, offset int) ([]*entity.Signature, error)
}
