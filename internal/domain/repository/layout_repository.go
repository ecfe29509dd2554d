package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// LayoutRepository define el puerto para layouts de interfaz por usuario y página.
type LayoutRepository interface {
	Get(userID, page string) (*entity.Layout, error)
	Upsert(layout *entity.Layout) error
	Delete(userID, page string) error
}
