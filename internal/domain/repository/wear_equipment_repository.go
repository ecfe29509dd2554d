package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// WearEquipmentRepository define el puerto de persistencia para equipos con desgaste.
type WearEquipmentRepository interface {
	Create(eq *entity.WearEquipment) error
	GetByID(id string) (*entity.WearEquipment, error)
	Update(eq *entity.WearEquipment) error
	List(condition string, limit, offset int) ([]*entity.WearEquipment, error)
	// CountByCondition agrega el parque de equipos por estado de desgaste.
	CountByCondition() (map[string]int, error)
	Delete(id string) error
}
