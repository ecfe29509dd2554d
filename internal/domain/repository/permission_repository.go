package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// PermissionRepository define el puerto para permisos rol × página.
// Get devuelve nil cuando no hay fila para el par (el middleware decide el default).
type PermissionRepository interface {
	Get(role, page string) (*entity.PagePermission, error)
	ListByRole(role string) ([]*entity.PagePermission, error)
	ListAll() ([]*entity.PagePermission, error)
	Upsert(perm *entity.PagePermission) error
}
