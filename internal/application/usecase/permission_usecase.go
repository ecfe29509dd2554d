package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// PermissionUseCase lectura y edición de permisos rol × página. También es
// el verificador que usa el middleware RequirePage.
type PermissionUseCase struct {
	repo repository.PermissionRepository
}

// NewPermissionUseCase construye el caso de uso.
func NewPermissionUseCase(repo repository.PermissionRepository) *PermissionUseCase {
	return &PermissionUseCase{repo: repo}
}

// HasPageAccess decide si un rol puede ver una página. admin siempre puede;
// para el resto, sin fila explícita el acceso se niega.
func (uc *PermissionUseCase) HasPageAccess(role, page string) (bool, error) {
	if role == entity.RoleAdmin {
		return true, nil
	}
	perm, err := uc.repo.Get(role, page)
	if err != nil {
		return false, err
	}
	if perm == nil {
		return false, nil
	}
	return perm.Allowed, nil
}

// ListByRole lista los permisos configurados para un rol.
func (uc *PermissionUseCase) ListByRole(role string) ([]dto.PagePermissionDTO, error) {
	list, err := uc.repo.ListByRole(role)
	if err != nil {
		return nil, err
	}
	return toPermissionDTOs(list), nil
}

// ListAll lista todos los permisos configurados.
func (uc *PermissionUseCase) ListAll() ([]dto.PagePermissionDTO, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toPermissionDTOs(list), nil
}

// Set aplica un lote de permisos (upsert por par rol/página).
func (uc *PermissionUseCase) Set(in dto.SetPermissionsRequest) error {
	if len(in.Permissions) == 0 {
		return domain.NewValidationError("no hay permisos que aplicar")
	}
	for _, p := range in.Permissions {
		switch p.Role {
		case entity.RoleAdmin, entity.RoleManager, entity.RoleOperator:
		default:
			return domain.NewValidationError("role desconocido: %s", p.Role)
		}
		if p.Page == "" {
			return domain.NewValidationError("página vacía en permiso para role %s", p.Role)
		}
	}
	for _, p := range in.Permissions {
		perm := &entity.PagePermission{Role: p.Role, Page: p.Page, Allowed: p.Allowed}
		if err := uc.repo.Upsert(perm); err != nil {
			return err
		}
	}
	return nil
}

func toPermissionDTOs(list []*entity.PagePermission) []dto.PagePermissionDTO {
	out := make([]dto.PagePermissionDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PagePermissionDTO{Role: p.Role, Page: p.Page, Allowed: p.Allowed})
	}
	return out
}
