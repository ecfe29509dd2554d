package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementación de PermissionRepository sobre PostgreSQL.
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// Get obtiene el permiso de un par rol × página; nil si no está configurado.
func (r *PermissionRepo) Get(role, page string) (*entity.PagePermission, error) {
	var p entity.PagePermission
	err := r.q.QueryRow(context.Background(),
		`SELECT role, page, allowed FROM page_permissions WHERE role = $1 AND page = $2`,
		role, page,
	).Scan(&p.Role, &p.Page, &p.Allowed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get page permission: %w", err)
	}
	return &p, nil
}

// ListByRole lista los permisos de un rol.
func (r *PermissionRepo) ListByRole(role string) ([]*entity.PagePermission, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT role, page, allowed FROM page_permissions WHERE role = $1 ORDER BY page ASC`, role)
	if err != nil {
		return nil, fmt.Errorf("list page permissions: %w", err)
	}
	defer rows.Close()
	return scanPermissions(rows)
}

// ListAll lista todos los permisos configurados.
func (r *PermissionRepo) ListAll() ([]*entity.PagePermission, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT role, page, allowed FROM page_permissions ORDER BY role ASC, page ASC`)
	if err != nil {
		return nil, fmt.Errorf("list all page permissions: %w", err)
	}
	defer rows.Close()
	return scanPermissions(rows)
}

// Upsert inserta o actualiza el permiso de un par rol × página.
func (r *PermissionRepo) Upsert(perm *entity.PagePermission) error {
	query := `
		INSERT INTO page_permissions (role, page, allowed)
		VALUES ($1, $2, $3)
		ON CONFLICT (role, page) DO UPDATE SET allowed = EXCLUDED.allowed`
	_, err := r.q.Exec(context.Background(), query, perm.Role, perm.Page, perm.Allowed)
	if err != nil {
		return fmt.Errorf("upsert page permission: %w", err)
	}
	return nil
}

func scanPermissions(rows pgx.Rows) ([]*entity.PagePermission, error) {
	var list []*entity.PagePermission
	for rows.Next() {
		var p entity.PagePermission
		if err := rows.Scan(&p.Role, &p.Page, &p.Allowed); err != nil {
			return nil, fmt.Errorf("scan page permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
