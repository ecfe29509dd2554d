package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.EmailFormatRepository = (*EmailFormatRepo)(nil)

const formatColumns = `id, kind, subject, body, is_default, created_at, updated_at`

// EmailFormatRepo implementación de EmailFormatRepository sobre PostgreSQL.
type EmailFormatRepo struct {
	q Querier
}

// NewEmailFormatRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmailFormatRepository(q Querier) *EmailFormatRepo {
	return &EmailFormatRepo{q: q}
}

// Create persiste una plantilla. Si es la nueva default de su tipo, las
// demás del mismo tipo pierden el flag.
func (r *EmailFormatRepo) Create(format *entity.EmailFormat) error {
	ctx := context.Background()
	if format.IsDefault {
		if err := r.clearDefault(ctx, format.Kind); err != nil {
			return err
		}
	}
	query := `
		INSERT INTO email_formats (id, kind, subject, body, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		format.ID, format.Kind, format.Subject, format.Body, format.IsDefault,
		format.CreatedAt, format.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert email format: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla por ID.
func (r *EmailFormatRepo) GetByID(id string) (*entity.EmailFormat, error) {
	query := `SELECT ` + formatColumns + ` FROM email_formats WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetDefaultByKind obtiene la plantilla por defecto de un tipo; nil si no hay.
func (r *EmailFormatRepo) GetDefaultByKind(kind string) (*entity.EmailFormat, error) {
	query := `SELECT ` + formatColumns + ` FROM email_formats WHERE kind = $1 AND is_default LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, kind))
}

// Update actualiza una plantilla, manteniendo un único default por tipo.
func (r *EmailFormatRepo) Update(format *entity.EmailFormat) error {
	ctx := context.Background()
	if format.IsDefault {
		if err := r.clearDefault(ctx, format.Kind); err != nil {
			return err
		}
	}
	query := `
		UPDATE email_formats SET subject = $2, body = $3, is_default = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		format.ID, format.Subject, format.Body, format.IsDefault, format.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update email format: %w", err)
	}
	return nil
}

// List lista plantillas con paginación.
func (r *EmailFormatRepo) List(limit, offset int) ([]*entity.EmailFormat, error) {
	query := `SELECT ` + formatColumns + ` FROM email_formats ORDER BY kind ASC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list email formats: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmailFormat
	for rows.Next() {
		var f entity.EmailFormat
		if err := rows.Scan(&f.ID, &f.Kind, &f.Subject, &f.Body, &f.IsDefault, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan email format: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete elimina una plantilla por ID.
func (r *EmailFormatRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM email_formats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete email format: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EmailFormatRepo) clearDefault(ctx context.Context, kind string) error {
	_, err := r.q.Exec(ctx, `UPDATE email_formats SET is_default = false WHERE kind = $1`, kind)
	if err != nil {
		return fmt.Errorf("clear default email format: %w", err)
	}
	return nil
}

func (r *EmailFormatRepo) scanOne(row pgx.Row) (*entity.EmailFormat, error) {
	var f entity.EmailFormat
	err := row.Scan(&f.ID, &f.Kind, &f.Subject, &f.Body, &f.IsDefault, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get email format: %w", err)
	}
	return &f, nil
}
