package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.LayoutRepository = (*LayoutRepo)(nil)

// LayoutRepo implementación de LayoutRepository sobre PostgreSQL.
type LayoutRepo struct {
	q Querier
}

// NewLayoutRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLayoutRepository(q Querier) *LayoutRepo {
	return &LayoutRepo{q: q}
}

// Get obtiene el layout de un usuario para una página; nil si no hay.
func (r *LayoutRepo) Get(userID, page string) (*entity.Layout, error) {
	var l entity.Layout
	err := r.q.QueryRow(context.Background(),
		`SELECT id, user_id, page, config, created_at, updated_at
		 FROM layouts WHERE user_id = $1 AND page = $2`,
		userID, page,
	).Scan(&l.ID, &l.UserID, &l.Page, &l.Config, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get layout: %w", err)
	}
	return &l, nil
}

// Upsert inserta o reemplaza el layout por (user_id, page).
func (r *LayoutRepo) Upsert(layout *entity.Layout) error {
	query := `
		INSERT INTO layouts (id, user_id, page, config, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, page)
		DO UPDATE SET config = EXCLUDED.config, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		layout.ID, layout.UserID, layout.Page, layout.Config, layout.CreatedAt, layout.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert layout: %w", err)
	}
	return nil
}

// Delete elimina el layout guardado de una página.
func (r *LayoutRepo) Delete(userID, page string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM layouts WHERE user_id = $1 AND page = $2`, userID, page)
	if err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}
	return nil
}
