package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.SignatureRepository = (*SignatureRepo)(nil)

// SignatureRepo implementación de SignatureRepository sobre PostgreSQL.
type SignatureRepo struct {
	q Querier
}

// NewSignatureRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSignatureRepository(q Querier) *SignatureRepo {
	return &SignatureRepo{q: q}
}

// Create persiste una firma.
func (r *SignatureRepo) Create(sig *entity.Signature) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO signatures (id, signer_name, image_path, created_at) VALUES ($1, $2, $3, $4)`,
		sig.ID, sig.SignerName, sig.ImagePath, sig.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert signature: %w", err)
	}
	return nil
}

// GetByID obtiene una firma por ID.
func (r *SignatureRepo) GetByID(id string) (*entity.Signature, error) {
	var s entity.Signature
	err := r.q.QueryRow(context.Background(),
		`SELECT id, signer_name, image_path, created_at FROM signatures WHERE id = $1`, id,
	).Scan(&s.ID, &s.SignerName, &s.ImagePath, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get signature: %w", err)
	}
	return &s, nil
}

// List lista firmas con paginación.
func (r *SignatureRepo) List(limit, offset int) ([]*entity.Signature, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, signer_name, image_path, created_at
		 FROM signatures ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	defer rows.Close()
	var list []*entity.Signature
	for rows.Next() {
		var s entity.Signature
		if err := rows.Scan(&s.ID, &s.SignerName, &s.ImagePath, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan signature: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
