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

var _ repository.DeliveryNoteRepository = (*DeliveryNoteRepo)(nil)

const noteColumns = `id, number, recipient, created_by, status, signature_id, issued_at, created_at, updated_at`

// DeliveryNoteRepo implementación de DeliveryNoteRepository sobre PostgreSQL.
type DeliveryNoteRepo struct {
	q Querier
}

// NewDeliveryNoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryNoteRepository(q Querier) *DeliveryNoteRepo {
	return &DeliveryNoteRepo{q: q}
}

// Create persiste la nota y sus líneas.
func (r *DeliveryNoteRepo) Create(note *entity.DeliveryNote, lines []*entity.DeliveryNoteLine) error {
	ctx := context.Background()
	query := `
		INSERT INTO delivery_notes (id, number, recipient, created_by, status, signature_id, issued_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6,'')::uuid, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		note.ID, note.Number, note.Recipient, note.CreatedBy, note.Status,
		note.SignatureID, note.IssuedAt, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert delivery note: %w", err)
	}
	for _, l := range lines {
		_, err := r.q.Exec(ctx,
			`INSERT INTO delivery_note_lines (id, note_id, inventory_id, quantity)
			 VALUES ($1, $2, $3, $4)`,
			l.ID, l.NoteID, l.InventoryID, l.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert delivery note line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la nota con sus líneas.
func (r *DeliveryNoteRepo) GetByID(id string) (*entity.DeliveryNote, []*entity.DeliveryNoteLine, error) {
	ctx := context.Background()
	query := `SELECT ` + noteColumns + ` FROM delivery_notes WHERE id = $1`
	note, err := r.scanOne(r.q.QueryRow(ctx, query, id))
	if err != nil || note == nil {
		return note, nil, err
	}

	rows, err := r.q.Query(ctx,
		`SELECT id, note_id, inventory_id, quantity FROM delivery_note_lines WHERE note_id = $1`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list delivery note lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.DeliveryNoteLine
	for rows.Next() {
		var l entity.DeliveryNoteLine
		if err := rows.Scan(&l.ID, &l.NoteID, &l.InventoryID, &l.Quantity); err != nil {
			return nil, nil, fmt.Errorf("scan delivery note line: %w", err)
		}
		lines = append(lines, &l)
	}
	return note, lines, rows.Err()
}

// Update actualiza estado y firma de la nota.
func (r *DeliveryNoteRepo) Update(note *entity.DeliveryNote) error {
	query := `
		UPDATE delivery_notes
		SET recipient = $2, status = $3, signature_id = NULLIF($4,'')::uuid, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.Recipient, note.Status, note.SignatureID, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update delivery note: %w", err)
	}
	return nil
}

// List lista notas (sin líneas), opcionalmente filtradas por estado.
func (r *DeliveryNoteRepo) List(status string, limit, offset int) ([]*entity.DeliveryNote, error) {
	query := `SELECT ` + noteColumns + ` FROM delivery_notes`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list delivery notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryNote
	for rows.Next() {
		var n entity.DeliveryNote
		var sigID *string
		if err := rows.Scan(&n.ID, &n.Number, &n.Recipient, &n.CreatedBy, &n.Status, &sigID, &n.IssuedAt, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery note: %w", err)
		}
		n.SignatureID = deref(sigID)
		list = append(list, &n)
	}
	return list, rows.Err()
}

// CountByYear cuenta las notas emitidas en el año (secuencia DN-YYYY-NNN).
func (r *DeliveryNoteRepo) CountByYear(year int) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM delivery_notes WHERE EXTRACT(YEAR FROM created_at) = $1`, year,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count delivery notes by year: %w", err)
	}
	return count, nil
}

func (r *DeliveryNoteRepo) scanOne(row pgx.Row) (*entity.DeliveryNote, error) {
	var n entity.DeliveryNote
	var sigID *string
	err := row.Scan(&n.ID, &n.Number, &n.Recipient, &n.CreatedBy, &n.Status, &sigID, &n.IssuedAt, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery note: %w", err)
	}
	n.SignatureID = deref(sigID)
	return &n, nil
}
