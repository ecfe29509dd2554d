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

var _ repository.WearEquipmentRepository = (*WearEquipmentRepo)(nil)

const wearColumns = `id, name, assigned_to, condition, purchase_date, purchase_cost,
		last_inspection, notes, image_url, created_at, updated_at`

// WearEquipmentRepo implementación de WearEquipmentRepository sobre PostgreSQL.
type WearEquipmentRepo struct {
	q Querier
}

// NewWearEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWearEquipmentRepository(q Querier) *WearEquipmentRepo {
	return &WearEquipmentRepo{q: q}
}

// Create persiste un nuevo equipo.
func (r *WearEquipmentRepo) Create(eq *entity.WearEquipment) error {
	query := `
		INSERT INTO wear_equipment (id, name, assigned_to, condition, purchase_date, purchase_cost,
			last_inspection, notes, image_url, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3,'')::uuid, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		eq.ID, eq.Name, eq.AssignedTo, eq.Condition, eq.PurchaseDate, eq.PurchaseCost,
		eq.LastInspection, eq.Notes, eq.ImageURL, eq.CreatedAt, eq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wear equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *WearEquipmentRepo) GetByID(id string) (*entity.WearEquipment, error) {
	query := `SELECT ` + wearColumns + ` FROM wear_equipment WHERE id = $1`
	var e entity.WearEquipment
	var assignedTo *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &assignedTo, &e.Condition, &e.PurchaseDate, &e.PurchaseCost,
		&e.LastInspection, &e.Notes, &e.ImageURL, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wear equipment: %w", err)
	}
	e.AssignedTo = deref(assignedTo)
	return &e, nil
}

// Update actualiza un equipo.
func (r *WearEquipmentRepo) Update(eq *entity.WearEquipment) error {
	query := `
		UPDATE wear_equipment
		SET name = $2, assigned_to = NULLIF($3,'')::uuid, condition = $4, last_inspection = $5,
			notes = $6, image_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		eq.ID, eq.Name, eq.AssignedTo, eq.Condition, eq.LastInspection,
		eq.Notes, eq.ImageURL, eq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update wear equipment: %w", err)
	}
	return nil
}

// List lista equipos, opcionalmente filtrados por condición.
func (r *WearEquipmentRepo) List(condition string, limit, offset int) ([]*entity.WearEquipment, error) {
	query := `SELECT ` + wearColumns + ` FROM wear_equipment`
	args := []any{}
	if condition != "" {
		query += ` WHERE condition = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
		args = append(args, condition, limit, offset)
	} else {
		query += ` ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list wear equipment: %w", err)
	}
	defer rows.Close()
	var list []*entity.WearEquipment
	for rows.Next() {
		var e entity.WearEquipment
		var assignedTo *string
		if err := rows.Scan(&e.ID, &e.Name, &assignedTo, &e.Condition, &e.PurchaseDate, &e.PurchaseCost,
			&e.LastInspection, &e.Notes, &e.ImageURL, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan wear equipment: %w", err)
		}
		e.AssignedTo = deref(assignedTo)
		list = append(list, &e)
	}
	return list, rows.Err()
}

// CountByCondition agrega el parque de equipos por estado de desgaste.
func (r *WearEquipmentRepo) CountByCondition() (map[string]int, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT condition, count(*) FROM wear_equipment GROUP BY condition`)
	if err != nil {
		return nil, fmt.Errorf("count wear equipment: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var condition string
		var count int
		if err := rows.Scan(&condition, &count); err != nil {
			return nil, fmt.Errorf("scan wear count: %w", err)
		}
		out[condition] = count
	}
	return out, rows.Err()
}

// Delete da de baja un equipo.
func (r *WearEquipmentRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM wear_equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete wear equipment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
