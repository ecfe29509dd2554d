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

var _ repository.StockLocationRepository = (*StockLocationRepo)(nil)

// StockLocationRepo implementación de StockLocationRepository sobre PostgreSQL
// (usable con pool o tx; el motor de stock siempre lo usa dentro de una tx).
type StockLocationRepo struct {
	q Querier
}

// NewStockLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLocationRepository(q Querier) *StockLocationRepo {
	return &StockLocationRepo{q: q}
}

// Get obtiene la fila artículo × bodega; nil si no existe.
func (r *StockLocationRepo) Get(inventoryID, warehouseID string) (*entity.StockLocation, error) {
	query := `
		SELECT id, inventory_id, warehouse_id, location, quantity, updated_at
		FROM stock_locations WHERE inventory_id = $1 AND warehouse_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, inventoryID, warehouseID))
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE); nil si no existe.
func (r *StockLocationRepo) GetForUpdate(inventoryID, warehouseID string) (*entity.StockLocation, error) {
	query := `
		SELECT id, inventory_id, warehouse_id, location, quantity, updated_at
		FROM stock_locations WHERE inventory_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, inventoryID, warehouseID))
}

// ListByItem lista las ubicaciones de un artículo.
func (r *StockLocationRepo) ListByItem(inventoryID string) ([]*entity.StockLocation, error) {
	query := `
		SELECT id, inventory_id, warehouse_id, location, quantity, updated_at
		FROM stock_locations WHERE inventory_id = $1 ORDER BY updated_at ASC`
	rows, err := r.q.Query(context.Background(), query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list stock locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLocation
	for rows.Next() {
		var l entity.StockLocation
		if err := rows.Scan(&l.ID, &l.InventoryID, &l.WarehouseID, &l.Location, &l.Quantity, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Upsert inserta o actualiza la fila por (inventory_id, warehouse_id);
// el id original se conserva en el update.
func (r *StockLocationRepo) Upsert(loc *entity.StockLocation) error {
	query := `
		INSERT INTO stock_locations (id, inventory_id, warehouse_id, location, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (inventory_id, warehouse_id)
		DO UPDATE SET location = EXCLUDED.location, quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		loc.ID, loc.InventoryID, loc.WarehouseID, loc.Location, loc.Quantity,
	)
	if err != nil {
		// FK contra warehouses: una bodega inexistente es un error del
		// cliente, no un fallo interno.
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("bodega inexistente: %s", loc.WarehouseID)
		}
		return fmt.Errorf("upsert stock location: %w", err)
	}
	return nil
}

// UpdateLocation cambia solo el texto de ubicación.
func (r *StockLocationRepo) UpdateLocation(inventoryID, warehouseID, location string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_locations SET location = $3, updated_at = now()
		 WHERE inventory_id = $1 AND warehouse_id = $2`,
		inventoryID, warehouseID, location,
	)
	if err != nil {
		return fmt.Errorf("update stock location text: %w", err)
	}
	return nil
}

// Repoint mueve la fila a otra bodega en el sitio: mismo id, misma cantidad.
func (r *StockLocationRepo) Repoint(inventoryID, fromWarehouseID, toWarehouseID, location string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_locations SET warehouse_id = $3, location = $4, updated_at = now()
		 WHERE inventory_id = $1 AND warehouse_id = $2`,
		inventoryID, fromWarehouseID, toWarehouseID, location,
	)
	if err != nil {
		return fmt.Errorf("repoint stock location: %w", err)
	}
	return nil
}

// Delete elimina la fila artículo × bodega.
func (r *StockLocationRepo) Delete(inventoryID, warehouseID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_locations WHERE inventory_id = $1 AND warehouse_id = $2`,
		inventoryID, warehouseID,
	)
	if err != nil {
		return fmt.Errorf("delete stock location: %w", err)
	}
	return nil
}

// DeleteNotIn elimina toda fila del artículo cuya bodega no esté en keep.
// Con keep vacío elimina todas las filas del artículo.
func (r *StockLocationRepo) DeleteNotIn(inventoryID string, keepWarehouseIDs []string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_locations WHERE inventory_id = $1 AND warehouse_id != ALL($2)`,
		inventoryID, keepWarehouseIDs,
	)
	if err != nil {
		return fmt.Errorf("delete stock locations not in: %w", err)
	}
	return nil
}

// SumByItem suma las cantidades del artículo en todas las bodegas.
func (r *StockLocationRepo) SumByItem(inventoryID string) (int, error) {
	var sum int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_locations WHERE inventory_id = $1`,
		inventoryID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum stock locations: %w", err)
	}
	return sum, nil
}

func (r *StockLocationRepo) scanOne(row pgx.Row) (*entity.StockLocation, error) {
	var l entity.StockLocation
	err := row.Scan(&l.ID, &l.InventoryID, &l.WarehouseID, &l.Location, &l.Quantity, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock location: %w", err)
	}
	return &l, nil
}
