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

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, description, category_id, supplier_id, warehouse_id, location,
		current_stock, min_threshold, barcode, image_url, unit, created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo artículo. El barcode ya viene asignado por el caso de uso.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, description, category_id, supplier_id, warehouse_id, location,
			current_stock, min_threshold, barcode, image_url, unit, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4,'')::uuid, NULLIF($5,'')::uuid, NULLIF($6,'')::uuid, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.CategoryID, item.SupplierID, item.WarehouseID,
		item.Location, item.CurrentStock, item.MinThreshold, item.Barcode, item.ImageURL, item.Unit,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByBarcode obtiene un artículo por su código de barras.
func (r *ItemRepo) GetByBarcode(barcode string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE barcode = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, barcode))
}

// Update actualiza los campos descriptivos del artículo. current_stock solo
// cambia vía UpdateCurrentStock dentro de la transacción que tocó stock_locations.
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, description = $3, category_id = NULLIF($4,'')::uuid, supplier_id = NULLIF($5,'')::uuid,
			warehouse_id = NULLIF($6,'')::uuid, location = $7, min_threshold = $8, image_url = $9,
			unit = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.CategoryID, item.SupplierID, item.WarehouseID,
		item.Location, item.MinThreshold, item.ImageURL, item.Unit, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateCurrentStock escribe el total denormalizado.
func (r *ItemRepo) UpdateCurrentStock(id string, total int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET current_stock = $2, updated_at = now() WHERE id = $1`,
		id, total,
	)
	if err != nil {
		return fmt.Errorf("update current_stock: %w", err)
	}
	return nil
}

// List lista artículos con filtros opcionales combinados con AND.
func (r *ItemRepo) List(filter repository.ItemFilter, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE 1=1`
	args := []any{}
	n := 0
	if filter.Name != "" {
		n++
		query += fmt.Sprintf(" AND name ILIKE $%d", n)
		args = append(args, "%"+filter.Name+"%")
	}
	if filter.CategoryID != "" {
		n++
		query += fmt.Sprintf(" AND category_id = $%d", n)
		args = append(args, filter.CategoryID)
	}
	if filter.WarehouseID != "" {
		n++
		query += fmt.Sprintf(" AND id IN (SELECT inventory_id FROM stock_locations WHERE warehouse_id = $%d)", n)
		args = append(args, filter.WarehouseID)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Count devuelve el número total de artículos (secuencia de barcodes).
func (r *ItemRepo) Count() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM inventory_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// ListLowStock lista artículos en o bajo su umbral mínimo (umbral > 0).
func (r *ItemRepo) ListLowStock() ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE min_threshold > 0 AND current_stock <= min_threshold
		ORDER BY current_stock ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Delete elimina un artículo; stock_locations y transactions caen por cascada.
func (r *ItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	var categoryID, supplierID, warehouseID *string
	err := row.Scan(
		&i.ID, &i.Name, &i.Description, &categoryID, &supplierID, &warehouseID, &i.Location,
		&i.CurrentStock, &i.MinThreshold, &i.Barcode, &i.ImageURL, &i.Unit, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	i.CategoryID = deref(categoryID)
	i.SupplierID = deref(supplierID)
	i.WarehouseID = deref(warehouseID)
	return &i, nil
}

func (r *ItemRepo) scanMany(rows pgx.Rows) ([]*entity.InventoryItem, error) {
	var list []*entity.InventoryItem
	for rows.Next() {
		var i entity.InventoryItem
		var categoryID, supplierID, warehouseID *string
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Description, &categoryID, &supplierID, &warehouseID, &i.Location,
			&i.CurrentStock, &i.MinThreshold, &i.Barcode, &i.ImageURL, &i.Unit, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		i.CategoryID = deref(categoryID)
		i.SupplierID = deref(supplierID)
		i.WarehouseID = deref(warehouseID)
		list = append(list, &i)
	}
	return list, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
