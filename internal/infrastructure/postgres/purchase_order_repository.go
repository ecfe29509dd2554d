package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la orden y sus líneas.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchase_orders (id, supplier_id, created_by, status, note, total, sent_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.SupplierID, order.CreatedBy, order.Status, order.Note,
		order.Total, order.SentAt, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	for _, l := range lines {
		_, err := r.q.Exec(ctx,
			`INSERT INTO purchase_order_lines (id, order_id, inventory_id, quantity, unit_price)
			 VALUES ($1, $2, $3, $4, $5)`,
			l.ID, l.OrderID, l.InventoryID, l.Quantity, l.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la orden con sus líneas.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, []*entity.PurchaseOrderLine, error) {
	ctx := context.Background()
	query := `
		SELECT id, supplier_id, created_by, status, note, total, sent_at, created_at, updated_at
		FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.SupplierID, &o.CreatedBy, &o.Status, &o.Note, &o.Total, &o.SentAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get purchase order: %w", err)
	}

	rows, err := r.q.Query(ctx,
		`SELECT id, order_id, inventory_id, quantity, unit_price
		 FROM purchase_order_lines WHERE order_id = $1`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list purchase order lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.InventoryID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, nil, fmt.Errorf("scan purchase order line: %w", err)
		}
		lines = append(lines, &l)
	}
	return &o, lines, rows.Err()
}

// List lista órdenes (sin líneas), opcionalmente filtradas por proveedor.
func (r *PurchaseOrderRepo) List(supplierID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, created_by, status, note, total, sent_at, created_at, updated_at
		FROM purchase_orders`
	args := []any{}
	if supplierID != "" {
		query += ` WHERE supplier_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, supplierID, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.SupplierID, &o.CreatedBy, &o.Status, &o.Note, &o.Total, &o.SentAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado; sent_at solo se escribe cuando viene.
func (r *PurchaseOrderRepo) UpdateStatus(id, status string, sentAt *time.Time) error {
	var cmd string
	var args []any
	if sentAt != nil {
		cmd = `UPDATE purchase_orders SET status = $2, sent_at = $3, updated_at = now() WHERE id = $1`
		args = []any{id, status, *sentAt}
	} else {
		cmd = `UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`
		args = []any{id, status}
	}
	tag, err := r.q.Exec(context.Background(), cmd, args...)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
