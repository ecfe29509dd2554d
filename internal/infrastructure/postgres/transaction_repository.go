package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL.
// Las filas son inmutables: solo INSERT y SELECT.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción de auditoría.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, inventory_id, user_id, warehouse_id, quantity, type, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.InventoryID, tx.UserID, tx.WarehouseID, tx.Quantity, tx.Type, tx.Reason, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `
		SELECT id, inventory_id, user_id, warehouse_id, quantity, type, reason, created_at
		FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.InventoryID, &t.UserID, &t.WarehouseID, &t.Quantity, &t.Type, &t.Reason, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// List lista transacciones filtradas (más recientes primero) y el total.
func (r *TransactionRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.Transaction, int, error) {
	where, args := buildTransactionWhere(filter)

	var total int
	countQuery := `SELECT count(*) FROM transactions` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, inventory_id, user_id, warehouse_id, quantity, type, reason, created_at
		FROM transactions%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.q.Query(context.Background(), query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.InventoryID, &t.UserID, &t.WarehouseID, &t.Quantity, &t.Type, &t.Reason, &t.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, total, rows.Err()
}

// buildTransactionWhere arma la cláusula WHERE combinando con AND solo los
// filtros presentes. Devuelve "" y args vacíos sin filtros.
func buildTransactionWhere(filter repository.TransactionFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.InventoryID != "" {
		add("inventory_id = $%d", filter.InventoryID)
	}
	if filter.WarehouseID != "" {
		add("warehouse_id = $%d", filter.WarehouseID)
	}
	if filter.UserID != "" {
		add("user_id = $%d", filter.UserID)
	}
	if filter.Type != "" {
		add("type = $%d", filter.Type)
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at <= $%d", *filter.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
