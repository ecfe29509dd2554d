package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo consultas agregadas de solo lectura para el dashboard.
type MetricsRepo struct {
	q Querier
}

// NewMetricsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMetricsRepository(q Querier) *MetricsRepo {
	return &MetricsRepo{q: q}
}

// GetTotals obtiene los totales del dashboard en una sola consulta.
func (r *MetricsRepo) GetTotals(ctx context.Context) (*repository.DashboardTotals, error) {
	query := `
		SELECT
			(SELECT count(*) FROM inventory_items),
			(SELECT count(*) FROM suppliers),
			(SELECT count(*) FROM warehouses),
			(SELECT COALESCE(SUM(quantity), 0) FROM stock_locations),
			(SELECT count(*) FROM inventory_items WHERE min_threshold > 0 AND current_stock <= min_threshold)`
	var t repository.DashboardTotals
	err := r.q.QueryRow(ctx, query).Scan(
		&t.TotalItems, &t.TotalSuppliers, &t.TotalWarehouses, &t.TotalStockUnits, &t.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard totals: %w", err)
	}
	return &t, nil
}
