package repository

import "context"

// DashboardTotals totales agregados para el dashboard (consultas read-only).
type DashboardTotals struct {
	TotalItems      int
	TotalSuppliers  int
	TotalWarehouses int
	TotalStockUnits int
	LowStockCount   int
}

// MetricsRepository define el puerto de consultas agregadas del dashboard.
type MetricsRepository interface {
	GetTotals(ctx context.Context) (*DashboardTotals, error)
}
