package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DashboardUseCase métricas agregadas para la pantalla principal del SPA.
type DashboardUseCase struct {
	metricsRepo repository.MetricsRepository
	itemRepo    repository.ItemRepository
	txRepo      repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	metricsRepo repository.MetricsRepository,
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
) *DashboardUseCase {
	return &DashboardUseCase{metricsRepo: metricsRepo, itemRepo: itemRepo, txRepo: txRepo}
}

// Metrics reúne los totales, los artículos bajo umbral y las últimas
// transacciones. Todas las consultas son de solo lectura.
func (uc *DashboardUseCase) Metrics(ctx context.Context) (*dto.DashboardMetricsResponse, error) {
	totals, err := uc.metricsRepo.GetTotals(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.itemRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	recent, _, err := uc.txRepo.List(repository.TransactionFilter{}, 5, 0)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardMetricsResponse{
		TotalItems:      totals.TotalItems,
		TotalSuppliers:  totals.TotalSuppliers,
		TotalWarehouses: totals.TotalWarehouses,
		TotalStockUnits: totals.TotalStockUnits,
		LowStockCount:   totals.LowStockCount,
	}
	for _, item := range lowStock {
		resp.LowStockItems = append(resp.LowStockItems, toDashboardItem(item))
	}
	for _, tx := range recent {
		resp.RecentTransactions = append(resp.RecentTransactions, toTransactionResponse(tx))
	}
	return resp, nil
}

// toDashboardItem mapea sin resolver las ubicaciones por bodega: el
// dashboard solo muestra totales.
func toDashboardItem(i *entity.InventoryItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		Description:  i.Description,
		CategoryID:   i.CategoryID,
		SupplierID:   i.SupplierID,
		WarehouseID:  i.WarehouseID,
		Location:     i.Location,
		CurrentStock: i.CurrentStock,
		MinThreshold: i.MinThreshold,
		Barcode:      i.Barcode,
		ImageURL:     i.ImageURL,
		Unit:         i.Unit,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
