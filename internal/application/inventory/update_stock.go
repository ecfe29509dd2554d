package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UpdateStockUseCase aplica cambios de stock (addition/deduction) de forma
// transaccional: bloqueo de fila (SELECT FOR UPDATE), upsert de la cantidad,
// transacción de auditoría y recálculo de current_stock, con Commit o Rollback.
type UpdateStockUseCase struct {
	txRunner TxRunner
}

// NewUpdateStockUseCase construye el caso de uso.
func NewUpdateStockUseCase(txRunner TxRunner) *UpdateStockUseCase {
	return &UpdateStockUseCase{txRunner: txRunner}
}

// StockUpdateInput entrada para un cambio de stock.
// WarehouseID vacío = bodega principal del artículo.
type StockUpdateInput struct {
	ItemID      string
	Quantity    int
	Reason      string
	Type        string // addition | deduction
	UserID      string
	WarehouseID string
}

// UpdateStock lee la cantidad actual del par (artículo, bodega) — cero si no
// hay fila —, calcula el nuevo saldo según el tipo y lo aplica sin efectos
// parciales: una deducción que dejaría saldo negativo se rechaza reportando la
// cantidad disponible y no escribe nada. La transacción de auditoría y el
// current_stock del artículo se actualizan en la misma transacción de BD.
func (uc *UpdateStockUseCase) UpdateStock(ctx context.Context, in StockUpdateInput) (*dto.StockUpdateResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity debe ser un entero positivo")
	}
	if in.Type != entity.TransactionTypeAddition && in.Type != entity.TransactionTypeDeduction {
		return nil, domain.NewValidationError("type debe ser addition o deduction")
	}

	var out dto.StockUpdateResponse
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		locRepo repository.StockLocationRepository,
		txRepo repository.TransactionRepository,
	) error {
		item, err := itemRepo.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		warehouseID := in.WarehouseID
		if warehouseID == "" {
			warehouseID = item.WarehouseID
		}
		if warehouseID == "" {
			return domain.NewValidationError("no hay bodega especificada")
		}

		now := time.Now()
		loc, err := locRepo.GetForUpdate(in.ItemID, warehouseID)
		if err != nil {
			return err
		}
		current := 0
		if loc != nil {
			current = loc.Quantity
		} else {
			location := ""
			if warehouseID == item.WarehouseID {
				location = item.Location
			}
			loc = &entity.StockLocation{
				ID:          uuid.New().String(),
				InventoryID: in.ItemID,
				WarehouseID: warehouseID,
				Location:    location,
			}
		}

		newQuantity := current + in.Quantity
		if in.Type == entity.TransactionTypeDeduction {
			newQuantity = current - in.Quantity
			if newQuantity < 0 {
				return &domain.InsufficientStockError{Available: current}
			}
		}

		loc.Quantity = newQuantity
		loc.UpdatedAt = now
		if err := locRepo.Upsert(loc); err != nil {
			return err
		}

		trans := &entity.Transaction{
			ID:          uuid.New().String(),
			InventoryID: in.ItemID,
			UserID:      in.UserID,
			WarehouseID: warehouseID,
			Quantity:    in.Quantity,
			Type:        in.Type,
			Reason:      in.Reason,
			CreatedAt:   now,
		}
		if err := txRepo.Create(trans); err != nil {
			return err
		}

		// Recalcular el total denormalizado antes del commit: current_stock
		// nunca debe divergir de la suma de stock_locations.
		total, err := locRepo.SumByItem(in.ItemID)
		if err != nil {
			return err
		}
		if err := itemRepo.UpdateCurrentStock(in.ItemID, total); err != nil {
			return err
		}

		refreshed, err := itemRepo.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		locs, err := locRepo.ListByItem(in.ItemID)
		if err != nil {
			return err
		}
		out.Item = *toItemResponse(refreshed, locs)
		out.Transaction = *toTransactionResponse(trans)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
