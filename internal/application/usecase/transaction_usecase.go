package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TransactionUseCase consultas de solo lectura sobre el historial de stock.
// Las transacciones se crean únicamente desde el motor de stock.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// GetByID obtiene una transacción por ID.
func (uc *TransactionUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	resp := toTransactionResponse(tx)
	return &resp, nil
}

// List lista transacciones filtradas, más recientes primero.
func (uc *TransactionUseCase) List(filter repository.TransactionFilter, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	if filter.Type != "" &&
		filter.Type != entity.TransactionTypeAddition &&
		filter.Type != entity.TransactionTypeDeduction {
		return nil, domain.NewValidationError("tipo de transacción inválido: %s", filter.Type)
	}
	page.DefaultPage()
	list, total, err := uc.repo.List(filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func toTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID,
		InventoryID: tx.InventoryID,
		UserID:      tx.UserID,
		WarehouseID: tx.WarehouseID,
		Quantity:    tx.Quantity,
		Type:        tx.Type,
		Reason:      tx.Reason,
		CreatedAt:   tx.CreatedAt,
	}
}
