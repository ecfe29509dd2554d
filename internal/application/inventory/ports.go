package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// o se aplican la mutación de stock_locations, la transacción de auditoría y
// el recálculo de current_stock, o no se ve ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		locRepo repository.StockLocationRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
