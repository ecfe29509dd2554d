package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingQuerier devuelve siempre el error configurado en Exec.
type failingQuerier struct {
	err error
}

func (q *failingQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, q.err
}

func (q *failingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, q.err
}

func (q *failingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

// Una bodega que no existe dispara la FK de stock_locations; eso es entrada
// inválida del cliente (400), no un fallo interno (500).
func TestStockLocationUpsert_BodegaInexistenteEsEntradaInvalida(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "stock_locations_warehouse_id_fkey"}
	repo := NewStockLocationRepository(&failingQuerier{err: fkErr})

	err := repo.Upsert(&entity.StockLocation{
		ID:          "loc-1",
		InventoryID: "item-1",
		WarehouseID: "wh-fantasma",
		Quantity:    5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "wh-fantasma")
}

// Cualquier otro error de BD se propaga envuelto, sin reclasificar.
func TestStockLocationUpsert_OtroErrorSePropaga(t *testing.T) {
	dbErr := &pgconn.PgError{Code: "53300"} // too_many_connections
	repo := NewStockLocationRepository(&failingQuerier{err: dbErr})

	err := repo.Upsert(&entity.StockLocation{ID: "loc-1", InventoryID: "item-1", WarehouseID: "wh-1"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}
