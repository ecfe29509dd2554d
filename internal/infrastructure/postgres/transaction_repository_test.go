package postgres

import (
	"testing"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
)

func TestBuildTransactionWhere_SinFiltros(t *testing.T) {
	where, args := buildTransactionWhere(repository.TransactionFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildTransactionWhere_UnFiltro(t *testing.T) {
	where, args := buildTransactionWhere(repository.TransactionFilter{InventoryID: "item-1"})
	assert.Equal(t, " WHERE inventory_id = $1", where)
	assert.Equal(t, []any{"item-1"}, args)
}

func TestBuildTransactionWhere_CombinaConAND(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	where, args := buildTransactionWhere(repository.TransactionFilter{
		InventoryID: "item-1",
		WarehouseID: "w-1",
		UserID:      "u-1",
		Type:        "deduction",
		From:        &from,
		To:          &to,
	})
	assert.Equal(t,
		" WHERE inventory_id = $1 AND warehouse_id = $2 AND user_id = $3 AND type = $4 AND created_at >= $5 AND created_at <= $6",
		where)
	assert.Equal(t, []any{"item-1", "w-1", "u-1", "deduction", from, to}, args)
}

func TestBuildTransactionWhere_PlaceholdersConsecutivos(t *testing.T) {
	// Omitir filtros intermedios no deja huecos en la numeración.
	where, args := buildTransactionWhere(repository.TransactionFilter{
		WarehouseID: "w-1",
		Type:        "addition",
	})
	assert.Equal(t, " WHERE warehouse_id = $1 AND type = $2", where)
	assert.Len(t, args, 2)
}
