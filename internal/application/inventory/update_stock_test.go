package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

const (
	testItemID = "11111111-1111-1111-1111-111111111111"
	testUserID = "22222222-2222-2222-2222-222222222222"
	testW1     = "w1"
	testW2     = "w2"
)

// seedStockEnv prepara un artículo con bodega principal W1, estante "Shelf-1"
// y stock inicial 10 (una fila en stock_locations).
func seedStockEnv(t *testing.T) (*UpdateStockUseCase, *fakeItemRepo, *fakeLocRepo, *fakeTxRepo) {
	t.Helper()
	itemRepo := newFakeItemRepo()
	locRepo := newFakeLocRepo()
	txRepo := &fakeTxRepo{}

	now := time.Now()
	require.NoError(t, itemRepo.Create(&entity.InventoryItem{
		ID:           testItemID,
		Name:         "Guantes de nitrilo",
		WarehouseID:  testW1,
		Location:     "Shelf-1",
		CurrentStock: 10,
		MinThreshold: 2,
		Barcode:      "WMS-S-001",
		CreatedAt:    now,
		UpdatedAt:    now,
	}))
	require.NoError(t, locRepo.Upsert(&entity.StockLocation{
		ID:          "loc-1",
		InventoryID: testItemID,
		WarehouseID: testW1,
		Location:    "Shelf-1",
		Quantity:    10,
		UpdatedAt:   now,
	}))

	runner := &fakeTxRunner{itemRepo: itemRepo, locRepo: locRepo, txRepo: txRepo}
	return NewUpdateStockUseCase(runner), itemRepo, locRepo, txRepo
}

func TestUpdateStock_Addition(t *testing.T) {
	uc, itemRepo, locRepo, txRepo := seedStockEnv(t)

	out, err := uc.UpdateStock(context.Background(), StockUpdateInput{
		ItemID:      testItemID,
		Quantity:    5,
		Reason:      "restock",
		Type:        entity.TransactionTypeAddition,
		UserID:      testUserID,
		WarehouseID: testW1,
	})
	require.NoError(t, err)

	loc, err := locRepo.Get(testItemID, testW1)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, 15, loc.Quantity, "la fila de stock debe quedar en 15")

	item, err := itemRepo.GetByID(testItemID)
	require.NoError(t, err)
	assert.Equal(t, 15, item.CurrentStock, "current_stock debe reflejar la suma")

	require.Len(t, txRepo.created, 1)
	trans := txRepo.created[0]
	assert.Equal(t, 5, trans.Quantity)
	assert.Equal(t, entity.TransactionTypeAddition, trans.Type)
	assert.Equal(t, testW1, trans.WarehouseID)
	assert.Equal(t, "restock", trans.Reason)

	assert.Equal(t, 15, out.Item.CurrentStock)
	assert.Equal(t, trans.ID, out.Transaction.ID)
}

func TestUpdateStock_DeductionInsuficiente(t *testing.T) {
	uc, itemRepo, locRepo, txRepo := seedStockEnv(t)

	// Dejar el saldo en 15 para el escenario
	_, err := uc.UpdateStock(context.Background(), StockUpdateInput{
		ItemID: testItemID, Quantity: 5, Type: entity.TransactionTypeAddition,
		UserID: testUserID, WarehouseID: testW1,
	})
	require.NoError(t, err)
	require.Len(t, txRepo.created, 1)

	_, err = uc.UpdateStock(context.Background(), StockUpdateInput{
		ItemID: testItemID, Quantity: 20, Reason: "usage",
		Type: entity.TransactionTypeDeduction, UserID: testUserID, WarehouseID: testW1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "15", "el error debe reportar la cantidad disponible")

	var insufErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufErr)
	assert.Equal(t, 15, insufErr.Available)

	// Sin aplicación parcial: ni la fila de stock ni el historial cambian.
	loc, _ := locRepo.Get(testItemID, testW1)
	assert.Equal(t, 15, loc.Quantity)
	assert.Len(t, txRepo.created, 1, "no debe crearse transacción en el rechazo")

	item, _ := itemRepo.GetByID(testItemID)
	assert.Equal(t, 15, item.CurrentStock)
}

func TestUpdateStock_AdditionLuegoDeduction(t *testing.T) {
	uc, itemRepo, _, txRepo := seedStockEnv(t)
	ctx := context.Background()

	_, err := uc.UpdateStock(ctx, StockUpdateInput{
		ItemID: testItemID, Quantity: 7, Type: entity.TransactionTypeAddition,
		UserID: testUserID, WarehouseID: testW1,
	})
	require.NoError(t, err)
	_, err = uc.UpdateStock(ctx, StockUpdateInput{
		ItemID: testItemID, Quantity: 7, Type: entity.TransactionTypeDeduction,
		UserID: testUserID, WarehouseID: testW1,
	})
	require.NoError(t, err)

	item, _ := itemRepo.GetByID(testItemID)
	assert.Equal(t, 10, item.CurrentStock, "el saldo debe volver al valor original")

	require.Len(t, txRepo.created, 2)
	assert.Equal(t, 7, txRepo.created[0].SignedQuantity())
	assert.Equal(t, -7, txRepo.created[1].SignedQuantity())
}

func TestUpdateStock_BodegaPorDefecto(t *testing.T) {
	uc, _, locRepo, txRepo := seedStockEnv(t)

	// Sin warehouse_id: debe resolver a la bodega principal del artículo.
	_, err := uc.UpdateStock(context.Background(), StockUpdateInput{
		ItemID: testItemID, Quantity: 3, Type: entity.TransactionTypeAddition,
		UserID: testUserID,
	})
	require.NoError(t, err)

	loc, _ := locRepo.Get(testItemID, testW1)
	assert.Equal(t, 13, loc.Quantity)
	require.Len(t, txRepo.created, 1)
	assert.Equal(t, testW1, txRepo.created[0].WarehouseID)
}

func TestUpdateStock_SinBodega(t *testing.T) {
	itemRepo := newFakeItemRepo()
	locRepo := newFakeLocRepo()
	txRepo := &fakeTxRepo{}
	require.NoError(t, itemRepo.Create(&entity.InventoryItem{ID: testItemID, Name: "Sin bodega"}))
	uc := NewUpdateStockUseCase(&fakeTxRunner{itemRepo: itemRepo, locRepo: locRepo, txRepo: txRepo})

	_, err := uc.UpdateStock(context.Background(), StockUpdateInput{
		ItemID: testItemID, Quantity: 1, Type: entity.TransactionTypeAddition, UserID: testUserID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, txRepo.created)
}

func TestUpdateStock_ArticuloInexistente(t *testing.T) {
	uc, _, _, _ := seedStockEnv(t)

	_, err := uc.UpdateStock(context.Background(), StockUpdateInput{
		ItemID: "no-existe", Quantity: 1, Type: entity.TransactionTypeAddition, UserID: testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStock_EntradaInvalida(t *testing.T) {
	uc, _, _, _ := seedStockEnv(t)
	ctx := context.Background()

	_, err := uc.UpdateStock(ctx, StockUpdateInput{
		ItemID: testItemID, Quantity: 0, Type: entity.TransactionTypeAddition, UserID: testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero no es válida")

	_, err = uc.UpdateStock(ctx, StockUpdateInput{
		ItemID: testItemID, Quantity: 5, Type: "transfer", UserID: testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido no es válido")
}

// El invariante central: tras cualquier secuencia de operaciones exitosas,
// current_stock es igual a la suma de las cantidades por bodega.
func TestUpdateStock_InvarianteSumaPorBodegas(t *testing.T) {
	uc, itemRepo, locRepo, _ := seedStockEnv(t)
	ctx := context.Background()

	ops := []StockUpdateInput{
		{ItemID: testItemID, Quantity: 4, Type: entity.TransactionTypeAddition, UserID: testUserID, WarehouseID: testW1},
		{ItemID: testItemID, Quantity: 6, Type: entity.TransactionTypeAddition, UserID: testUserID, WarehouseID: testW2},
		{ItemID: testItemID, Quantity: 3, Type: entity.TransactionTypeDeduction, UserID: testUserID, WarehouseID: testW1},
		{ItemID: testItemID, Quantity: 2, Type: entity.TransactionTypeDeduction, UserID: testUserID, WarehouseID: testW2},
	}
	for _, op := range ops {
		_, err := uc.UpdateStock(ctx, op)
		require.NoError(t, err)

		sum, err := locRepo.SumByItem(testItemID)
		require.NoError(t, err)
		item, err := itemRepo.GetByID(testItemID)
		require.NoError(t, err)
		assert.Equal(t, sum, item.CurrentStock,
			"current_stock debe igualar la suma de stock_locations tras cada operación")
	}

	item, _ := itemRepo.GetByID(testItemID)
	assert.Equal(t, 15, item.CurrentStock) // 10 +4 +6 -3 -2
}
