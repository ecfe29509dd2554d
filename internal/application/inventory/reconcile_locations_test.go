package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

const (
	testWA = "wa"
	testWB = "wb"
)

func strPtr(s string) *string { return &s }

// seedReconcileEnv prepara el caso de uso completo con un artículo en W1
// ("Shelf-1", cantidad 10) y las bodegas w1, w2, wa y wb registradas.
func seedReconcileEnv(t *testing.T) (*ItemUseCase, *fakeItemRepo, *fakeLocRepo) {
	t.Helper()
	itemRepo := newFakeItemRepo()
	locRepo := newFakeLocRepo()
	txRepo := &fakeTxRepo{}
	whRepo := newFakeWarehouseRepo(testW1, testW2, testWA, testWB)

	now := time.Now()
	require.NoError(t, itemRepo.Create(&entity.InventoryItem{
		ID:           testItemID,
		Name:         "Cinta de embalaje",
		WarehouseID:  testW1,
		Location:     "Shelf-1",
		CurrentStock: 10,
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
	uc := NewItemUseCase(runner, itemRepo, locRepo, whRepo)
	return uc, itemRepo, locRepo
}

// Cambio de bodega principal sin fila previa en destino: la fila se reapunta
// en el sitio — mismo id, cantidad intacta, ubicación nueva.
func TestUpdate_MovimientoDeBodega(t *testing.T) {
	uc, itemRepo, locRepo := seedReconcileEnv(t)

	out, err := uc.Update(context.Background(), testItemID, dto.UpdateItemRequest{
		WarehouseID: strPtr(testW2),
		Location:    strPtr("Rack-7"),
	})
	require.NoError(t, err)

	old, _ := locRepo.Get(testItemID, testW1)
	assert.Nil(t, old, "no debe quedar fila en la bodega anterior")

	moved, _ := locRepo.Get(testItemID, testW2)
	require.NotNil(t, moved)
	assert.Equal(t, "loc-1", moved.ID, "la fila debe conservar su identidad")
	assert.Equal(t, 10, moved.Quantity, "la cantidad no cambia en un movimiento")
	assert.Equal(t, "Rack-7", moved.Location)

	item, _ := itemRepo.GetByID(testItemID)
	assert.Equal(t, 10, item.CurrentStock)
	assert.Equal(t, testW2, out.WarehouseID)
}

// Cambio de bodega principal con fila existente en destino: fusión — la
// cantidad vieja se suma a la fila destino y la fila vieja desaparece.
func TestUpdate_FusionDeBodegas(t *testing.T) {
	uc, itemRepo, locRepo := seedReconcileEnv(t)
	require.NoError(t, locRepo.Upsert(&entity.StockLocation{
		ID: "loc-2", InventoryID: testItemID, WarehouseID: testW2,
		Location: "Rack-3", Quantity: 4,
	}))

	_, err := uc.Update(context.Background(), testItemID, dto.UpdateItemRequest{
		WarehouseID: strPtr(testW2),
		Location:    strPtr("Rack-3"),
	})
	require.NoError(t, err)

	old, _ := locRepo.Get(testItemID, testW1)
	assert.Nil(t, old)

	merged, _ := locRepo.Get(testItemID, testW2)
	require.NotNil(t, merged)
	assert.Equal(t, "loc-2", merged.ID)
	assert.Equal(t, 14, merged.Quantity, "10 de w1 + 4 existentes en w2")

	item, _ := itemRepo.GetByID(testItemID)
	assert.Equal(t, 14, item.CurrentStock)
}

// Solo cambia el texto de ubicación: la fila se actualiza en el sitio.
func TestUpdate_SoloTextoDeUbicacion(t *testing.T) {
	uc, _, locRepo := seedReconcileEnv(t)

	_, err := uc.Update(context.Background(), testItemID, dto.UpdateItemRequest{
		Location: strPtr("Shelf-9"),
	})
	require.NoError(t, err)

	loc, _ := locRepo.Get(testItemID, testW1)
	require.NotNil(t, loc)
	assert.Equal(t, "Shelf-9", loc.Location)
	assert.Equal(t, 10, loc.Quantity, "la cantidad no se toca")
	assert.Equal(t, "loc-1", loc.ID)
}

// Artículo sin bodega que gana su primera: la fila se siembra con el stock acumulado.
func TestUpdate_PrimeraBodegaSiembraStock(t *testing.T) {
	itemRepo := newFakeItemRepo()
	locRepo := newFakeLocRepo()
	whRepo := newFakeWarehouseRepo(testW1)
	require.NoError(t, itemRepo.Create(&entity.InventoryItem{
		ID: testItemID, Name: "Sin bodega", CurrentStock: 7,
	}))
	runner := &fakeTxRunner{itemRepo: itemRepo, locRepo: locRepo, txRepo: &fakeTxRepo{}}
	uc := NewItemUseCase(runner, itemRepo, locRepo, whRepo)

	_, err := uc.Update(context.Background(), testItemID, dto.UpdateItemRequest{
		WarehouseID: strPtr(testW1),
		Location:    strPtr("Shelf-2"),
	})
	require.NoError(t, err)

	loc, _ := locRepo.Get(testItemID, testW1)
	require.NotNil(t, loc)
	assert.Equal(t, 7, loc.Quantity, "se siembra con el current_stock del artículo")
	assert.Equal(t, "Shelf-2", loc.Location)
}

// Ubicación adicional ya existente: solo se actualiza el texto; jamás se pone
// a cero una cantidad existente.
func TestUpdate_AdicionalExistenteConservaCantidad(t *testing.T) {
	uc, _, locRepo := seedReconcileEnv(t)
	require.NoError(t, locRepo.Upsert(&entity.StockLocation{
		ID: "loc-a", InventoryID: testItemID, WarehouseID: testWA,
		Location: "Pasillo-1", Quantity: 3,
	}))

	_, err := uc.Update(context.Background(), testItemID, dto.UpdateItemRequest{
		AdditionalLocations: []dto.AdditionalLocationRequest{
			{WarehouseID: testWA, Location: "Pasillo-2"},
		},
	})
	require.NoError(t, err)

	loc, _ := locRepo.Get(testItemID, testWA)
	require.NotNil(t, loc)
	assert.Equal(t, 3, loc.Quantity, "el upsert de adicionales no pisa cantidades")
	assert.Equal(t, "Pasillo-2", loc.Location)
}

// Ubicación adicional nueva: se crea con cantidad 0.
func TestUpdate_AdicionalNuevaConCantidadCero(t *testing.T) {
	uc, _, locRepo := seedReconcileEnv(t)

	_, err := uc.Update(context.Background(), testItemID, dto.UpdateItemRequest{
		AdditionalLocations: []dto.AdditionalLocationRequest{
			{WarehouseID: testWA, Location: "Pasillo-1"},
		},
	})
	require.NoError(t, err)

	loc, _ := locRepo.Get(testItemID, testWA)
	require.NotNil(t, loc)
	assert.Equal(t, 0, loc.Quantity)
}

// Test de regresión del comportamiento literal de la reconciliación: omitir
// una ubicación adicional antes presente elimina su fila y su cantidad. No es
// un bug a "arreglar" silenciosamente; es el contrato observable del sistema.
func TestUpdate_OmitirAdicionalEliminaFilaYCantidad(t *testing.T) {
	uc, itemRepo, locRepo := seedReconcileEnv(t)
	require.NoError(t, locRepo.Upsert(&entity.StockLocation{
		ID: "loc-a", InventoryID: testItemID, WarehouseID: testWA,
		Location: "Pasillo-1", Quantity: 3,
	}))
	require.NoError(t, locRepo.Upsert(&entity.StockLocation{
		ID: "loc-b", InventoryID: testItemID, WarehouseID: testWB,
		Location: "Pasillo-2", Quantity: 5,
	}))

	// La lista autoritativa solo trae A: B debe desaparecer con sus 5 unidades.
	_, err := uc.Update(context.Background(), testItemID, dto.UpdateItemRequest{
		AdditionalLocations: []dto.AdditionalLocationRequest{
			{WarehouseID: testWA, Location: "Pasillo-1"},
		},
	})
	require.NoError(t, err)

	gone, _ := locRepo.Get(testItemID, testWB)
	assert.Nil(t, gone, "la fila omitida debe eliminarse por completo")

	kept, _ := locRepo.Get(testItemID, testWA)
	require.NotNil(t, kept)
	assert.Equal(t, 3, kept.Quantity)

	item, _ := itemRepo.GetByID(testItemID)
	assert.Equal(t, 13, item.CurrentStock, "10 en w1 + 3 en wa; las 5 de wb se pierden")
}

// Lista de adicionales vacía: se conserva solo la bodega principal.
func TestUpdate_SinAdicionalesConservaSoloPrincipal(t *testing.T) {
	uc, itemRepo, locRepo := seedReconcileEnv(t)
	require.NoError(t, locRepo.Upsert(&entity.StockLocation{
		ID: "loc-a", InventoryID: testItemID, WarehouseID: testWA, Quantity: 3,
	}))

	_, err := uc.Update(context.Background(), testItemID, dto.UpdateItemRequest{
		Name: strPtr("Cinta reforzada"),
	})
	require.NoError(t, err)

	gone, _ := locRepo.Get(testItemID, testWA)
	assert.Nil(t, gone)
	main, _ := locRepo.Get(testItemID, testW1)
	require.NotNil(t, main)
	assert.Equal(t, 10, main.Quantity)

	item, _ := itemRepo.GetByID(testItemID)
	assert.Equal(t, "Cinta reforzada", item.Name)
	assert.Equal(t, 10, item.CurrentStock)
}
