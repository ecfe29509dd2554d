package inventory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func newCreateEnv() (*ItemUseCase, *fakeItemRepo, *fakeLocRepo) {
	itemRepo := newFakeItemRepo()
	locRepo := newFakeLocRepo()
	runner := &fakeTxRunner{itemRepo: itemRepo, locRepo: locRepo, txRepo: &fakeTxRepo{}}
	return NewItemUseCase(runner, itemRepo, locRepo, newFakeWarehouseRepo(testW1)), itemRepo, locRepo
}

func TestCreate_AsignaBarcodeYSiembraUbicacion(t *testing.T) {
	uc, _, locRepo := newCreateEnv()

	out, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name:         "Guantes",
		WarehouseID:  testW1,
		Location:     "Shelf-9",
		InitialStock: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "WMS-S-001", out.Barcode, "inicial de la ubicación + secuencia a 3 dígitos")
	assert.Equal(t, 10, out.CurrentStock)

	loc, _ := locRepo.Get(out.ID, testW1)
	require.NotNil(t, loc)
	assert.Equal(t, 10, loc.Quantity)
	assert.Equal(t, "Shelf-9", loc.Location)
}

func TestCreate_SinUbicacionUsaInicialX(t *testing.T) {
	uc, _, _ := newCreateEnv()

	out, err := uc.Create(context.Background(), dto.CreateItemRequest{Name: "Cinta"})
	require.NoError(t, err)
	assert.Equal(t, "WMS-X-001", out.Barcode)
}

// La secuencia sale de COUNT(*)+1; si el código calculado ya existe se añade
// un sufijo de timestamp en lugar de fallar el insert.
func TestCreate_ColisionDeBarcodeAgregaSufijo(t *testing.T) {
	uc, itemRepo, _ := newCreateEnv()

	// Un artículo previo ocupa el código que le tocaría al nuevo (count=1 → 002).
	require.NoError(t, itemRepo.Create(&entity.InventoryItem{
		ID: "pre", Name: "Previo", Barcode: "WMS-S-002",
	}))

	out, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name:     "Nuevo",
		Location: "Shelf-3",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Barcode, "WMS-S-002-"),
		"en colisión el código lleva sufijo de timestamp: %s", out.Barcode)
	assert.NotEqual(t, "WMS-S-002", out.Barcode)
}

func TestCreate_Validaciones(t *testing.T) {
	uc, _, _ := newCreateEnv()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateItemRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "name es obligatorio")

	_, err = uc.Create(ctx, dto.CreateItemRequest{Name: "X", InitialStock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateItemRequest{Name: "X", WarehouseID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "la bodega debe existir")
}
