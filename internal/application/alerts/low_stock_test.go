package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubItemRepo struct {
	lowStock []*entity.InventoryItem
}

func (r *stubItemRepo) Create(*entity.InventoryItem) error                  { return nil }
func (r *stubItemRepo) GetByID(string) (*entity.InventoryItem, error)       { return nil, nil }
func (r *stubItemRepo) GetByBarcode(string) (*entity.InventoryItem, error)  { return nil, nil }
func (r *stubItemRepo) Update(*entity.InventoryItem) error                  { return nil }
func (r *stubItemRepo) UpdateCurrentStock(string, int) error                { return nil }
func (r *stubItemRepo) Count() (int, error)                                 { return 0, nil }
func (r *stubItemRepo) Delete(string) error                                 { return nil }
func (r *stubItemRepo) ListLowStock() ([]*entity.InventoryItem, error)      { return r.lowStock, nil }
func (r *stubItemRepo) List(repository.ItemFilter, int, int) ([]*entity.InventoryItem, error) {
	return nil, nil
}

type stubFormatRepo struct {
	def *entity.EmailFormat
}

func (r *stubFormatRepo) Create(*entity.EmailFormat) error            { return nil }
func (r *stubFormatRepo) GetByID(string) (*entity.EmailFormat, error) { return nil, nil }
func (r *stubFormatRepo) GetDefaultByKind(kind string) (*entity.EmailFormat, error) {
	if r.def != nil && r.def.Kind == kind {
		return r.def, nil
	}
	return nil, nil
}
func (r *stubFormatRepo) Update(*entity.EmailFormat) error                 { return nil }
func (r *stubFormatRepo) List(int, int) ([]*entity.EmailFormat, error)     { return nil, nil }
func (r *stubFormatRepo) Delete(string) error                              { return nil }

type capturingSender struct {
	to      []string
	subject string
	body    string
	calls   int
}

func (s *capturingSender) Send(_ context.Context, to []string, subject, body string) error {
	s.calls++
	s.to = to
	s.subject = subject
	s.body = body
	return nil
}

func TestRunOnce_EnviaDigestConPlantilla(t *testing.T) {
	items := &stubItemRepo{lowStock: []*entity.InventoryItem{
		{Name: "Guantes", Barcode: "WMS-S-001", CurrentStock: 2, MinThreshold: 5},
		{Name: "Cascos", Barcode: "WMS-S-002", CurrentStock: 0, MinThreshold: 3},
	}}
	formats := &stubFormatRepo{def: &entity.EmailFormat{
		Kind:    entity.EmailFormatLowStock,
		Subject: "Bajo stock ({{count}})",
		Body:    "Fecha {{date}}:\n{{items}}",
	}}
	sender := &capturingSender{}
	checker := NewLowStockChecker(items, formats, sender, []string{"almacen@example.com"}, time.Hour, logger.Nop())

	err := checker.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, []string{"almacen@example.com"}, sender.to)
	assert.Equal(t, "Bajo stock (2)", sender.subject)
	assert.Contains(t, sender.body, "Guantes (WMS-S-001): 2 en stock, umbral 5")
	assert.Contains(t, sender.body, "Cascos (WMS-S-002): 0 en stock, umbral 3")
	assert.Contains(t, sender.body, time.Now().Format("2006-01-02"))
}

func TestRunOnce_SinArticulosBajoUmbralNoEnvia(t *testing.T) {
	sender := &capturingSender{}
	checker := NewLowStockChecker(&stubItemRepo{}, &stubFormatRepo{}, sender, []string{"a@b.c"}, time.Hour, logger.Nop())

	require.NoError(t, checker.RunOnce(context.Background()))
	assert.Zero(t, sender.calls)
}

func TestRunOnce_SinDestinatariosNoEnvia(t *testing.T) {
	items := &stubItemRepo{lowStock: []*entity.InventoryItem{{Name: "Guantes", CurrentStock: 1, MinThreshold: 5}}}
	sender := &capturingSender{}
	checker := NewLowStockChecker(items, &stubFormatRepo{}, sender, nil, time.Hour, logger.Nop())

	require.NoError(t, checker.RunOnce(context.Background()))
	assert.Zero(t, sender.calls)
}

func TestRunOnce_SinPlantillaUsaFormatoFijo(t *testing.T) {
	items := &stubItemRepo{lowStock: []*entity.InventoryItem{{Name: "Guantes", Barcode: "WMS-G-001", CurrentStock: 1, MinThreshold: 5}}}
	sender := &capturingSender{}
	checker := NewLowStockChecker(items, &stubFormatRepo{}, sender, []string{"x@y.z"}, time.Hour, logger.Nop())

	require.NoError(t, checker.RunOnce(context.Background()))
	assert.Equal(t, 1, sender.calls)
	assert.Contains(t, sender.subject, "1 artículos")
	assert.Contains(t, sender.body, "Guantes")
}
