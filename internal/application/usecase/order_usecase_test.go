package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
	lines  map[string][]*entity.PurchaseOrderLine
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders: map[string]*entity.PurchaseOrder{},
		lines:  map[string][]*entity.PurchaseOrderLine{},
	}
}

func (r *stubOrderRepo) Create(o *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) error {
	r.orders[o.ID] = o
	r.lines[o.ID] = lines
	return nil
}

func (r *stubOrderRepo) GetByID(id string) (*entity.PurchaseOrder, []*entity.PurchaseOrderLine, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil, nil
	}
	return o, r.lines[id], nil
}

func (r *stubOrderRepo) List(string, int, int) ([]*entity.PurchaseOrder, error) { return nil, nil }

func (r *stubOrderRepo) UpdateStatus(id, status string, sentAt *time.Time) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	if sentAt != nil {
		o.SentAt = sentAt
	}
	return nil
}

type stubSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *stubSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *stubSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *stubSupplierRepo) Update(*entity.Supplier) error            { return nil }
func (r *stubSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (r *stubSupplierRepo) Delete(string) error                       { return nil }

type stubItemRepo struct {
	items map[string]*entity.InventoryItem
}

func (r *stubItemRepo) Create(*entity.InventoryItem) error { return nil }
func (r *stubItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	return r.items[id], nil
}
func (r *stubItemRepo) GetByBarcode(string) (*entity.InventoryItem, error) { return nil, nil }
func (r *stubItemRepo) Update(*entity.InventoryItem) error                 { return nil }
func (r *stubItemRepo) UpdateCurrentStock(string, int) error               { return nil }
func (r *stubItemRepo) Count() (int, error)                                { return 0, nil }
func (r *stubItemRepo) ListLowStock() ([]*entity.InventoryItem, error)     { return nil, nil }
func (r *stubItemRepo) Delete(string) error                                { return nil }
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
func (r *stubFormatRepo) Update(*entity.EmailFormat) error             { return nil }
func (r *stubFormatRepo) List(int, int) ([]*entity.EmailFormat, error) { return nil, nil }
func (r *stubFormatRepo) Delete(string) error                          { return nil }

type capturingSender struct {
	to      []string
	subject string
	body    string
	calls   int
	err     error
}

func (s *capturingSender) Send(_ context.Context, to []string, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.calls++
	s.to = to
	s.subject = subject
	s.body = body
	return nil
}

func buildOrderUseCase() (*OrderUseCase, *stubOrderRepo, *capturingSender) {
	orderRepo := newStubOrderRepo()
	supplierRepo := &stubSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", Name: "Ferretería Sur", ContactPerson: "Laura", Email: "compras@ferreteria.example"},
	}}
	itemRepo := &stubItemRepo{items: map[string]*entity.InventoryItem{
		"item-1": {ID: "item-1", Name: "Guantes de nitrilo"},
	}}
	formatRepo := &stubFormatRepo{def: &entity.EmailFormat{
		Kind:      entity.EmailFormatPurchaseOrder,
		Subject:   "Pedido {{order_id}}",
		Body:      "Para {{contact_person}}:\n{{items}}Total: {{total}}",
		IsDefault: true,
	}}
	sender := &capturingSender{}
	return NewOrderUseCase(orderRepo, supplierRepo, itemRepo, formatRepo, sender), orderRepo, sender
}

func TestOrderCreate_CalculaTotalEnServidor(t *testing.T) {
	uc, repo, _ := buildOrderUseCase()

	out, err := uc.Create("sup-1", "user-1", dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{
			{InventoryID: "item-1", Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")},
			{InventoryID: "item-1", Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusDraft, out.Status)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("17.50")),
		"el total debe ser 3×2.50 + 10.00, no lo que mande el cliente")
	assert.Len(t, repo.lines[out.ID], 2)
}

func TestOrderCreate_SinLineasFalla(t *testing.T) {
	uc, _, _ := buildOrderUseCase()

	_, err := uc.Create("sup-1", "user-1", dto.CreateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderSend_RenderYTransicionASent(t *testing.T) {
	uc, repo, sender := buildOrderUseCase()
	out, err := uc.Create("sup-1", "user-1", dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{
			{InventoryID: "item-1", Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")},
		},
	})
	require.NoError(t, err)

	sent, err := uc.Send(context.Background(), out.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusSent, sent.Status)
	require.NotNil(t, sent.SentAt)
	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, []string{"compras@ferreteria.example"}, sender.to)
	assert.Equal(t, "Pedido "+out.ID, sender.subject)
	assert.Contains(t, sender.body, "Para Laura:")
	assert.Contains(t, sender.body, "Guantes de nitrilo x2 @ 5.00 = 10.00")
	assert.Contains(t, sender.body, "Total: 10.00")
	assert.Equal(t, entity.OrderStatusSent, repo.orders[out.ID].Status)
}

func TestOrderSend_SoloDesdeDraft(t *testing.T) {
	uc, _, sender := buildOrderUseCase()
	out, err := uc.Create("sup-1", "user-1", dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{
			{InventoryID: "item-1", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")},
		},
	})
	require.NoError(t, err)

	_, err = uc.Send(context.Background(), out.ID)
	require.NoError(t, err)

	_, err = uc.Send(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "reenviar una orden ya enviada debe fallar")
	assert.Equal(t, 1, sender.calls)
}

func TestOrderSend_FalloSMTPNoCambiaEstado(t *testing.T) {
	uc, repo, sender := buildOrderUseCase()
	out, err := uc.Create("sup-1", "user-1", dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{
			{InventoryID: "item-1", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")},
		},
	})
	require.NoError(t, err)

	sender.err = errors.New("conexión rechazada")
	_, err = uc.Send(context.Background(), out.ID)
	require.Error(t, err)

	assert.Equal(t, entity.OrderStatusDraft, repo.orders[out.ID].Status,
		"si el correo falla la orden sigue en draft")
	assert.Nil(t, repo.orders[out.ID].SentAt)
}

func TestOrderUpdateStatus_CanceladaEsTerminal(t *testing.T) {
	uc, _, _ := buildOrderUseCase()
	out, err := uc.Create("sup-1", "user-1", dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{
			{InventoryID: "item-1", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")},
		},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(out.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(out.ID, entity.OrderStatusReceived)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
