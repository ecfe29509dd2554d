package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// EmailSender es el puerto de salida de correo. La implementación SMTP
// vive en infrastructure/mail.
type EmailSender interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// OrderUseCase casos de uso de órdenes de compra: creación, consulta y
// envío por correo al proveedor.
type OrderUseCase struct {
	orderRepo    repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	itemRepo     repository.ItemRepository
	formatRepo   repository.EmailFormatRepository
	sender       EmailSender
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	itemRepo repository.ItemRepository,
	formatRepo repository.EmailFormatRepository,
	sender EmailSender,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		itemRepo:     itemRepo,
		formatRepo:   formatRepo,
		sender:       sender,
	}
}

// Create crea una orden en estado draft con sus líneas. El total se calcula
// en el servidor a partir de cantidad × precio unitario de cada línea.
func (uc *OrderUseCase) Create(supplierID, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.NewValidationError("la orden necesita al menos una línea")
	}
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	orderID := uuid.New().String()
	total := decimal.Zero
	lines := make([]*entity.PurchaseOrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return nil, domain.NewValidationError("la cantidad debe ser positiva")
		}
		if l.UnitPrice.IsNegative() {
			return nil, domain.NewValidationError("el precio unitario no puede ser negativo")
		}
		item, err := uc.itemRepo.GetByID(l.InventoryID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.NewValidationError("artículo no encontrado: %s", l.InventoryID)
		}
		line := &entity.PurchaseOrderLine{
			ID:          uuid.New().String(),
			OrderID:     orderID,
			InventoryID: l.InventoryID,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		}
		total = total.Add(line.LineTotal())
		lines = append(lines, line)
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:         orderID,
		SupplierID: supplierID,
		CreatedBy:  userID,
		Status:     entity.OrderStatusDraft,
		Note:       in.Note,
		Total:      total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.orderRepo.Create(order, lines); err != nil {
		return nil, err
	}
	return toOrderResponse(order, lines), nil
}

// GetByID obtiene una orden con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, lines, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order, lines), nil
}

// List lista órdenes, opcionalmente filtradas por proveedor.
func (uc *OrderUseCase) List(supplierID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	list, err := uc.orderRepo.List(supplierID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, nil))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Send compone el correo de la orden con la plantilla por defecto de tipo
// purchase_order, lo envía al proveedor y marca la orden como sent.
// Solo las órdenes en draft se pueden enviar.
func (uc *OrderUseCase) Send(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, lines, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusDraft {
		return nil, domain.ErrConflict
	}
	supplier, err := uc.supplierRepo.GetByID(order.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	format, err := uc.formatRepo.GetDefaultByKind(entity.EmailFormatPurchaseOrder)
	if err != nil {
		return nil, err
	}
	if format == nil {
		return nil, domain.NewValidationError("no hay plantilla de correo por defecto para órdenes de compra")
	}

	subject, body := format.Render(map[string]string{
		"order_id":       order.ID,
		"supplier_name":  supplier.Name,
		"contact_person": supplier.ContactPerson,
		"note":           order.Note,
		"total":          order.Total.StringFixed(2),
		"date":           time.Now().Format("2006-01-02"),
		"items":          uc.renderOrderLines(lines),
	})
	if err := uc.sender.Send(ctx, []string{supplier.Email}, subject, body); err != nil {
		return nil, fmt.Errorf("enviando orden %s a %s: %w", order.ID, supplier.Email, err)
	}

	sentAt := time.Now()
	if err := uc.orderRepo.UpdateStatus(order.ID, entity.OrderStatusSent, &sentAt); err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusSent
	order.SentAt = &sentAt
	return toOrderResponse(order, lines), nil
}

// UpdateStatus cambia el estado de una orden (received, cancelled).
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	switch status {
	case entity.OrderStatusReceived, entity.OrderStatusCancelled:
	default:
		return nil, domain.NewValidationError("estado de orden inválido: %s", status)
	}
	order, lines, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, domain.ErrConflict
	}
	if err := uc.orderRepo.UpdateStatus(id, status, nil); err != nil {
		return nil, err
	}
	order.Status = status
	return toOrderResponse(order, lines), nil
}

// renderOrderLines produce el bloque de texto {{items}} de la plantilla:
// una línea por artículo con cantidad y precio.
func (uc *OrderUseCase) renderOrderLines(lines []*entity.PurchaseOrderLine) string {
	var b strings.Builder
	for _, l := range lines {
		name := l.InventoryID
		if item, err := uc.itemRepo.GetByID(l.InventoryID); err == nil && item != nil {
			name = item.Name
		}
		fmt.Fprintf(&b, "- %s x%d @ %s = %s\n", name, l.Quantity, l.UnitPrice.StringFixed(2), l.LineTotal().StringFixed(2))
	}
	return b.String()
}

func toOrderResponse(o *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:         o.ID,
		SupplierID: o.SupplierID,
		CreatedBy:  o.CreatedBy,
		Status:     o.Status,
		Note:       o.Note,
		Total:      o.Total,
		SentAt:     o.SentAt,
		CreatedAt:  o.CreatedAt,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			InventoryID: l.InventoryID,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal(),
		})
	}
	return resp
}
