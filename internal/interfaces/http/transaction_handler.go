package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TransactionHandler consultas del historial de stock (solo lectura).
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List godoc
// @Summary      Listar historial de transacciones
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        inventory_id  query  string  false  "Filtrar por artículo"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        user_id       query  string  false  "Filtrar por usuario"
// @Param        type          query  string  false  "addition | deduction"
// @Param        from          query  string  false  "Desde (RFC3339)"
// @Param        to            query  string  false  "Hasta (RFC3339)"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "paginación inválida"))
	}
	filter := repository.TransactionFilter{
		InventoryID: c.Query("inventory_id"),
		WarehouseID: c.Query("warehouse_id"),
		UserID:      c.Query("user_id"),
		Type:        c.Query("type"),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "from debe ser RFC3339"))
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "to debe ser RFC3339"))
		}
		filter.To = &t
	}

	out, err := h.uc.List(filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// GetByID obtiene una transacción por ID.
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}
