package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// OrderHandler consulta y ciclo de vida de los pedidos de compra.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar pedidos de compra
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        supplier_id  query  string  false  "Filtrar por proveedor"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "paginación inválida"))
	}
	out, err := h.uc.List(c.Query("supplier_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// GetByID obtiene un pedido con sus líneas.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Send godoc
// @Summary      Enviar el pedido por correo al proveedor
// @Description  Solo pedidos en borrador. Renderiza la plantilla de correo
// @Description  por defecto y marca el pedido como enviado.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/send [post]
func (h *OrderHandler) Send(c *fiber.Ctx) error {
	out, err := h.uc.Send(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus marca el pedido como recibido o cancelado.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in updateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}
