package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// EmailFormatHandler plantillas de correo (pedidos y alertas de stock).
type EmailFormatHandler struct {
	uc *usecase.EmailFormatUseCase
}

// NewEmailFormatHandler construye el handler.
func NewEmailFormatHandler(uc *usecase.EmailFormatUseCase) *EmailFormatHandler {
	return &EmailFormatHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plantilla de correo
// @Tags         email-formats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmailFormatRequest  true  "Plantilla"
// @Success      201   {object}  dto.SuccessResponse
// @Router       /api/email-formats [post]
func (h *EmailFormatHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmailFormatRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID obtiene una plantilla.
func (h *EmailFormatHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Update modifica la plantilla; marcarla por defecto desmarca la anterior.
func (h *EmailFormatHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmailFormatRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// List pagina las plantillas.
func (h *EmailFormatHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "paginación inválida"))
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete elimina la plantilla.
func (h *EmailFormatHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
