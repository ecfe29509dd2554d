package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// LayoutHandler disposición de widgets por usuario y página.
type LayoutHandler struct {
	uc *usecase.LayoutUseCase
}

// NewLayoutHandler construye el handler.
func NewLayoutHandler(uc *usecase.LayoutUseCase) *LayoutHandler {
	return &LayoutHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener el layout guardado del usuario para una página
// @Tags         layouts
// @Security     Bearer
// @Produce      json
// @Param        page  path  string  true  "Página de la SPA"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/layouts/{page} [get]
func (h *LayoutHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), c.Params("page"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Save guarda (o reemplaza) el layout JSON del usuario.
func (h *LayoutHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveLayoutRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Save(GetUserID(c), c.Params("page"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete vuelve al layout por defecto eliminando el guardado.
func (h *LayoutHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("page")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
