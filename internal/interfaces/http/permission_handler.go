package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// PermissionHandler matriz rol → páginas de la SPA (solo admin).
type PermissionHandler struct {
	uc *usecase.PermissionUseCase
}

// NewPermissionHandler construye el handler.
func NewPermissionHandler(uc *usecase.PermissionUseCase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

// List godoc
// @Summary      Listar permisos de página
// @Tags         permissions
// @Security     Bearer
// @Produce      json
// @Param        role  query  string  false  "Filtrar por rol"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/permissions [get]
func (h *PermissionHandler) List(c *fiber.Ctx) error {
	role := c.Query("role")
	var (
		out []dto.PagePermissionDTO
		err error
	)
	if role != "" {
		out, err = h.uc.ListByRole(role)
	} else {
		out, err = h.uc.ListAll()
	}
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Set reemplaza los accesos indicados en el cuerpo.
func (h *PermissionHandler) Set(c *fiber.Ctx) error {
	var in dto.SetPermissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.Set(in); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"updated": true})
}
