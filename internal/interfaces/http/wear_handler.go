package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
)

// WearHandler equipos de desgaste y su informe de estado.
type WearHandler struct {
	uc  *usecase.WearUseCase
	gen *pdf.Generator
}

// NewWearHandler construye el handler.
func NewWearHandler(uc *usecase.WearUseCase, gen *pdf.Generator) *WearHandler {
	return &WearHandler{uc: uc, gen: gen}
}

// Create godoc
// @Summary      Registrar equipo de desgaste
// @Tags         wear
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWearEquipmentRequest  true  "Datos del equipo"
// @Success      201   {object}  dto.SuccessResponse
// @Router       /api/wear-equipment [post]
func (h *WearHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWearEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID obtiene un equipo.
func (h *WearHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Update modifica los campos enviados, incluida la última inspección.
func (h *WearHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWearEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// List pagina los equipos, con filtro opcional por condición.
func (h *WearHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "paginación inválida"))
	}
	out, err := h.uc.List(c.Query("condition"), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete elimina el registro del equipo.
func (h *WearHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}

// Report godoc
// @Summary      Informe agregado por condición
// @Tags         wear
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/wear-equipment/report [get]
func (h *WearHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.Report()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// ReportPDF genera el informe de condición como PDF descargable.
func (h *WearHandler) ReportPDF(c *fiber.Ctx) error {
	report, err := h.uc.Report()
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.gen.WearReportPDF(report)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="informe-desgaste.pdf"`)
	return c.Send(doc)
}
