package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
)

// DeliveryNoteHandler albaranes de entrega: emisión, firma y PDF.
type DeliveryNoteHandler struct {
	uc  *usecase.DeliveryNoteUseCase
	gen *pdf.Generator
}

// NewDeliveryNoteHandler construye el handler.
func NewDeliveryNoteHandler(uc *usecase.DeliveryNoteUseCase, gen *pdf.Generator) *DeliveryNoteHandler {
	return &DeliveryNoteHandler{uc: uc, gen: gen}
}

// Create godoc
// @Summary      Emitir albarán de entrega
// @Description  Asigna el número consecutivo DN-AAAA-NNN y lo deja emitido.
// @Tags         delivery-notes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryNoteRequest  true  "Destinatario y líneas"
// @Success      201   {object}  dto.SuccessResponse
// @Router       /api/delivery-notes [post]
func (h *DeliveryNoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID obtiene un albarán con sus líneas.
func (h *DeliveryNoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// List pagina los albaranes, con filtro opcional por estado.
func (h *DeliveryNoteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "paginación inválida"))
	}
	out, err := h.uc.List(c.Query("status"), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Sign godoc
// @Summary      Firmar el albarán
// @Description  Asocia una firma registrada; un albarán firmado es inmutable.
// @Tags         delivery-notes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del albarán"
// @Param        body  body  dto.SignDeliveryNoteRequest  true  "ID de la firma"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/delivery-notes/{id}/sign [post]
func (h *DeliveryNoteHandler) Sign(c *fiber.Ctx) error {
	var in dto.SignDeliveryNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Sign(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// PDF genera el albarán como PDF, con código QR y firma si la tiene.
func (h *DeliveryNoteHandler) PDF(c *fiber.Ctx) error {
	note, signaturePath, err := h.uc.PDFData(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.gen.DeliveryNotePDF(note, signaturePath)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, note.Number))
	return c.Send(doc)
}
