package http

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// SignatureHandler registro de firmas manuscritas (imagen + firmante).
type SignatureHandler struct {
	uc         *usecase.SignatureUseCase
	uploadsDir string
}

// NewSignatureHandler construye el handler.
func NewSignatureHandler(uc *usecase.SignatureUseCase, uploadsDir string) *SignatureHandler {
	return &SignatureHandler{uc: uc, uploadsDir: uploadsDir}
}

// Create godoc
// @Summary      Registrar firma
// @Description  Multipart con campo "image" (PNG) y campo "signer_name".
// @Tags         signatures
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.SuccessResponse
// @Router       /api/signatures [post]
func (h *SignatureHandler) Create(c *fiber.Ctx) error {
	signerName := strings.TrimSpace(c.FormValue("signer_name"))
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "se espera el archivo multipart 'image'"))
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".png" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "la firma debe ser un PNG"))
	}
	name := fmt.Sprintf("signatures/%s.png", uuid.New().String())
	path := filepath.Join(h.uploadsDir, name)
	if err := c.SaveFile(file, path); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(signerName, path)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID obtiene una firma.
func (h *SignatureHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// List pagina las firmas registradas.
func (h *SignatureHandler) List(c *fiber.Ctx) error {
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
