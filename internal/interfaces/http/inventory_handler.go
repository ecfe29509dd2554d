package http

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/barcode"
)

// InventoryHandler maneja las peticiones HTTP del inventario (protegido).
type InventoryHandler struct {
	itemUC     *inventory.ItemUseCase
	stockUC    *inventory.UpdateStockUseCase
	renderer   *barcode.Renderer
	uploadsDir string
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(itemUC *inventory.ItemUseCase, stockUC *inventory.UpdateStockUseCase, renderer *barcode.Renderer, uploadsDir string) *InventoryHandler {
	return &InventoryHandler{itemUC: itemUC, stockUC: stockUC, renderer: renderer, uploadsDir: uploadsDir}
}

// Create godoc
// @Summary      Crear artículo de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.itemUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID obtiene un artículo con sus ubicaciones.
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.itemUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "artículo no encontrado"))
	}
	return respondOK(c, out)
}

// GetByBarcode busca un artículo por código de barras (lectura con escáner).
func (h *InventoryHandler) GetByBarcode(c *fiber.Ctx) error {
	out, err := h.itemUC.GetByBarcode(c.Params("barcode"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "artículo no encontrado"))
	}
	return respondOK(c, out)
}

// List lista artículos con filtros opcionales (name, category_id, warehouse_id).
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "paginación inválida"))
	}
	page.DefaultPage()
	filter := repository.ItemFilter{
		Name:        c.Query("name"),
		CategoryID:  c.Query("category_id"),
		WarehouseID: c.Query("warehouse_id"),
	}
	out, err := h.itemUC.List(filter, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Update godoc
// @Summary      Actualizar artículo y reconciliar ubicaciones
// @Description  additional_locations es la lista completa: las bodegas omitidas se eliminan con su cantidad.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Cambios"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.itemUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete elimina un artículo.
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.itemUC.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}

// UpdateStock godoc
// @Summary      Registrar entrada o salida de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del artículo"
// @Param        body  body  dto.UpdateStockRequest  true  "Movimiento"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/inventory/{id}/stock [post]
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.stockUC.UpdateStock(c.Context(), inventory.StockUpdateInput{
		ItemID:      c.Params("id"),
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		Type:        in.Type,
		UserID:      GetUserID(c),
		WarehouseID: in.WarehouseID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// ListLowStock lista artículos en o por debajo de su umbral mínimo.
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	out, err := h.itemUC.ListLowStock()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// BarcodePNG renderiza el código de barras Code-128 del artículo como PNG.
func (h *InventoryHandler) BarcodePNG(c *fiber.Ctx) error {
	item, err := h.itemUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "artículo no encontrado"))
	}
	png, err := h.renderer.Code128PNG(item.Barcode, 400, 120)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// QRPNG renderiza el código QR del artículo como PNG.
func (h *InventoryHandler) QRPNG(c *fiber.Ctx) error {
	item, err := h.itemUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "artículo no encontrado"))
	}
	png, err := h.renderer.QRPNG(item.Barcode, 256)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// UploadImage recibe la imagen del artículo (multipart "image"), la guarda
// bajo /uploads y devuelve la URL para incluirla en el siguiente update.
func (h *InventoryHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "se espera el archivo multipart 'image'"))
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "formato de imagen no soportado: "+ext))
	}
	name := fmt.Sprintf("items/%s%s", uuid.New().String(), ext)
	if err := c.SaveFile(file, filepath.Join(h.uploadsDir, name)); err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, fiber.Map{"image_url": "/uploads/" + name})
}
