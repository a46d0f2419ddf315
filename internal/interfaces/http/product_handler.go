package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/usecase"
	"github.com/tu-usuario/supermercado-pro/internal/domain"
)

// InventoryExporter genera el libro XLSX del inventario.
type InventoryExporter interface {
	Export(products []dto.ProductResponse) ([]byte, error)
}

// ProductHandler maneja las peticiones HTTP del inventario (protegido).
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	exporter InventoryExporter
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, exporter InventoryExporter) *ProductHandler {
	return &ProductHandler{uc: uc, exporter: exporter}
}

// Create registra un producto nuevo.
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update edita un producto existente.
// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.SaveProductRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete elimina un producto del inventario.
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List devuelve el inventario completo; con ?q= filtra por nombre
// (sin distinguir mayúsculas) o por código de barras.
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if q := c.Query("q"); q != "" {
		return c.JSON(h.uc.Search(q))
	}
	return c.JSON(h.uc.List())
}

// GetByBarcode busca la primera coincidencia exacta del código de barras,
// el camino caliente de la pistola lectora.
// GET /api/products/barcode/:code
func (h *ProductHandler) GetByBarcode(c *fiber.Ctx) error {
	out := h.uc.FindByBarcode(c.Params("code"))
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "código de barras sin coincidencias"})
	}
	return c.JSON(out)
}

// Export descarga el inventario completo como XLSX.
// GET /api/products/export
func (h *ProductHandler) Export(c *fiber.Ctx) error {
	raw, err := h.exporter.Export(h.uc.List())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.xlsx"`)
	return c.Send(raw)
}
