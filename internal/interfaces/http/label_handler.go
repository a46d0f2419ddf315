package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// LabelGenerator genera la hoja de etiquetas en PDF.
type LabelGenerator interface {
	GenerateLabelSheet(products []*entity.Product, copies int) ([]byte, error)
}

// LabelHandler maneja la impresión de etiquetas de código de barras.
type LabelHandler struct {
	store *state.Store
	gen   LabelGenerator
}

// NewLabelHandler construye el handler.
func NewLabelHandler(store *state.Store, gen LabelGenerator) *LabelHandler {
	return &LabelHandler{store: store, gen: gen}
}

// GenerateSheet arma el PDF con las etiquetas de los productos pedidos.
// Ids desconocidos se ignoran; si ninguno resuelve responde 404.
// POST /api/labels/pdf
func (h *LabelHandler) GenerateSheet(c *fiber.Ctx) error {
	var in dto.LabelSheetRequest
	if !parseAndValidate(c, &in) {
		return nil
	}

	snap := h.store.Snapshot()
	products := make([]*entity.Product, 0, len(in.ProductIDs))
	for _, id := range in.ProductIDs {
		if p := snap.FindProductByID(id); p != nil {
			products = append(products, p)
		}
	}
	if len(products) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ningún producto coincide con los ids pedidos"})
	}

	raw, err := h.gen.GenerateLabelSheet(products, in.Copies)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="etiquetas.pdf"`)
	return c.Send(raw)
}
