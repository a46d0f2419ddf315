package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/usecase"
	"github.com/tu-usuario/supermercado-pro/internal/domain"
)

// OrderHandler maneja las peticiones HTTP de pedidos a proveedor.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create registra una factura de compra. Con el proveedor en deuda y sin
// confirmDebt responde 409 con el saldo, para que la superficie muestre la
// advertencia y repita la petición confirmada.
// POST /api/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDebtConfirmationRequired):
			return c.Status(fiber.StatusConflict).JSON(dto.DebtWarningResponse{
				Code:    "DEBT_CONFIRMATION_REQUIRED",
				Message: "el proveedor tiene saldo impago; repita con confirmDebt=true",
				Debt:    h.uc.PendingDebt(in.CompanyID),
			})
		case errors.Is(err, domain.ErrCompanyMissing), errors.Is(err, domain.ErrEmptyItems):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ToggleStatus alterna PENDING⇄RECEIVED; al recibir corre la
// reconciliación de inventario.
// POST /api/orders/:id/toggle
func (h *OrderHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List devuelve todos los pedidos con el proveedor resuelto.
// GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
