package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// OrderItemRequest línea de pedido con validación explícita de campos
// requeridos en la frontera. SellingPrice es opcional: ausente, el caso de
// uso lo deriva del costo con el margen configurado.
type OrderItemRequest struct {
	Name         string           `json:"name" validate:"required"`
	Barcode      string           `json:"barcode" validate:"required"`
	CostPrice    decimal.Decimal  `json:"costPrice"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
	Quantity     int              `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear una factura de compra.
// ConfirmDebt es la compuerta síncrona de confirmación: con el proveedor en
// saldo impago positivo la operación se rechaza hasta que llegue en true.
type CreateOrderRequest struct {
	CompanyID   string             `json:"companyId" validate:"required"`
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaidAmount  decimal.Decimal    `json:"paidAmount"`
	ConfirmDebt bool               `json:"confirmDebt"`
}

// OrderResponse pedido hacia afuera, con el proveedor resuelto.
type OrderResponse struct {
	ID          string             `json:"id"`
	CompanyID   string             `json:"companyId"`
	CompanyName string             `json:"companyName"`
	Status      string             `json:"status"`
	Items       []entity.OrderItem `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	PaidAmount  decimal.Decimal    `json:"paidAmount"`
	CreatedAt   int64              `json:"createdAt"`
	DueDate     int64              `json:"dueDate"`
}

// ToOrderResponse convierte la entidad al DTO, resolviendo el proveedor en el documento.
func ToOrderResponse(o *entity.Order, doc *entity.Document) *OrderResponse {
	if o == nil {
		return nil
	}
	name := UnknownCompanyName
	if c := doc.FindCompanyByID(o.CompanyID); c != nil {
		name = c.Name
	}
	return &OrderResponse{
		ID:          o.ID,
		CompanyID:   o.CompanyID,
		CompanyName: name,
		Status:      o.Status,
		Items:       append([]entity.OrderItem(nil), o.Items...),
		TotalAmount: o.TotalAmount,
		PaidAmount:  o.PaidAmount,
		CreatedAt:   o.CreatedAt,
		DueDate:     o.DueDate,
	}
}
