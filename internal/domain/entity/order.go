package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido a proveedor. Son exactamente dos y el cambio es un
// toggle reversible: PENDING→RECEIVED dispara la reconciliación de stock,
// RECEIVED→PENDING no la revierte (comportamiento de negocio aceptado).
const (
	OrderStatusPending  = "PENDING"
	OrderStatusReceived = "RECEIVED"
)

// OrderSerialFloor piso del asignador de seriales para pedidos.
const OrderSerialFloor = 1000

// OrderDueDays plazo de vencimiento fijo desde la creación.
const OrderDueDays = 7

// OrderItem es una línea del pedido: snapshot desnormalizado de los campos
// del producto en el momento de crear el pedido, independiente del Product vivo.
type OrderItem struct {
	Name         string          `json:"name" bson:"name"`
	Barcode      string          `json:"barcode" bson:"barcode"`
	CostPrice    decimal.Decimal `json:"costPrice" bson:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice" bson:"sellingPrice"`
	Quantity     int             `json:"quantity" bson:"quantity"`
}

// Order representa una factura de compra a un proveedor.
// TotalAmount y PaidAmount se fijan en la creación y no cambian después.
// CreatedAt y DueDate van en epoch millis, el formato del documento compartido.
type Order struct {
	ID          string          `json:"id" bson:"id"` // serial desde 1000
	CompanyID   string          `json:"companyId" bson:"companyId"`
	Status      string          `json:"status" bson:"status"` // PENDING | RECEIVED
	Items       []OrderItem     `json:"items" bson:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount" bson:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount" bson:"paidAmount"`
	CreatedAt   int64           `json:"createdAt" bson:"createdAt"`
	DueDate     int64           `json:"dueDate" bson:"dueDate"`
}

// DueDateFrom calcula el vencimiento (creación + 7 días) en epoch millis.
func DueDateFrom(createdAt int64) int64 {
	return createdAt + int64(OrderDueDays*24*time.Hour/time.Millisecond)
}

// Clone devuelve una copia profunda del pedido (las líneas no se comparten).
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.Items = append([]OrderItem(nil), o.Items...)
	return &c
}
