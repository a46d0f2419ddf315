package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// SaveProductRequest entrada para crear o editar un producto del inventario.
// No se impone piso al stock en ediciones manuales; la recepción de pedidos
// es la única vía que garantiza no bajar de cero.
type SaveProductRequest struct {
	Barcode      string          `json:"barcode" validate:"required"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	CompanyID    string          `json:"companyId"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Stock        int             `json:"stock"`
	Description  string          `json:"description"`
	Unit         string          `json:"unit"`
	Category     string          `json:"category"`
}

// ProductResponse producto hacia afuera, con el nombre del proveedor resuelto.
// CompanyName es "Desconocido" cuando la referencia quedó colgando.
type ProductResponse struct {
	ID           string          `json:"id"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	CompanyID    string          `json:"companyId"`
	CompanyName  string          `json:"companyName"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Stock        int             `json:"stock"`
	Description  string          `json:"description,omitempty"`
	Unit         string          `json:"unit,omitempty"`
	Category     string          `json:"category,omitempty"`
}

// UnknownCompanyName placeholder para referencias de proveedor colgando.
const UnknownCompanyName = "Desconocido"

// ToProductResponse convierte la entidad al DTO, resolviendo el proveedor en el documento.
func ToProductResponse(p *entity.Product, doc *entity.Document) *ProductResponse {
	if p == nil {
		return nil
	}
	name := UnknownCompanyName
	if c := doc.FindCompanyByID(p.CompanyID); c != nil {
		name = c.Name
	}
	return &ProductResponse{
		ID:           p.ID,
		Barcode:      p.Barcode,
		Name:         p.Name,
		CompanyID:    p.CompanyID,
		CompanyName:  name,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		Stock:        p.Stock,
		Description:  p.Description,
		Unit:         p.Unit,
		Category:     p.Category,
	}
}
