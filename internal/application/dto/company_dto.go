package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// CreateCompanyRequest entrada para registrar un proveedor.
type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// CompanyResponse proveedor hacia afuera.
type CompanyResponse struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Code string          `json:"code"`
	Debt decimal.Decimal `json:"debt"`
}

// ToCompanyResponse convierte la entidad al DTO de salida.
func ToCompanyResponse(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{ID: c.ID, Name: c.Name, Code: c.Code, Debt: c.Debt}
}
