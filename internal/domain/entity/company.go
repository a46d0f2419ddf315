package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CompanySerialFloor piso del asignador de seriales para empresas proveedoras.
const CompanySerialFloor = 100

// Company representa un proveedor. El id es un serial numérico en string
// (desde 100) y el código se deriva de él. Debt es el saldo corrido con el
// proveedor: sube con el saldo impago de cada pedido y no existe operación
// que lo baje; un valor negativo representa crédito por sobrepago.
type Company struct {
	ID   string          `json:"id" bson:"id"`
	Name string          `json:"name" bson:"name"`
	Code string          `json:"code" bson:"code"` // COMP-<id>
	Debt decimal.Decimal `json:"debt" bson:"debt"`
}

// CompanyCode deriva el código visible a partir del id serial.
func CompanyCode(id string) string {
	return fmt.Sprintf("COMP-%s", id)
}
