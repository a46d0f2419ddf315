package entity

import "github.com/shopspring/decimal"

// GlobalSettings configuración visible de la tienda, parte del documento compartido.
type GlobalSettings struct {
	AppName      string `json:"appName" bson:"appName"`
	ProfitMargin int    `json:"profitMargin" bson:"profitMargin"` // ej. 15 para 15%
}

// SuggestedSellingPrice deriva el precio de venta sugerido a partir del costo
// aplicando el margen configurado: costo × (1 + margen/100). Se usa al
// registrar líneas de pedido sin precio de venta explícito.
func (s GlobalSettings) SuggestedSellingPrice(cost decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(100 + int64(s.ProfitMargin)).Div(decimal.NewFromInt(100))
	return cost.Mul(factor)
}
