package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DebtWarningResponse se devuelve cuando crear un pedido requiere
// confirmación por saldo impago del proveedor: trae el saldo para que la
// superficie pueda mostrar la advertencia y repetir con la confirmación.
type DebtWarningResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Debt    decimal.Decimal `json:"debt"`
}
