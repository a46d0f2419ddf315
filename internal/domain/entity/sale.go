package entity

import "github.com/shopspring/decimal"

// Sale registra una venta realizada en el punto de venta. Es una entidad de
// solo-lectura para este núcleo: se agrega al documento desde la superficie
// de venta (fuera de alcance) y aquí solo se consume en agregaciones.
type Sale struct {
	ID        string          `json:"id" bson:"id"`
	ProductID string          `json:"productId" bson:"productId"`
	Quantity  int             `json:"quantity" bson:"quantity"`
	Total     decimal.Decimal `json:"total" bson:"total"`
	Timestamp int64           `json:"timestamp" bson:"timestamp"` // epoch millis
}
