package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del día y del mes en curso, calculados sobre el snapshot local.
type DashboardSummaryDTO struct {
	TodaySales    decimal.Decimal `json:"todaySales"`    // ventas de hoy (00:00 – 23:59)
	MonthlySales  decimal.Decimal `json:"monthlySales"`  // ventas desde el día 1 del mes
	ProductCount  int             `json:"productCount"`  // total de productos en inventario
	PendingOrders int             `json:"pendingOrders"` // pedidos en estado PENDING
}

// UpdateSettingsRequest entrada para actualizar la configuración global.
type UpdateSettingsRequest struct {
	AppName      string `json:"appName" validate:"required,min=1,max=100"`
	ProfitMargin int    `json:"profitMargin" validate:"min=0,max=1000"`
}

// LabelSheetRequest productos a incluir en la hoja de etiquetas de barcode.
type LabelSheetRequest struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1"`
	Copies     int      `json:"copies" validate:"min=0,max=50"`
}
