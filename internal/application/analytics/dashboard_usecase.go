// Package analytics contiene las agregaciones de solo lectura del dashboard.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// DashboardUseCase calcula el resumen del día y del mes en curso sobre el
// snapshot local. Las ventas son registros de solo-lectura para este núcleo:
// llegan al documento desde la superficie de venta y aquí solo se suman.
type DashboardUseCase struct {
	store *state.Store
	now   func() time.Time // inyectable en tests
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store *state.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO:
//   - TodaySales: ventas con timestamp desde hoy a las 00:00
//   - MonthlySales: ventas desde el día 1 del mes a las 00:00
//   - ProductCount y PendingOrders directos del snapshot
func (uc *DashboardUseCase) GetSummary() dto.DashboardSummaryDTO {
	snap := uc.store.Snapshot()
	now := uc.now()

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).UnixMilli()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).UnixMilli()

	today := decimal.Zero
	month := decimal.Zero
	for _, s := range snap.Sales {
		if s.Timestamp >= monthStart {
			month = month.Add(s.Total)
		}
		if s.Timestamp >= todayStart {
			today = today.Add(s.Total)
		}
	}

	pending := 0
	for _, o := range snap.Orders {
		if o.Status == entity.OrderStatusPending {
			pending++
		}
	}

	return dto.DashboardSummaryDTO{
		TodaySales:    today,
		MonthlySales:  month,
		ProductCount:  len(snap.Products),
		PendingOrders: pending,
	}
}
