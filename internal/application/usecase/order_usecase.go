package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/domain"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	"github.com/tu-usuario/supermercado-pro/pkg/serial"
)

// OrderUseCase casos de uso de pedidos a proveedor: creación con ajuste de
// deuda y toggle de estado con reconciliación de inventario. Cada operación
// calcula el documento nuevo completo y lo aplica en un solo Update, de modo
// que las colecciones afectadas (pedidos, proveedores, productos) cambian
// juntas antes de publicar.
type OrderUseCase struct {
	store *state.Store
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(store *state.Store) *OrderUseCase {
	return &OrderUseCase{store: store}
}

// Create registra una factura de compra.
//
// Reglas:
//   - Proveedor seleccionado y al menos una línea, o rechazo de validación
//     sin mutar nada.
//   - Proveedor con deuda positiva exige confirmación explícita
//     (ErrDebtConfirmationRequired hasta recibirla).
//   - Total = Σ costo×cantidad. La deuda del proveedor sube exactamente en
//     total − pagado; un sobrepago deja deuda negativa (crédito) y se acepta.
//   - Líneas sin precio de venta reciben la sugerencia del margen configurado.
//   - Id serial desde 1000, estado inicial PENDING, vencimiento a 7 días.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CompanyID == "" {
		return nil, domain.ErrCompanyMissing
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	snap := uc.store.Snapshot()
	company := snap.FindCompanyByID(in.CompanyID)
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if company.Debt.IsPositive() && !in.ConfirmDebt {
		return nil, domain.ErrDebtConfirmationRequired
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		selling := snap.Settings.SuggestedSellingPrice(it.CostPrice)
		if it.SellingPrice != nil {
			selling = *it.SellingPrice
		}
		items = append(items, entity.OrderItem{
			Name:         it.Name,
			Barcode:      it.Barcode,
			CostPrice:    it.CostPrice,
			SellingPrice: selling,
			Quantity:     it.Quantity,
		})
		total = total.Add(it.CostPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	ids := make([]string, 0, len(snap.Orders))
	for _, o := range snap.Orders {
		ids = append(ids, o.ID)
	}
	now := time.Now().UnixMilli()
	order := entity.Order{
		ID:          serial.Next(ids, entity.OrderSerialFloor),
		CompanyID:   in.CompanyID,
		Status:      entity.OrderStatusPending,
		Items:       items,
		TotalAmount: total,
		PaidAmount:  in.PaidAmount,
		CreatedAt:   now,
		DueDate:     entity.DueDateFrom(now),
	}

	remaining := total.Sub(in.PaidAmount)
	companies := make([]entity.Company, len(snap.Companies))
	copy(companies, snap.Companies)
	for i := range companies {
		if companies[i].ID == in.CompanyID {
			companies[i].Debt = companies[i].Debt.Add(remaining)
		}
	}
	orders := append(snap.Orders, order)

	uc.store.Update(state.Patch{Orders: &orders, Companies: &companies})
	return dto.ToOrderResponse(&order, &snap.Document), nil
}

// ToggleStatus alterna PENDING⇄RECEIVED. Al entrar en RECEIVED corre la
// reconciliación de inventario: por cada línea, el producto con ese barcode
// (primera coincidencia) suma la cantidad a su stock; si no existe, se
// sintetiza un producto nuevo con los precios de la línea, stock igual a la
// cantidad y el proveedor del pedido.
//
// Volver a PENDING no revierte el stock. La asimetría es el comportamiento
// de negocio aceptado; cambiarla es decisión de producto, no de esta capa.
func (uc *OrderUseCase) ToggleStatus(orderID string) (*dto.OrderResponse, error) {
	snap := uc.store.Snapshot()
	order := snap.FindOrderByID(orderID)
	if order == nil {
		return nil, domain.ErrNotFound
	}

	newStatus := entity.OrderStatusReceived
	if order.Status == entity.OrderStatusReceived {
		newStatus = entity.OrderStatusPending
	}

	products := append([]entity.Product(nil), snap.Products...)
	if newStatus == entity.OrderStatusReceived {
		for _, item := range order.Items {
			idx := -1
			for i := range products {
				if products[i].Barcode == item.Barcode {
					idx = i
					break
				}
			}
			if idx >= 0 {
				products[idx].Stock += item.Quantity
				continue
			}
			products = append(products, entity.Product{
				ID:           uuid.New().String(),
				Barcode:      item.Barcode,
				Name:         item.Name,
				CompanyID:    order.CompanyID,
				CostPrice:    item.CostPrice,
				SellingPrice: item.SellingPrice,
				Stock:        item.Quantity,
			})
		}
	}

	orders := make([]entity.Order, len(snap.Orders))
	copy(orders, snap.Orders)
	var toggled *entity.Order
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = newStatus
			toggled = &orders[i]
		}
	}

	uc.store.Update(state.Patch{Orders: &orders, Products: &products})
	return dto.ToOrderResponse(toggled, &snap.Document), nil
}

// PendingDebt devuelve la deuda vigente del proveedor, cero si no existe.
// La frontera HTTP la usa para armar la advertencia de confirmación.
func (uc *OrderUseCase) PendingDebt(companyID string) decimal.Decimal {
	snap := uc.store.Snapshot()
	if c := snap.FindCompanyByID(companyID); c != nil {
		return c.Debt
	}
	return decimal.Zero
}

// List devuelve todos los pedidos con el proveedor resuelto.
func (uc *OrderUseCase) List() []dto.OrderResponse {
	snap := uc.store.Snapshot()
	items := make([]dto.OrderResponse, 0, len(snap.Orders))
	for i := range snap.Orders {
		items = append(items, *dto.ToOrderResponse(&snap.Orders[i], &snap.Document))
	}
	return items
}
