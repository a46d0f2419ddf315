package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/application/usecase"
	"github.com/tu-usuario/supermercado-pro/internal/domain"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	"github.com/tu-usuario/supermercado-pro/pkg/logger"
)

// nullDocStore remoto mínimo: los tests de casos de uso solo necesitan el
// snapshot local; la publicación en background cae en el vacío.
type nullDocStore struct{}

func (nullDocStore) Load(context.Context) (*entity.Document, error) { return nil, nil }
func (nullDocStore) Save(context.Context, *entity.Document) error   { return nil }
func (nullDocStore) Close(context.Context) error                    { return nil }
func (nullDocStore) Watch(context.Context) (<-chan *entity.Document, error) {
	return make(chan *entity.Document), nil
}

func newStore() *state.Store {
	return state.New(nullDocStore{}, entity.GlobalSettings{AppName: "Test", ProfitMargin: 15}, logger.Nop())
}

func seed(st *state.Store, p state.Patch) {
	settings := entity.GlobalSettings{AppName: "Test", ProfitMargin: 15}
	if p.Settings == nil {
		p.Settings = &settings
	}
	st.Update(p)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func items(quantity int, cost string) []dto.OrderItemRequest {
	return []dto.OrderItemRequest{{
		Name:      "Aceite 1.5L",
		Barcode:   "12345678",
		CostPrice: dec(cost),
		Quantity:  quantity,
	}}
}

func TestCreateOrder_SinProveedor(t *testing.T) {
	uc := usecase.NewOrderUseCase(newStore())
	_, err := uc.Create(dto.CreateOrderRequest{Items: items(1, "10")})
	assert.ErrorIs(t, err, domain.ErrCompanyMissing)
}

func TestCreateOrder_SinLineas(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Companies: &[]entity.Company{{ID: "100", Name: "Acme"}}})
	uc := usecase.NewOrderUseCase(st)

	_, err := uc.Create(dto.CreateOrderRequest{CompanyID: "100"})
	assert.ErrorIs(t, err, domain.ErrEmptyItems)
	// El rechazo de validación no muta nada.
	assert.Empty(t, st.Snapshot().Orders)
}

func TestCreateOrder_DeudaExigeConfirmacion(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Companies: &[]entity.Company{{ID: "100", Name: "Acme", Debt: dec("500")}}})
	uc := usecase.NewOrderUseCase(st)

	_, err := uc.Create(dto.CreateOrderRequest{CompanyID: "100", Items: items(2, "10")})
	require.ErrorIs(t, err, domain.ErrDebtConfirmationRequired)

	// Sin confirmación no se muta nada: ni pedidos ni deuda.
	snap := st.Snapshot()
	assert.Empty(t, snap.Orders)
	assert.True(t, snap.Companies[0].Debt.Equal(dec("500")))
}

func TestCreateOrder_ConConfirmacionSubeDeudaExacta(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Companies: &[]entity.Company{{ID: "100", Name: "Acme", Debt: dec("500")}}})
	uc := usecase.NewOrderUseCase(st)

	out, err := uc.Create(dto.CreateOrderRequest{
		CompanyID:   "100",
		Items:       items(3, "10"), // total 30
		PaidAmount:  dec("10"),
		ConfirmDebt: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "1000", out.ID)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.True(t, out.TotalAmount.Equal(dec("30")))

	// La deuda sube exactamente en total − pagado: 500 + 20.
	snap := st.Snapshot()
	assert.True(t, snap.Companies[0].Debt.Equal(dec("520")))
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, entity.DueDateFrom(snap.Orders[0].CreatedAt), snap.Orders[0].DueDate)
}

func TestCreateOrder_SobrepagoDejaDeudaNegativa(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Companies: &[]entity.Company{{ID: "100", Name: "Acme"}}})
	uc := usecase.NewOrderUseCase(st)

	_, err := uc.Create(dto.CreateOrderRequest{
		CompanyID:  "100",
		Items:      items(1, "10"),
		PaidAmount: dec("25"),
	})
	require.NoError(t, err)

	// total 10 − pagado 25 = −15: crédito por prepago, estado válido.
	assert.True(t, st.Snapshot().Companies[0].Debt.Equal(dec("-15")))
}

func TestCreateOrder_PrecioVentaSugeridoPorMargen(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Companies: &[]entity.Company{{ID: "100", Name: "Acme"}}})
	uc := usecase.NewOrderUseCase(st)

	_, err := uc.Create(dto.CreateOrderRequest{CompanyID: "100", Items: items(1, "100")})
	require.NoError(t, err)

	// Margen 15%: costo 100 → venta sugerida 115.
	snap := st.Snapshot()
	assert.True(t, snap.Orders[0].Items[0].SellingPrice.Equal(dec("115")))
}

func TestToggleStatus_RecibidoSintetizaProducto(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Companies: &[]entity.Company{{ID: "100", Name: "Acme"}}})
	uc := usecase.NewOrderUseCase(st)

	out, err := uc.Create(dto.CreateOrderRequest{CompanyID: "100", Items: items(4, "10")})
	require.NoError(t, err)

	toggled, err := uc.ToggleStatus(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReceived, toggled.Status)

	// El barcode no existía: se crea exactamente un producto con stock = cantidad.
	snap := st.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "12345678", snap.Products[0].Barcode)
	assert.Equal(t, 4, snap.Products[0].Stock)
	assert.Equal(t, "100", snap.Products[0].CompanyID)
}

func TestToggleStatus_RecibidoSumaStockExistente(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{
		Companies: &[]entity.Company{{ID: "100", Name: "Acme"}},
		Products:  &[]entity.Product{{ID: "p1", Barcode: "12345678", Name: "Aceite", Stock: 6}},
	})
	uc := usecase.NewOrderUseCase(st)

	out, err := uc.Create(dto.CreateOrderRequest{CompanyID: "100", Items: items(4, "10")})
	require.NoError(t, err)
	_, err = uc.ToggleStatus(out.ID)
	require.NoError(t, err)

	snap := st.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, 10, snap.Products[0].Stock)
}

func TestToggleStatus_VolverAPendingNoRevierteStock(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Companies: &[]entity.Company{{ID: "100", Name: "Acme"}}})
	uc := usecase.NewOrderUseCase(st)

	out, err := uc.Create(dto.CreateOrderRequest{CompanyID: "100", Items: items(4, "10")})
	require.NoError(t, err)
	_, err = uc.ToggleStatus(out.ID)
	require.NoError(t, err)

	// Toggle de vuelta: el estado cambia, el stock queda igual.
	back, err := uc.ToggleStatus(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, back.Status)

	snap := st.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, 4, snap.Products[0].Stock)
}

func TestToggleStatus_PedidoInexistente(t *testing.T) {
	uc := usecase.NewOrderUseCase(newStore())
	_, err := uc.ToggleStatus("9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_SerialesConsecutivos(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Companies: &[]entity.Company{{ID: "100", Name: "Acme"}}})
	uc := usecase.NewOrderUseCase(st)

	// Pagados al contado para no disparar la compuerta de deuda en el segundo.
	first, err := uc.Create(dto.CreateOrderRequest{CompanyID: "100", Items: items(1, "5"), PaidAmount: dec("5")})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateOrderRequest{CompanyID: "100", Items: items(1, "5"), PaidAmount: dec("5")})
	require.NoError(t, err)

	assert.Equal(t, "1000", first.ID)
	assert.Equal(t, "1001", second.ID)
}
