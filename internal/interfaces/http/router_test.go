package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/tu-usuario/supermercado-pro/internal/application/analytics"
	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/session"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/application/usecase"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	apphttp "github.com/tu-usuario/supermercado-pro/internal/interfaces/http"
	"github.com/tu-usuario/supermercado-pro/pkg/logger"
)

// dec parsea un literal decimal; panics en fixtures mal escritos.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// fakeTokenStore guarda la sesión en memoria.
type fakeTokenStore struct{ u *entity.User }

func (f *fakeTokenStore) Save(u *entity.User) error   { f.u = u; return nil }
func (f *fakeTokenStore) Load() (*entity.User, error) { return f.u, nil }
func (f *fakeTokenStore) Clear() error                { f.u = nil; return nil }

// stubExporter y stubLabels devuelven bytes fijos: aquí se prueba la
// frontera HTTP, no la generación de archivos.
type stubExporter struct{}

func (stubExporter) Export([]dto.ProductResponse) ([]byte, error) { return []byte("xlsx"), nil }

type stubLabels struct{}

func (stubLabels) GenerateLabelSheet([]*entity.Product, int) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// newTestAPI levanta la aplicación completa sobre un Store sembrado con el
// documento de arranque (admin/admin).
func newTestAPI() (*fiber.App, *state.Store) {
	log := logger.Nop()
	store := state.New(nullDocStore{}, entity.GlobalSettings{AppName: "Supermercado Pro", ProfitMargin: 15}, log)
	boot := state.DefaultDocument(entity.GlobalSettings{AppName: "Supermercado Pro", ProfitMargin: 15})
	store.Update(state.Patch{
		Users:     &boot.Users,
		Companies: &boot.Companies,
		Products:  &boot.Products,
		Sales:     &boot.Sales,
		Orders:    &boot.Orders,
		Settings:  &boot.Settings,
	})

	sessions := session.New(store, &fakeTokenStore{}, log)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:       store,
		Sessions:    sessions,
		ProductUC:   usecase.NewProductUseCase(store),
		CompanyUC:   usecase.NewCompanyUseCase(store),
		OrderUC:     usecase.NewOrderUseCase(store),
		UserUC:      usecase.NewUserUseCase(store),
		SettingsUC:  usecase.NewSettingsUseCase(store),
		DashboardUC: appanalytics.NewDashboardUseCase(store),
		Exporter:    stubExporter{},
		Labels:      stubLabels{},
		JWTSecret:   testJWTSecret,
		JWTIssuer:   testIssuer,
		JWTExpMins:  testExpMin,
	})
	return app, store
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getWithToken(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login abre sesión con las credenciales y devuelve el token.
func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := postJSON(t, app, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: password})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	decodeJSON(t, resp.Body, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestLogin_CredencialesPorDefecto(t *testing.T) {
	app, _ := newTestAPI()

	token := login(t, app, "admin", "admin")

	resp := getWithToken(t, app, "/api/auth/me", token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me dto.UserResponse
	decodeJSON(t, resp.Body, &me)
	assert.Equal(t, "admin", me.Username)
	assert.Equal(t, entity.RoleAdmin, me.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app, _ := newTestAPI()

	resp := postJSON(t, app, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "nope"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Flujo completo: alta de proveedor, pedido con compuerta de deuda y
// recepción que repone inventario.
func TestFlujoPedidoCompleto(t *testing.T) {
	app, _ := newTestAPI()
	token := login(t, app, "admin", "admin")

	// Proveedor nuevo
	resp := postJSON(t, app, "/api/companies", token, dto.CreateCompanyRequest{Name: "Lácteos del Sur"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var company dto.CompanyResponse
	decodeJSON(t, resp.Body, &company)
	resp.Body.Close()
	assert.Equal(t, "100", company.ID)
	assert.Equal(t, "COMP-100", company.Code)

	// Primer pedido, pagado parcialmente: deja deuda 500-480=20
	item := dto.OrderItemRequest{Name: "Leche", Barcode: "779111", CostPrice: dec("100"), Quantity: 5}
	resp = postJSON(t, app, "/api/orders", token, dto.CreateOrderRequest{
		CompanyID: company.ID, Items: []dto.OrderItemRequest{item}, PaidAmount: dec("480"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order dto.OrderResponse
	decodeJSON(t, resp.Body, &order)
	resp.Body.Close()
	assert.Equal(t, "1000", order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	// Segundo pedido sin confirmar: la deuda pendiente lo bloquea con 409.
	resp = postJSON(t, app, "/api/orders", token, dto.CreateOrderRequest{
		CompanyID: company.ID, Items: []dto.OrderItemRequest{item},
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var warn dto.DebtWarningResponse
	decodeJSON(t, resp.Body, &warn)
	resp.Body.Close()
	assert.Equal(t, "DEBT_CONFIRMATION_REQUIRED", warn.Code)
	assert.True(t, warn.Debt.Equal(dec("20")), "deuda esperada 20, fue %s", warn.Debt)

	// Recepción del primer pedido: el inventario sintetiza el producto.
	resp = postJSON(t, app, "/api/orders/"+order.ID+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = getWithToken(t, app, "/api/products/barcode/779111", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var prod dto.ProductResponse
	decodeJSON(t, resp.Body, &prod)
	resp.Body.Close()
	assert.Equal(t, 5, prod.Stock)
	assert.Equal(t, "Lácteos del Sur", prod.CompanyName)
}

func TestProducts_ExportYEtiquetas(t *testing.T) {
	app, store := newTestAPI()
	token := login(t, app, "admin", "admin")

	products := []entity.Product{{
		ID: "p-1", Barcode: "779111", Name: "Leche",
		CostPrice: dec("100"), SellingPrice: dec("115"), Stock: 3,
	}}
	store.Update(state.Patch{Products: &products})

	resp := getWithToken(t, app, "/api/products/export", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "inventario.xlsx")
	resp.Body.Close()

	resp = postJSON(t, app, "/api/labels/pdf", token, dto.LabelSheetRequest{ProductIDs: []string{"p-1"}, Copies: 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	resp.Body.Close()

	// Ningún id resuelve → 404.
	resp = postJSON(t, app, "/api/labels/pdf", token, dto.LabelSheetRequest{ProductIDs: []string{"no-existe"}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUsers_SoloAdmin(t *testing.T) {
	app, _ := newTestAPI()
	adminToken := login(t, app, "admin", "admin")

	// El admin crea un STAFF sin password: recibe el por defecto "1234".
	resp := postJSON(t, app, "/api/users", adminToken, dto.CreateUserRequest{
		Username:    "cajero",
		Permissions: []entity.Permission{entity.PermDashboard},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var staff dto.UserResponse
	decodeJSON(t, resp.Body, &staff)
	resp.Body.Close()

	// El STAFF entra con el password por defecto pero no puede tocar usuarios.
	staffToken := login(t, app, "cajero", "1234")
	resp = getWithToken(t, app, "/api/users", staffToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Toggle de permiso: se lo agrega y el acceso al dashboard sigue el documento.
	resp = postJSON(t, app, "/api/users/"+staff.ID+"/permissions/toggle", adminToken,
		dto.TogglePermissionRequest{Permission: entity.PermDashboard})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// La etiqueta estaba presente, el toggle la quitó: dashboard bloqueado.
	resp = getWithToken(t, app, "/api/dashboard/summary", staffToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestHealth_ExponeLoading(t *testing.T) {
	app, _ := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeJSON(t, resp.Body, &body)
	assert.Equal(t, "ok", body["status"])
	// Sin Run la carga inicial sigue pendiente y el flag lo dice.
	assert.Equal(t, true, body["loading"])
}
