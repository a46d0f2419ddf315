package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tu-usuario/supermercado-pro/internal/application/analytics"
	"github.com/tu-usuario/supermercado-pro/internal/application/session"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/application/usecase"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store       *state.Store
	Sessions    *session.Manager
	ProductUC   *usecase.ProductUseCase
	CompanyUC   *usecase.CompanyUseCase
	OrderUC     *usecase.OrderUseCase
	UserUC      *usecase.UserUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *appanalytics.DashboardUseCase
	Exporter    InventoryExporter
	Labels      LabelGenerator
	JWTSecret   string
	JWTIssuer   string
	JWTExpMins  int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público): expone si la carga inicial del documento sigue en curso.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "loading": deps.Store.Loading()})
	})

	api := app.Group("/api")

	// Auth: login público, logout y me con token.
	authHandler := NewAuthHandler(deps.Sessions, deps.JWTSecret, deps.JWTIssuer, deps.JWTExpMins)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario
	products := protected.Group("/products", RequirePermission(deps.Store, entity.PermInventory))
	productHandler := NewProductHandler(deps.ProductUC, deps.Exporter)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/export", productHandler.Export)
	products.Get("/barcode/:code", productHandler.GetByBarcode)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Proveedores (administración)
	companies := protected.Group("/companies", RequirePermission(deps.Store, entity.PermAdminSettings))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Delete("/:id", companyHandler.Delete)

	// Pedidos a proveedor
	orders := protected.Group("/orders", RequirePermission(deps.Store, entity.PermOrderRequests))
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Post("/:id/toggle", orderHandler.ToggleStatus)

	// Usuarios (solo ADMIN)
	users := protected.Group("/users", RequireAdmin(deps.Store))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Post("/:id/permissions/toggle", userHandler.TogglePermission)
	users.Delete("/:id", userHandler.Delete)

	// Configuración global (administración)
	settings := protected.Group("/settings", RequirePermission(deps.Store, entity.PermAdminSettings))
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)

	// Dashboard
	dashboard := protected.Group("/dashboard", RequirePermission(deps.Store, entity.PermDashboard))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Etiquetas de código de barras
	labels := protected.Group("/labels", RequirePermission(deps.Store, entity.PermBarcodePrint))
	labelHandler := NewLabelHandler(deps.Store, deps.Labels)
	labels.Post("/pdf", labelHandler.GenerateSheet)
}
