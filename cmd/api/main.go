package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/tu-usuario/supermercado-pro/internal/application/analytics"
	"github.com/tu-usuario/supermercado-pro/internal/application/session"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/application/usecase"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	infraexcel "github.com/tu-usuario/supermercado-pro/internal/infrastructure/excel"
	inframongo "github.com/tu-usuario/supermercado-pro/internal/infrastructure/mongo"
	infrapdf "github.com/tu-usuario/supermercado-pro/internal/infrastructure/pdf"
	infrapg "github.com/tu-usuario/supermercado-pro/internal/infrastructure/postgres"
	infraredis "github.com/tu-usuario/supermercado-pro/internal/infrastructure/redis"
	infrasession "github.com/tu-usuario/supermercado-pro/internal/infrastructure/session"
	httpRouter "github.com/tu-usuario/supermercado-pro/internal/interfaces/http"
	"github.com/tu-usuario/supermercado-pro/pkg/config"
	"github.com/tu-usuario/supermercado-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	remote, err := newDocumentStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén del documento")
	}
	defer func() { _ = remote.Close(context.Background()) }()

	defaults := entity.GlobalSettings{
		AppName:      cfg.App.Name,
		ProfitMargin: cfg.App.ProfitMargin,
	}
	store := state.New(remote, defaults, log)

	// Sincronización en segundo plano: carga inicial + suscripción remota.
	go func() {
		if err := store.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("sincronización del documento interrumpida")
		}
	}()

	sessions := session.New(store, infrasession.NewFileStore(cfg.Session.TokenPath), log)
	// Restaura la sesión persistida antes de servir la primera petición.
	sessions.Restore()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:       store,
		Sessions:    sessions,
		ProductUC:   usecase.NewProductUseCase(store),
		CompanyUC:   usecase.NewCompanyUseCase(store),
		OrderUC:     usecase.NewOrderUseCase(store),
		UserUC:      usecase.NewUserUseCase(store),
		SettingsUC:  usecase.NewSettingsUseCase(store),
		DashboardUC: appanalytics.NewDashboardUseCase(store),
		Exporter:    infraexcel.NewInventoryExporter(),
		Labels:      infrapdf.NewLabelGenerator(),
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		JWTExpMins:  cfg.JWT.Expiration,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newDocumentStore materializa el almacén del documento según el driver.
func newDocumentStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (state.DocumentStore, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := infrapg.NewPool(ctx, cfg.Store.Postgres)
		if err != nil {
			return nil, err
		}
		return infrapg.NewDocStore(ctx, pool, cfg.Store.DocumentKey, log)
	case config.DriverRedis:
		rdb, err := infraredis.NewClient(ctx, cfg.Store.RedisURL)
		if err != nil {
			return nil, err
		}
		return infraredis.NewDocStore(rdb, cfg.Store.DocumentKey, log), nil
	case config.DriverMongo:
		client, err := inframongo.NewClient(ctx, cfg.Store.MongoURI)
		if err != nil {
			return nil, err
		}
		return inframongo.NewDocStore(client, cfg.Store.MongoDB, cfg.Store.DocumentKey, log), nil
	default:
		// config.Load ya validó el driver; esto no debería alcanzarse.
		panic("driver de almacén desconocido: " + cfg.Store.Driver)
	}
}
