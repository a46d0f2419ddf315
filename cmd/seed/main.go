// seed publica un documento de demostración en el almacén compartido:
// el admin por defecto, dos proveedores y un par de productos de góndola.
// Pensado para levantar un entorno de desarrollo con datos a la vista.
//
// Uso: go run ./cmd/seed
// Respeta las mismas variables de entorno que el servidor (STORE_DRIVER, etc.).
// Si el documento ya existe no lo toca, salvo que se pase --force.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	inframongo "github.com/tu-usuario/supermercado-pro/internal/infrastructure/mongo"
	infrapg "github.com/tu-usuario/supermercado-pro/internal/infrastructure/postgres"
	infraredis "github.com/tu-usuario/supermercado-pro/internal/infrastructure/redis"
	"github.com/tu-usuario/supermercado-pro/pkg/config"
	"github.com/tu-usuario/supermercado-pro/pkg/logger"
)

func main() {
	force := flag.Bool("force", false, "sobrescribe el documento existente")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	remote, err := newDocumentStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conectar al almacén: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = remote.Close(context.Background()) }()

	existing, err := remote.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "leer documento: %v\n", err)
		os.Exit(1)
	}
	if existing != nil && !*force {
		fmt.Println("el documento ya existe; use --force para sobrescribirlo")
		return
	}

	doc := demoDocument(entity.GlobalSettings{
		AppName:      cfg.App.Name,
		ProfitMargin: cfg.App.ProfitMargin,
	})
	if err := remote.Save(ctx, doc); err != nil {
		fmt.Fprintf(os.Stderr, "publicar documento: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("documento publicado en %s (%s): %d usuarios, %d proveedores, %d productos\n",
		cfg.Store.DocumentKey, cfg.Store.Driver, len(doc.Users), len(doc.Companies), len(doc.Products))
}

// demoDocument parte del documento de arranque y agrega los datos de muestra.
func demoDocument(settings entity.GlobalSettings) *entity.Document {
	doc := state.DefaultDocument(settings)
	doc.Companies = []entity.Company{
		{ID: "100", Name: "Distribuidora Central", Code: entity.CompanyCode("100"), Debt: decimal.Zero},
		{ID: "101", Name: "Lácteos del Sur", Code: entity.CompanyCode("101"), Debt: decimal.Zero},
	}
	doc.Products = []entity.Product{
		{
			ID:           "p-1",
			Barcode:      "7791234567890",
			Name:         "Leche Entera 1L",
			CompanyID:    "101",
			CostPrice:    decimal.NewFromInt(2000),
			SellingPrice: decimal.NewFromInt(2300),
			Stock:        24,
		},
		{
			ID:           "p-2",
			Barcode:      "7799876543210",
			Name:         "Arroz Largo Fino 1Kg",
			CompanyID:    "100",
			CostPrice:    decimal.NewFromInt(1500),
			SellingPrice: decimal.NewFromInt(1725),
			Stock:        40,
		},
	}
	return doc
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
		return nil, fmt.Errorf("driver de almacén desconocido: %q", cfg.Store.Driver)
	}
}
