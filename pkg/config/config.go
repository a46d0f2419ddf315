package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Store   StoreConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env          string // development, staging, production
	Name         string // nombre visible de la tienda (valor inicial del documento)
	ProfitMargin int    // margen de ganancia por defecto en % (valor inicial del documento)
}

// Drivers soportados para el almacén de documento compartido.
const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMongo    = "mongo"
)

// StoreConfig configuración del almacén remoto del documento compartido.
// El documento completo vive bajo una sola clave lógica (DocumentKey);
// el driver decide cómo se materializa (fila JSONB, clave Redis, _id Mongo).
type StoreConfig struct {
	Driver      string // postgres | redis | mongo
	DocumentKey string // ruta lógica del documento, ej. "supermarket/state"

	Postgres PostgresConfig
	RedisURL string
	MongoURI string
	MongoDB  string
}

// PostgresConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c PostgresConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c PostgresConfig) DSN() string {
	userInfo := url.UserPassword(c.User, c.Password)

	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}

	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig configuración de la persistencia local de sesión.
// TokenPath es un archivo local de corta vida: sobrevive reinicios del
// proceso pero nunca viaja al documento compartido.
type SessionConfig struct {
	TokenPath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_DRIVER, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:          getString(v, "APP_ENV", "development"),
			Name:         getString(v, "APP_NAME", "Supermercado Pro"),
			ProfitMargin: getInt(v, "APP_PROFIT_MARGIN", 15),
		},
		Store: StoreConfig{
			Driver:      getString(v, "STORE_DRIVER", DriverRedis),
			DocumentKey: getString(v, "STORE_DOCUMENT_KEY", "supermarket/state"),
			Postgres: PostgresConfig{
				DatabaseURL: getString(v, "DATABASE_URL", ""),
				Host:        getString(v, "DB_HOST", "localhost"),
				Port:        getInt(v, "DB_PORT", 5432),
				User:        getString(v, "DB_USER", "postgres"),
				Password:    getString(v, "DB_PASSWORD", ""),
				DBName:      getString(v, "DB_NAME", "supermercado_pro"),
				SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			},
			RedisURL: getString(v, "REDIS_URL", "redis://localhost:6379/0"),
			MongoURI: getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			MongoDB:  getString(v, "MONGO_DB", "supermercado_pro"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "supermercado-pro"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Session: SessionConfig{
			TokenPath: getString(v, "SESSION_TOKEN_PATH", ".session.json"),
		},
	}

	if cfg.Store.Driver != DriverPostgres && cfg.Store.Driver != DriverRedis && cfg.Store.Driver != DriverMongo {
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
