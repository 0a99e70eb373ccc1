// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	CatalogDriverPostgres = "postgres"
	CatalogDriverMemory   = "memory"
)

// Config holds every knob the API server reads at startup.
type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	ShutdownTimeout time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	CatalogDriver string
	Seed          bool

	CORSAllowedOrigins []string

	PaypalMaxCents  int64
	StripeMinAmount decimal.Decimal
}

// LoadDotEnv loads key/value pairs from the given files into the process
// environment without overriding variables that are already set.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// Load collects configuration from the environment with defaults.
func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		GinMode:         getenv("GIN_MODE", "debug"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		ShutdownTimeout: time.Duration(atoienv("SHUTDOWN_TIMEOUT", 10)) * time.Second,

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "postgres"),
		DBSslMode:  getenv("DB_SSLMODE", "disable"),

		CatalogDriver: strings.ToLower(getenv("CATALOG_DRIVER", CatalogDriverPostgres)),
		Seed:          boolenv("DB_SEED", true),

		CORSAllowedOrigins: listenv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),

		PaypalMaxCents:  int64(atoienv("PAYPAL_MAX_CENTS", 100000)),
		StripeMinAmount: decenv("STRIPE_MIN_AMOUNT", decimal.NewFromInt(100)),
	}
}

// DSN composes the postgres connection string.
func (c Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSslMode
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	n, err := strconv.Atoi(getenv(key, ""))
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	b, err := strconv.ParseBool(getenv(key, ""))
	if err != nil {
		return def
	}
	return b
}

func decenv(key string, def decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(getenv(key, ""))
	if err != nil {
		return def
	}
	return d
}

func listenv(key string, def []string) []string {
	raw := getenv(key, "")
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
