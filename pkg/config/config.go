package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Database driver names accepted in DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultSQLitePath is the database file used when DATABASE_URL is left at its default.
const DefaultSQLitePath = "data/shopping-list.db"

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseDriver string `conf:"default:sqlite,enum:sqlite|postgres,env:DATABASE_DRIVER"`
	// DatabaseURL is a file path for sqlite or a postgres:// URL for postgres.
	DatabaseURL string `conf:"default:data/shopping-list.db,env:DATABASE_URL,noprint"`
	AutoMigrate bool   `conf:"default:true,env:AUTO_MIGRATE"`

	// HTTP
	HTTPAddr string `conf:"default::3001,env:HTTP_ADDR"`

	// Redis: leave empty to disable the list read cache
	RedisURL     string        `conf:"env:REDIS_URL"`
	ListCacheTTL time.Duration `conf:"default:1m,env:LIST_CACHE_TTL"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// CORS: comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:shopping-list-api,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// UsesPostgres reports whether the configured store is PostgreSQL.
func (c *Config) UsesPostgres() bool {
	return c.DatabaseDriver == DriverPostgres
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return strings.TrimSpace(c.RedisURL) != ""
}

// ValidateForProduction enforces deployment requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if strings.TrimSpace(cfg.CORSAllowedOrigins) == "*" {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production")
	}

	if cfg.DatabaseDriver == DriverSQLite && cfg.DatabaseURL == DefaultSQLitePath {
		errs = append(errs, fmt.Sprintf(
			"DATABASE_URL must be set explicitly in production (refusing default %q)",
			DefaultSQLitePath,
		))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
