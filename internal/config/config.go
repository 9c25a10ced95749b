// Package config holds the runtime settings of creditd.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StoreGORM = "gorm"
	StorePGX  = "pgx"

	defaultDatabaseURL    = "sqlite:///tmp/creditledger.db"
	defaultGRPCListenAddr = ":7000"
	defaultAllowedOrigin  = "http://localhost:8000"
	defaultSessionIssuer  = "tauth"
	defaultSessionCookie  = "app_session"
	defaultRequestTimeout = 3 * time.Second
	defaultCacheTTL       = 30 * time.Second
	defaultAMQPExchange   = "credit.events"
	defaultReconcileBatch = 100
	defaultLogLevel       = "info"
)

// Config aggregates runtime settings for creditd.
type Config struct {
	DatabaseURL        string
	StoreBackend       string
	GRPCListenAddr     string
	HTTPListenAddr     string
	AllowedOrigins     []string
	SessionSigningKey  string
	SessionIssuer      string
	SessionCookieName  string
	RequestTimeout     time.Duration
	RedisAddr          string
	CacheTTL           time.Duration
	AMQPURL            string
	AMQPExchange       string
	ReconcileInterval  time.Duration
	ReconcileBatchSize int
	LogLevel           string
}

// Validate applies defaults and rejects inconsistent settings.
func (cfg *Config) Validate() error {
	cfg.DatabaseURL = defaultIfEmpty(cfg.DatabaseURL, defaultDatabaseURL)
	cfg.StoreBackend = strings.ToLower(defaultIfEmpty(cfg.StoreBackend, StoreGORM))
	cfg.GRPCListenAddr = defaultIfEmpty(cfg.GRPCListenAddr, defaultGRPCListenAddr)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{defaultAllowedOrigin}
	}
	cfg.SessionIssuer = defaultIfEmpty(cfg.SessionIssuer, defaultSessionIssuer)
	cfg.SessionCookieName = defaultIfEmpty(cfg.SessionCookieName, defaultSessionCookie)
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	cfg.AMQPExchange = defaultIfEmpty(cfg.AMQPExchange, defaultAMQPExchange)
	if cfg.ReconcileBatchSize <= 0 {
		cfg.ReconcileBatchSize = defaultReconcileBatch
	}
	cfg.LogLevel = defaultIfEmpty(cfg.LogLevel, defaultLogLevel)

	if cfg.StoreBackend != StoreGORM && cfg.StoreBackend != StorePGX {
		return fmt.Errorf("store backend must be %q or %q, got %q", StoreGORM, StorePGX, cfg.StoreBackend)
	}
	driver, _, err := ResolveDriver(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if driver != DriverPostgres && cfg.StoreBackend == StorePGX {
		return fmt.Errorf("pgx store requires a postgres database url")
	}
	if driver != DriverPostgres && cfg.ReconcileInterval > 0 {
		return fmt.Errorf("scheduled reconciliation requires a postgres database url")
	}
	if strings.TrimSpace(cfg.HTTPListenAddr) != "" && len(cfg.SessionSigningKey) == 0 {
		return fmt.Errorf("jwt signing key is required when the http api is enabled")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// HTTPEnabled reports whether the HTTP API should be served.
func (cfg Config) HTTPEnabled() bool {
	return strings.TrimSpace(cfg.HTTPListenAddr) != ""
}

// ResolveDriver maps a database url onto a driver name and, for SQLite, a file path.
func ResolveDriver(dsn string) (string, string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres, "", nil
	}
	if strings.HasPrefix(dsn, "sqlite://") {
		parsed, err := url.Parse(dsn)
		if err != nil {
			return "", "", fmt.Errorf("parse sqlite url: %w", err)
		}
		path := parsed.Path
		if path == "" {
			path = parsed.Host
		}
		if path == "" || path == "/" {
			path = "creditledger.db"
		}
		sqlitePath, err := normalizeSQLitePath(path)
		return DriverSQLite, sqlitePath, err
	}
	sqlitePath, err := normalizeSQLitePath(dsn)
	return DriverSQLite, sqlitePath, err
}

func normalizeSQLitePath(path string) (string, error) {
	if path == ":memory:" {
		return path, nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(".", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, nil
}

func defaultIfEmpty(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

// ParseAllowedOrigins splits comma-delimited origins into a slice.
func ParseAllowedOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}
