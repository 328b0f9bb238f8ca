// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the server configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Sumit9819/digital-marketing-cms/internal/auth"
	"github.com/Sumit9819/digital-marketing-cms/internal/middleware"
	"github.com/Sumit9819/digital-marketing-cms/internal/store"
)

// DefaultSQLitePath is the database file used when CMS_DB_DSN is unset.
const DefaultSQLitePath = "./data/cms.db"

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
	"your-super-secret-jwt-key-change-this",
	"your-secret-key-change-in-production",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBDriver  string        `env:"CMS_DB_DRIVER" envDefault:"sqlite"`
	DBDSN     string        `env:"CMS_DB_DSN"`
	JWTSecret string        `env:"CMS_JWT_SECRET,required"`
	JWTIssuer string        `env:"CMS_JWT_ISSUER" envDefault:"digital-marketing-cms"`
	TokenTTL  time.Duration `env:"CMS_TOKEN_TTL" envDefault:"24h"`

	ServerHost     string        `env:"CMS_SERVER_HOST" envDefault:"localhost"`
	ServerPort     int           `env:"CMS_SERVER_PORT" envDefault:"8080"`
	Env            string        `env:"CMS_ENV" envDefault:"development"`
	LogLevel       string        `env:"CMS_LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"CMS_REQUEST_TIMEOUT" envDefault:"30s"`

	// Allowed browser origins for the marketing frontend and admin UI.
	CORSOrigins []string `env:"CMS_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Rate limits in requests per second per client IP.
	RateLimit        float64 `env:"CMS_RATE_LIMIT" envDefault:"20"`
	LoginRateLimit   float64 `env:"CMS_LOGIN_RATE_LIMIT" envDefault:"0.2"`
	ContactRateLimit float64 `env:"CMS_CONTACT_RATE_LIMIT" envDefault:"0.05"`

	// Account lockout after repeated failed logins.
	LoginMaxAttempts int           `env:"CMS_LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	LoginLockout     time.Duration `env:"CMS_LOGIN_LOCKOUT" envDefault:"15m"`

	// Seeding configuration
	DoSeed        bool   `env:"CMS_DO_SEED" envDefault:"false"`
	DemoMode      bool   `env:"CMS_DEMO_MODE" envDefault:"false"`
	AdminEmail    string `env:"CMS_ADMIN_EMAIL"`
	AdminPassword string `env:"CMS_ADMIN_PASSWORD"`
	AdminName     string `env:"CMS_ADMIN_NAME"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Dialect returns the configured database dialect.
func (c Config) Dialect() (store.Dialect, error) {
	return store.ParseDialect(c.DBDriver)
}

// TokenConfig returns the signing configuration for bearer tokens.
func (c Config) TokenConfig() auth.TokenConfig {
	return auth.TokenConfig{
		Secret: []byte(c.JWTSecret),
		TTL:    c.TokenTTL,
		Issuer: c.JWTIssuer,
	}
}

// SeedConfig returns the bootstrap administrator settings.
func (c Config) SeedConfig() store.SeedConfig {
	return store.SeedConfig{
		AdminEmail:    c.AdminEmail,
		AdminPassword: c.AdminPassword,
		AdminName:     c.AdminName,
	}
}

// LoginProtectionConfig returns the account lockout settings.
func (c Config) LoginProtectionConfig() middleware.LoginProtectionConfig {
	return middleware.LoginProtectionConfig{
		MaxFailedAttempts: c.LoginMaxAttempts,
		LockoutDuration:   c.LoginLockout,
		AttemptWindow:     c.LoginLockout,
	}
}

// SlogLevel maps LogLevel to a slog level. Unknown values select info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MinJWTSecretLength is the minimum required length for the token signing secret.
// HS256 keys shorter than the hash output weaken the MAC.
const MinJWTSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("CMS_JWT_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinJWTSecretLength, len(cfg.JWTSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.JWTSecret == weak {
			return nil, fmt.Errorf("CMS_JWT_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.JWTSecret) {
		slog.Warn("CMS_JWT_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	dialect, err := cfg.Dialect()
	if err != nil {
		return nil, fmt.Errorf("CMS_DB_DRIVER: %w", err)
	}
	if cfg.DBDSN == "" {
		if dialect == store.DialectPostgres {
			return nil, fmt.Errorf("CMS_DB_DSN is required when CMS_DB_DRIVER is %s", cfg.DBDriver)
		}
		cfg.DBDSN = DefaultSQLitePath
	}

	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("CMS_TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("CMS_REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	if cfg.LoginMaxAttempts <= 0 {
		return nil, fmt.Errorf("CMS_LOGIN_MAX_ATTEMPTS must be positive, got %d", cfg.LoginMaxAttempts)
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
