// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains example secrets that must never be used.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the admin panel configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"MERWAH_DB_PATH" envDefault:"./data/merwah.db"`
	SessionSecret string `env:"MERWAH_SESSION_SECRET,required"`
	ServerHost    string `env:"MERWAH_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"MERWAH_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"MERWAH_ENV" envDefault:"development"`
	LogLevel      string `env:"MERWAH_LOG_LEVEL" envDefault:"info"`

	// Content gateway
	GatewayURL      string        `env:"MERWAH_GATEWAY_URL" envDefault:"http://localhost:3000"`
	GatewayTimeout  time.Duration `env:"MERWAH_GATEWAY_TIMEOUT" envDefault:"15s"`
	GatewayCacheTTL time.Duration `env:"MERWAH_GATEWAY_CACHE_TTL" envDefault:"0s"` // 0 disables list caching

	// Cache configuration
	RedisURL    string `env:"MERWAH_REDIS_URL"` // Optional Redis URL for the gateway cache
	CachePrefix string `env:"MERWAH_CACHE_PREFIX" envDefault:"merwah:"`

	MaxUploadMB           int           `env:"MERWAH_MAX_UPLOAD_MB" envDefault:"20"`
	DraftTTL              time.Duration `env:"MERWAH_DRAFT_TTL" envDefault:"2h"`
	ActivityRetentionDays int           `env:"MERWAH_ACTIVITY_RETENTION_DAYS" envDefault:"30"`
	Seed                  bool          `env:"MERWAH_SEED" envDefault:"true"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// UseGatewayCache reports whether falcon lists should be cached.
func (c Config) UseGatewayCache() bool {
	return c.GatewayCacheTTL > 0
}

// MaxUploadBytes returns the upload limit in bytes.
func (c Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// ActivityRetention returns how long activity entries are kept.
func (c Config) ActivityRetention() time.Duration {
	return time.Duration(c.ActivityRetentionDays) * 24 * time.Hour
}

// MinSessionSecretLength is the minimum required length for the session secret.
// AES-256 requires 32 bytes minimum for secure encryption.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("MERWAH_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("MERWAH_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("MERWAH_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("MERWAH_MAX_UPLOAD_MB must be positive, got %d", cfg.MaxUploadMB)
	}
	if cfg.GatewayCacheTTL < 0 {
		return nil, fmt.Errorf("MERWAH_GATEWAY_CACHE_TTL must not be negative")
	}

	return cfg, nil
}

// GatewayConfig configures the development falcon API server.
type GatewayConfig struct {
	Host        string `env:"FALCONAPI_HOST" envDefault:"localhost"`
	Port        int    `env:"FALCONAPI_PORT" envDefault:"3000"`
	UploadsDir  string `env:"FALCONAPI_UPLOADS_DIR" envDefault:"./uploads"`
	PublicURL   string `env:"FALCONAPI_PUBLIC_URL" envDefault:"http://localhost:3000"`
	MaxUploadMB int    `env:"FALCONAPI_MAX_UPLOAD_MB" envDefault:"20"`
	LogLevel    string `env:"FALCONAPI_LOG_LEVEL" envDefault:"info"`
}

// Addr returns the listen address in host:port format.
func (c GatewayConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MaxUploadBytes returns the upload limit in bytes.
func (c GatewayConfig) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// LoadGateway parses the falcon API server configuration.
func LoadGateway() (*GatewayConfig, error) {
	cfg := &GatewayConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing gateway config: %w", err)
	}
	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("FALCONAPI_MAX_UPLOAD_MB must be positive, got %d", cfg.MaxUploadMB)
	}
	return cfg, nil
}

// ParseLogLevel maps a level name to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
