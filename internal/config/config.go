// File: internal/config/config.go
package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"SERVER_TIMEOUT_SECONDS"`

	// Database Configuration
	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            string        `mapstructure:"DB_PORT"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBSSLMode         string        `mapstructure:"DB_SSL_MODE"`
	DBTimezone        string        `mapstructure:"DB_TIMEZONE"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME_MINUTES"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Commerce Gateway Configuration (upstream legacy API)
	GatewayBaseURL string        `mapstructure:"GATEWAY_BASE_URL"`
	GatewayTimeout time.Duration `mapstructure:"GATEWAY_TIMEOUT_SECONDS"`

	// Auth Configuration
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	TokenLifetime time.Duration `mapstructure:"TOKEN_LIFETIME_HOURS"`

	// Session Store Configuration
	SessionSealKey          string        `mapstructure:"SESSION_SEAL_KEY"` // base64, must decode to 32 bytes
	SessionLifetime         time.Duration `mapstructure:"SESSION_LIFETIME_HOURS"`
	SessionPurgeJobSchedule string        `mapstructure:"SESSION_PURGE_JOB_SCHEDULE"`
}

// SealKeyBytes decodes the configured session seal key.
func (c *Config) SealKeyBytes() ([32]byte, error) {
	var key [32]byte
	raw, err := base64.StdEncoding.DecodeString(c.SessionSealKey)
	if err != nil {
		return key, fmt.Errorf("SESSION_SEAL_KEY is not valid base64: %w", err)
	}
	if len(raw) != 32 {
		return key, fmt.Errorf("SESSION_SEAL_KEY must decode to 32 bytes, got %d", len(raw))
	}
	copy(key[:], raw)
	return key, nil
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "huglu_mobile_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 60)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("GATEWAY_BASE_URL", "http://localhost:9090")
	v.SetDefault("GATEWAY_TIMEOUT_SECONDS", 10)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_LIFETIME_HOURS", 24)

	v.SetDefault("SESSION_SEAL_KEY", "")
	v.SetDefault("SESSION_LIFETIME_HOURS", 720)
	v.SetDefault("SESSION_PURGE_JOB_SCHEDULE", "@hourly")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.DBConnMaxLifetime = time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_MINUTES")) * time.Minute
	cfg.GatewayTimeout = time.Duration(v.GetInt("GATEWAY_TIMEOUT_SECONDS")) * time.Second
	cfg.TokenLifetime = time.Duration(v.GetInt("TOKEN_LIFETIME_HOURS")) * time.Hour
	cfg.SessionLifetime = time.Duration(v.GetInt("SESSION_LIFETIME_HOURS")) * time.Hour

	// Basic validation for critical configs
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("FATAL: JWT_SECRET is not set. Tokens cannot be signed without it")
	}
	if strings.TrimSpace(cfg.GatewayBaseURL) == "" {
		return nil, fmt.Errorf("FATAL: GATEWAY_BASE_URL is not set. The commerce gateway address is required")
	}
	if _, err := cfg.SealKeyBytes(); err != nil {
		return nil, fmt.Errorf("FATAL: %w", err)
	}

	return &cfg, nil
}
