// Package config loads service settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"daisy/internal/crypto"
)

type Config struct {
	Port        string
	DatabaseURL string // empty runs on the in-memory store
	Environment string
	LogLevel    string

	// EncryptionKey is the decoded PETAL_ENCRYPTION_KEY, nil when unset.
	EncryptionKey []byte

	AllowedOrigins []string
	RateLimitRPS   float64 // 0 disables rate limiting
	RateLimitBurst int

	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// X-Real-IP. Only enable it behind a reverse proxy that sets them.
	TrustProxyHeaders bool
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: could not load .env: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		// The web client shares its .env with the API and names the port VITE_BACKEND_PORT.
		Port:           get("PORT", get("VITE_BACKEND_PORT", "8080")),
		DatabaseURL:    get("DATABASE_URL", ""),
		Environment:    get("ENV", "development"),
		LogLevel:       get("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(get("RATE_LIMIT_RPS", "10"), 64); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(get("RATE_LIMIT_BURST", "20")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}

	if cfg.TrustProxyHeaders, err = strconv.ParseBool(get("TRUST_PROXY_HEADERS", "false")); err != nil {
		return nil, fmt.Errorf("TRUST_PROXY_HEADERS: %w", err)
	}

	if raw := get("PETAL_ENCRYPTION_KEY", ""); raw != "" {
		if cfg.EncryptionKey, err = crypto.ParseKey(raw); err != nil {
			return nil, fmt.Errorf("PETAL_ENCRYPTION_KEY: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	switch c.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENV must be development or production, got %q", c.Environment)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is on")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
