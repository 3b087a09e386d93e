package config

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Nil(t, cfg.EncryptionKey)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, float64(10), cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.False(t, cfg.TrustProxyHeaders)
}

func TestFromEnv_PortFallsBackToViteVariable(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{"VITE_BACKEND_PORT": "3001"}))
	require.NoError(t, err)
	assert.Equal(t, "3001", cfg.Port)

	cfg, err = FromEnv(envOf(map[string]string{"VITE_BACKEND_PORT": "3001", "PORT": "9000"}))
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
}

func TestFromEnv_AllSettings(t *testing.T) {
	key := bytes.Repeat([]byte{5}, 32)
	cfg, err := FromEnv(envOf(map[string]string{
		"PORT":                 "9090",
		"DATABASE_URL":         "postgres://localhost/daisy",
		"ENV":                  "production",
		"LOG_LEVEL":            "warn",
		"PETAL_ENCRYPTION_KEY": base64.StdEncoding.EncodeToString(key),
		"CORS_ALLOWED_ORIGINS": "http://localhost:5173, https://daisy.example ,",
		"RATE_LIMIT_RPS":       "0",
		"TRUST_PROXY_HEADERS":  "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/daisy", cfg.DatabaseURL)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, key, cfg.EncryptionKey)
	assert.Equal(t, []string{"http://localhost:5173", "https://daisy.example"}, cfg.AllowedOrigins)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.True(t, cfg.TrustProxyHeaders)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"port not a number":    {"PORT": "http"},
		"port out of range":    {"PORT": "70000"},
		"unknown env":          {"ENV": "staging"},
		"unknown log level":    {"LOG_LEVEL": "verbose"},
		"bad rps":              {"RATE_LIMIT_RPS": "fast"},
		"negative rps":         {"RATE_LIMIT_RPS": "-1"},
		"zero burst":           {"RATE_LIMIT_BURST": "0"},
		"short key":            {"PETAL_ENCRYPTION_KEY": base64.StdEncoding.EncodeToString([]byte("short"))},
		"key not base64":       {"PETAL_ENCRYPTION_KEY": "%%%"},
		"burst not a number":   {"RATE_LIMIT_BURST": "many"},
		"trust proxy not bool": {"TRUST_PROXY_HEADERS": "sometimes"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envOf(env))
			assert.Error(t, err)
		})
	}
}
