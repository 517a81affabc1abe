package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/abroberts_test")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()
	assert.Equal(t, "abroberts", cfg.JWTIssuer)
	assert.Equal(t, int64(86400), cfg.TokenTTLSeconds)
	assert.Equal(t, "storage/uploads", cfg.UploadPath)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 900, cfg.LoginRateWindowSeconds)
	assert.Equal(t, 5, cfg.LoginRateMax)
	assert.Nil(t, cfg.CorsOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/abroberts_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CORS_ORIGINS", "https://abroberts.example, https://admin.abroberts.example ,")
	t.Setenv("LOGIN_RATE_MAX", "3")
	t.Setenv("TOKEN_TTL_SECONDS", "not-a-number")

	cfg := Load()
	assert.Equal(t, []string{"https://abroberts.example", "https://admin.abroberts.example"}, cfg.CorsOrigins)
	assert.Equal(t, 3, cfg.LoginRateMax)
	assert.Equal(t, int64(86400), cfg.TokenTTLSeconds, "bad numbers fall back to the default")
}

func TestIsProduction(t *testing.T) {
	assert.True(t, Config{Environment: "production"}.IsProduction())
	assert.True(t, Config{Environment: "Production"}.IsProduction())
	assert.False(t, Config{Environment: "development"}.IsProduction())
	assert.False(t, Config{Environment: ""}.IsProduction())
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	assert.Panics(t, func() { Load() })
}
