package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordford/internal/platform/db"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"JWT_SECRET", "HTTP_ADDR", "LOG_LEVEL", "SHUTDOWN_TIMEOUT", "COOKIE_SECURE",
		"AVATAR_BASE_URL", "CORS_ALLOWED_ORIGINS", "PAGE_CACHE_TTL",
		"DB_DRIVER", "DATABASE_URL", "RUN_MIGRATIONS", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	clearEnv(t)

	_, err := Load()

	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "http://localhost:3000/assets/images", cfg.AvatarBaseURL)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.PageCacheTTL)
	assert.Equal(t, db.DriverSQLite, cfg.DB.Driver)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("AVATAR_BASE_URL", "https://cdn.example.com/avatars")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("PAGE_CACHE_TTL", "30s")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "https://cdn.example.com/avatars", cfg.AvatarBaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.PageCacheTTL)
	assert.Equal(t, db.DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("COOKIE_SECURE", "maybe")
	t.Setenv("PAGE_CACHE_TTL", "-1s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 5*time.Minute, cfg.PageCacheTTL)
}
