// Package config loads process configuration from environment variables.
package config

import (
	"errors"
	"os"
	"time"

	"wordford/internal/platform/db"
	"wordford/internal/platform/redis"
)

// ErrMissingJWTSecret is returned by Load when JWT_SECRET is unset or empty.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config contains all runtime configuration.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	ShutdownTimeout time.Duration

	// JWTSecret signs and verifies session tokens.
	JWTSecret string

	// CookieSecure sets the Secure attribute on the auth cookie.
	CookieSecure bool

	// AvatarBaseURL prefixes the stock avatar file names.
	AvatarBaseURL string

	// CORSAllowedOrigins enables the CORS middleware when non-empty.
	CORSAllowedOrigins []string

	// PageCacheTTL bounds how long rendered page content stays in Redis.
	PageCacheTTL time.Duration

	DB    db.Config
	Redis redis.Config
}

// Load reads Config from the environment. A missing JWT_SECRET is a fatal
// configuration fault; every other setting has a default.
func Load() (Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	return Config{
		HTTPAddr:           envString("HTTP_ADDR", ":3000"),
		LogLevel:           envString("LOG_LEVEL", "info"),
		ShutdownTimeout:    envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		JWTSecret:          secret,
		CookieSecure:       envBool("COOKIE_SECURE", true),
		AvatarBaseURL:      envString("AVATAR_BASE_URL", "http://localhost:3000/assets/images"),
		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS"),
		PageCacheTTL:       envDuration("PAGE_CACHE_TTL", 5*time.Minute),
		DB:                 db.LoadConfigFromEnv(),
		Redis:              redis.LoadConfigFromEnv(),
	}, nil
}
