// Package redis builds the go-redis client used by the page content cache.
package redis

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection settings. An empty Host disables Redis.
type Config struct {
	Host     string
	Port     string
	Password string
}

// LoadConfigFromEnv reads REDIS_HOST, REDIS_PORT and REDIS_PASSWORD.
func LoadConfigFromEnv() Config {
	port := strings.TrimSpace(os.Getenv("REDIS_PORT"))
	if port == "" {
		port = "6379"
	}
	return Config{
		Host:     strings.TrimSpace(os.Getenv("REDIS_HOST")),
		Port:     port,
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

// Enabled reports whether a Redis host is configured.
func (c Config) Enabled() bool {
	return c.Host != ""
}

// Addr returns host:port.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// NewRedisClient connects to Redis and pings it once.
// The caller owns the returned client and must Close it.
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr(), "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
