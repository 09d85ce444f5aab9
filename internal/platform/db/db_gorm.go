// Package db opens the gorm connection shared by every repository.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// defaultSQLitePath is used when DB_DRIVER=sqlite and DATABASE_URL is empty.
	defaultSQLitePath = "wordford.db"

	// pgUniqueViolation is the SQLSTATE of a unique constraint violation.
	pgUniqueViolation = "23505"
)

// ErrUnknownDriver is returned for a DB_DRIVER other than sqlite or postgres.
var ErrUnknownDriver = errors.New("unknown database driver")

// Config holds database connection settings.
type Config struct {
	Driver        string
	URL           string
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	RunMigrations bool
}

// LoadConfigFromEnv reads database settings from environment variables.
func LoadConfigFromEnv() Config {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	if driver == "" {
		driver = DriverSQLite
	}
	return Config{
		Driver:        driver,
		URL:           os.Getenv("DATABASE_URL"),
		Host:          os.Getenv("DB_HOST"),
		Port:          os.Getenv("DB_PORT"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		RunMigrations: runMigrations(driver, os.Getenv("RUN_MIGRATIONS")),
	}
}

// runMigrations defaults to on for sqlite, whose default database is a fresh
// file, and off for postgres.
func runMigrations(driver, v string) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
		return b
	}
	return driver == DriverSQLite
}

// BuildDSN returns the connection string for cfg.
// For postgres a DATABASE_URL takes precedence over the individual fields and is
// parsed up front so a malformed URL fails before the retry loop starts.
func BuildDSN(cfg Config) (string, error) {
	switch cfg.Driver {
	case DriverSQLite:
		if cfg.URL != "" {
			return cfg.URL, nil
		}
		return defaultSQLitePath, nil
	case DriverPostgres:
		if cfg.URL != "" {
			if _, err := pgx.ParseConfig(cfg.URL); err != nil {
				return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
			}
			return cfg.URL, nil
		}
		port := cfg.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, port, cfg.User, cfg.Password, cfg.Name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// NewOpener returns the Opener for driver.
func NewOpener(driver string) (Opener, error) {
	gcfg := &gorm.Config{
		// map driver-specific duplicate key errors to gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
	switch driver {
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			db, err := gorm.Open(sqlite.Open(dsn), gcfg)
			if err != nil {
				return nil, err
			}
			// sqlite serializes writers; one connection also keeps ":memory:" a single database
			sqlDB, err := db.DB()
			if err != nil {
				return nil, err
			}
			sqlDB.SetMaxOpenConns(1)
			return db, nil
		}, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gcfg)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses,
// sleeping interval between attempts.
func ConnectWithRetry(dsn string, timeout, interval time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(interval).After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", interval)
		time.Sleep(interval)
	}
}

// Open connects using cfg, retrying for up to a minute, and runs AutoMigrate over
// models when cfg.RunMigrations is set.
func Open(cfg Config, models ...any) (*gorm.DB, error) {
	dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}
	opener, err := NewOpener(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(dsn, 60*time.Second, 3*time.Second, opener)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected", "driver", cfg.Driver)

	if cfg.RunMigrations {
		if err := Migrate(db, models...); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate runs AutoMigrate for models.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	slog.Info("database migrated", "models", len(models))
	return nil
}

// Ping checks the connection behind db.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite without TranslateError
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
