package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"wordford/internal/app/di"
	"wordford/internal/app/router"
	appadapters "wordford/internal/feature/app/adapters"
	appentity "wordford/internal/feature/app/domain/entity"
	apphandler "wordford/internal/feature/app/transport/handler"
	appusecase "wordford/internal/feature/app/usecase"
	authadapters "wordford/internal/feature/auth/adapters"
	authentity "wordford/internal/feature/auth/domain/entity"
	authhandler "wordford/internal/feature/auth/transport/handler"
	authusecase "wordford/internal/feature/auth/usecase"
	contententity "wordford/internal/feature/content/domain/entity"
	contenthandler "wordford/internal/feature/content/transport/handler"
	contentusecase "wordford/internal/feature/content/usecase"
	orgadapters "wordford/internal/feature/org/adapters"
	orgentity "wordford/internal/feature/org/domain/entity"
	orghandler "wordford/internal/feature/org/transport/handler"
	orgusecase "wordford/internal/feature/org/usecase"
	pageadapters "wordford/internal/feature/page/adapters"
	pageentity "wordford/internal/feature/page/domain/entity"
	pagehandler "wordford/internal/feature/page/transport/handler"
	pageusecase "wordford/internal/feature/page/usecase"
	"wordford/internal/platform/config"
	"wordford/internal/platform/db"
	platformhandler "wordford/internal/platform/http/handler"
	jwtmw "wordford/internal/platform/jwt"
	"wordford/internal/platform/logger"
	"wordford/internal/platform/metrics"
	"wordford/internal/platform/password"
	infraredis "wordford/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logg := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.Open(cfg.DB,
		&authentity.User{},
		&orgentity.Org{},
		&appentity.App{},
		&pageentity.Page{},
		&contententity.Content{},
	)
	if err != nil {
		return err
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			logg.Warn("Redis unavailable. Running without cache.", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					logg.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Token, password
	generator, err := jwtmw.NewGenerator(cfg.JWTSecret, jwtmw.TokenTTL)
	if err != nil {
		return err
	}
	verifier, err := jwtmw.NewVerifier(cfg.JWTSecret)
	if err != nil {
		return err
	}
	hasher, err := password.NewBcryptHasher(password.MinCost)
	if err != nil {
		return err
	}
	m := metrics.New()

	// Repository
	userRepo := authadapters.NewUserRepository(gdb)
	orgRepo := orgadapters.NewOrgRepository(gdb)
	appRepo := appadapters.NewAppRepository(gdb)
	pageRepo := pageadapters.NewPageRepository(gdb)
	contentRepo := di.NewContentRepository(rdb, gdb, cfg.PageCacheTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, generator, hasher, cfg.AvatarBaseURL)
	orgUC := orgusecase.NewOrgUsecase(orgRepo)
	appUC := appusecase.NewAppUsecase(appRepo, orgRepo, pageRepo)
	pageUC := pageusecase.NewPageUsecase(pageRepo, appRepo)
	contentUC := contentusecase.NewContentUsecase(contentRepo, pageRepo, appRepo)

	// Handler
	handlers := router.Handlers{
		Auth:    authhandler.NewAuthHandler(authUC, cfg.CookieSecure),
		Org:     orghandler.NewOrgHandler(orgUC),
		App:     apphandler.NewAppHandler(appUC),
		Page:    pagehandler.NewPageHandler(pageUC),
		Content: contenthandler.NewContentHandler(contentUC),
		Health: platformhandler.NewHealthHandler(platformhandler.PingerFunc(func(ctx context.Context) error {
			return db.Ping(ctx, gdb)
		})),
	}
	resolver := jwtmw.NewResolver(verifier, userRepo, jwtmw.WithObserver(m), jwtmw.WithLogger(logg))

	engine := router.NewRouter(handlers, resolver, router.Options{
		Logger:             logg,
		Metrics:            m,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logg.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
