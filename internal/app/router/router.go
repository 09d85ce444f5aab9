// Package router builds the gin engine and its route table.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	apphandler "wordford/internal/feature/app/transport/handler"
	authhandler "wordford/internal/feature/auth/transport/handler"
	contenthandler "wordford/internal/feature/content/transport/handler"
	orghandler "wordford/internal/feature/org/transport/handler"
	pagehandler "wordford/internal/feature/page/transport/handler"
	platformhandler "wordford/internal/platform/http/handler"
	"wordford/internal/platform/http/middleware"
	jwtmw "wordford/internal/platform/jwt"
	"wordford/internal/platform/metrics"
)

// Handlers groups the feature handlers mounted by NewRouter.
type Handlers struct {
	Auth    *authhandler.AuthHandler
	Org     *orghandler.OrgHandler
	App     *apphandler.AppHandler
	Page    *pagehandler.PageHandler
	Content *contenthandler.ContentHandler
	Health  *platformhandler.HealthHandler
}

// Options configures the engine-wide middleware.
type Options struct {
	Logger *slog.Logger
	// Metrics is optional; nil disables the middleware and /metrics.
	Metrics *metrics.Metrics
	// CORSAllowedOrigins enables CORS when non-empty.
	CORSAllowedOrigins []string
}

// NewRouter builds the engine. Routes fall in three groups: public,
// optional identity and mandatory identity.
func NewRouter(h Handlers, resolver *jwtmw.Resolver, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}
	if len(opts.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// public
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	r.POST("/signup", h.Auth.Signup)
	r.POST("/signin", h.Auth.Signin)
	r.POST("/signout", h.Auth.Signout)

	// optional identity
	public := r.Group("/api")
	public.Use(resolver.OptionalUser())
	{
		public.GET("/apps/:id", h.App.Get)
		public.GET("/apps/:id/pages", h.App.Pages)
		public.GET("/pages/:id/content", h.Content.PageContent)
	}

	// mandatory identity
	auth := r.Group("/")
	auth.Use(resolver.RequireUser())
	{
		auth.GET("/me", h.Auth.Me)

		auth.PUT("/api/orgs", h.Org.Create)
		auth.GET("/api/orgs/:id", h.Org.Get)
		auth.DELETE("/api/orgs/:id", h.Org.Delete)

		auth.PUT("/api/apps", h.App.Create)
		auth.DELETE("/api/apps/:id", h.App.Delete)

		auth.PUT("/api/pages", h.Page.Create)
		auth.GET("/api/pages/:id", h.Page.Get)
		auth.DELETE("/api/pages/:id", h.Page.Delete)

		auth.PUT("/api/content", h.Content.Create)
		auth.GET("/api/content/:id", h.Content.Get)
		auth.DELETE("/api/content/:id", h.Content.Delete)
	}

	return r
}
