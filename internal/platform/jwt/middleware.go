package jwtmw

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wordford/internal/feature/auth/domain/entity"
	authusecase "wordford/internal/feature/auth/usecase"
)

const (
	// AuthCookieName is the cookie carrying the session token.
	AuthCookieName = "auth_token"

	// ContextUserKey is the gin context key holding the resolved *entity.User.
	ContextUserKey = "currentUser"
)

// Resolution failures, in pipeline order.
var (
	ErrNoCookieHeader = errors.New("missing cookies")
	ErrNoAuthCookie   = errors.New("auth_token cookie not found")
	ErrInvalidSubject = errors.New("invalid user id in token")
	ErrUserNotFound   = errors.New("user in token no longer exists")
	ErrIdentityLookup = errors.New("user lookup failed")
)

// Resolution modes reported to the Observer.
const (
	ModeRequired = "required"
	ModeOptional = "optional"
)

// TokenVerifier validates a raw token string.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// UserFinder loads a user by id.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// Observer receives one call per resolution attempt.
type Observer interface {
	ObserveIdentityResolution(mode, outcome string)
}

// Resolver turns the auth cookie of a request into a user.
// It keeps no per-request state and is safe for concurrent use.
type Resolver struct {
	verifier TokenVerifier
	users    UserFinder
	observer Observer
	logger   *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithObserver reports every resolution outcome to o.
func WithObserver(o Observer) ResolverOption {
	return func(r *Resolver) { r.observer = o }
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a Resolver.
func NewResolver(verifier TokenVerifier, users UserFinder, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		verifier: verifier,
		users:    users,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs the resolution pipeline for req. The first failing step
// determines the returned error; there is no fallback token source.
func (r *Resolver) Resolve(req *http.Request) (*entity.User, error) {
	// 1. Cookie header
	if len(req.Header.Values("Cookie")) == 0 {
		return nil, ErrNoCookieHeader
	}

	// 2. Auth cookie
	cookie, err := req.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoAuthCookie
	}

	// 3. Token
	claims, err := r.verifier.Verify(cookie.Value)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// 4. Subject
	id, err := strconv.ParseUint(claims.Subject, 10, 0)
	if err != nil {
		return nil, ErrInvalidSubject
	}

	// 5. User
	user, err := r.users.FindByID(req.Context(), uint(id))
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrIdentityLookup, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// RequireUser returns a middleware that aborts with 401 unless a user resolves.
// The failure reason is logged, never sent to the client.
func (r *Resolver) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := r.Resolve(c.Request)
		r.observe(ModeRequired, err)
		if err != nil {
			r.logger.InfoContext(c.Request.Context(), "authentication required",
				"reason", err, "path", c.Request.URL.Path, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// OptionalUser returns a middleware that binds the user when one resolves
// and otherwise lets the request through as anonymous.
func (r *Resolver) OptionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := r.Resolve(c.Request)
		r.observe(ModeOptional, err)
		if err != nil {
			r.logAnonymous(c, err)
			c.Next()
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// logAnonymous keeps a logged-out visitor, a stale session and a failing
// store apart in the logs even though all three are served anonymously.
func (r *Resolver) logAnonymous(c *gin.Context, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, ErrNoCookieHeader), errors.Is(err, ErrNoAuthCookie):
		r.logger.DebugContext(ctx, "anonymous request", "reason", err)
	case errors.Is(err, ErrIdentityLookup):
		r.logger.WarnContext(ctx, "identity lookup failed, serving anonymously",
			"error", err, "path", c.Request.URL.Path)
	default:
		r.logger.InfoContext(ctx, "session discarded, serving anonymously",
			"reason", err, "path", c.Request.URL.Path, "remote_addr", c.ClientIP())
	}
}

func (r *Resolver) observe(mode string, err error) {
	if r.observer == nil {
		return
	}
	r.observer.ObserveIdentityResolution(mode, Outcome(err))
}

// Outcome maps a Resolve error to a short label. A nil error is "resolved".
func Outcome(err error) string {
	switch {
	case err == nil:
		return "resolved"
	case errors.Is(err, ErrNoCookieHeader):
		return "no_cookie_header"
	case errors.Is(err, ErrNoAuthCookie):
		return "no_auth_cookie"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, ErrInvalidSubject):
		return "invalid_subject"
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	default:
		return "lookup_failed"
	}
}
