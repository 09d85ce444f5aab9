// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wordford/internal/feature/auth/domain/entity"
	"wordford/internal/feature/auth/transport/http/dto"
	"wordford/internal/feature/auth/usecase"
	jwtmw "wordford/internal/platform/jwt"
)

// CookieMaxAge is the lifetime of the auth cookie in seconds (one year).
// The token inside expires long before the cookie does.
const CookieMaxAge = 31536000

const (
	msgSignupOK       = "Congratulations! You may now sign in."
	msgEmailTaken     = "Email already exists. Please try again."
	msgLoginOK        = "Login successful!"
	msgBadCredentials = "Invalid email or password. Please try again."
	msgUnexpected     = "An unexpected error occurred. Please try again."
	msgSignoutOK      = "Signed out."
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録します。
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, error)
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth         AuthUsecase
	cookieSecure bool
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// cookieSecure controls the Secure attribute of the auth cookie.
func NewAuthHandler(auth AuthUsecase, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - その他の失敗は500を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		Email:      req.Email,
		Password:   req.Password,
		GivenName:  req.GivenName,
		FamilyName: req.FamilyName,
	})
	switch {
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		slog.Info("signup rejected: email taken", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: msgEmailTaken})
		return
	case errors.Is(err, usecase.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		slog.Error("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgUnexpected})
		return
	}

	slog.Info("user signup successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: msgSignupOK})
}

// Signin はユーザーログインAPIエンドポイントを処理します。
// 認証成功時はJWTをHttpOnlyクッキーとして設定し200を返却します。
// 認証失敗時はクッキーを設定せず401を返却します。
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Info("login failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: msgBadCredentials})
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgUnexpected})
		return
	}

	h.setAuthCookie(c, token, CookieMaxAge)
	slog.Info("user login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgLoginOK})
}

// Signout clears the auth cookie. The token itself stays valid until it expires.
func (h *AuthHandler) Signout(c *gin.Context) {
	h.setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgSignoutOK})
}

// Me returns the public view of the resolved user.
// It must run behind a RequireUser middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(jwtmw.AuthCookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
