// Package jwtmw issues and verifies session tokens and resolves the
// requesting user from the auth cookie.
package jwtmw

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the validity window of a session token.
const TokenTTL = 24 * time.Hour

var (
	// ErrMissingSecret indicates the signing secret was not configured.
	ErrMissingSecret = errors.New("jwt secret is not configured")

	// ErrInvalidExpiration indicates a non-positive token lifetime.
	ErrInvalidExpiration = errors.New("jwt expiration must be positive")
)

// Claims is the payload carried in a session token: sub, email and exp.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Generator signs session tokens with HS256.
type Generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a Generator with the provided secret and expiration duration.
// An empty secret is a configuration fault.
func NewGenerator(secret string, expiration time.Duration) (*Generator, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if expiration <= 0 {
		return nil, ErrInvalidExpiration
	}
	return &Generator{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}, nil
}

// GenerateToken creates a signed token for the given user.
// The subject is the decimal user id.
func (g *Generator) GenerateToken(userID uint, email string) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(g.now().Add(g.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
