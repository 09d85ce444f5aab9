package jwtmw

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any malformed, tampered or expired token.
// The cause is deliberately not exposed.
var ErrInvalidToken = errors.New("invalid token")

// Verifier validates tokens produced by a Generator sharing the same secret.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier creates a Verifier for the given secret.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Verifier{secret: []byte(secret), now: time.Now}, nil
}

// Verify checks the signature and expiry of tokenStr and returns its claims.
// Only HS256 is accepted and exp is mandatory.
func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (any, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
