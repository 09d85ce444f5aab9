// Package password provides one-way hashing and verification of user passwords.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinCost is the lowest bcrypt work factor the hasher will use.
// Lower requested costs are raised to this value.
const MinCost = bcrypt.DefaultCost

// MaxPasswordBytes is the longest password bcrypt reads in full.
const MaxPasswordBytes = 72

// ErrInvalidCost is returned when the configured work factor cannot be used by bcrypt.
var ErrInvalidCost = errors.New("invalid bcrypt cost")

// BcryptHasher hashes and verifies passwords with bcrypt.
// It holds no mutable state and is safe for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given cost, raised to MinCost if lower.
// A cost above bcrypt.MaxCost is a configuration fault.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < MinCost {
		cost = MinCost
	}
	if cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Cost returns the work factor used for new hashes.
func (h *BcryptHasher) Cost() int {
	return h.cost
}

// Hash returns a salted bcrypt hash of plaintext.
// On failure the returned hash is always empty.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash.
// A corrupt or unparseable hash never matches, and neither does a plaintext
// longer than MaxPasswordBytes, since bcrypt would compare only its prefix.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	if len(plaintext) > MaxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
