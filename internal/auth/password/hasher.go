// Package password provides password hashing and verification for stored
// credentials.
//
// The bcrypt implementation truncates inputs to 72 bytes before hashing,
// matching the algorithm's input limit: two passwords that share their first
// 72 bytes and differ only afterwards are treated as identical.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the bcrypt input limit. Longer passwords are
// silently truncated at the byte level before hashing and verifying.
const MaxPasswordBytes = 72

// ErrPasswordMismatch is returned by Verify when the password does not match
// the stored hash. A malformed stored hash yields the same error so the
// failure mode is indistinguishable from a wrong password.
var ErrPasswordMismatch = errors.New("password: mismatched password and hash")

// ErrEmptyPassword is returned by Hash for empty input.
var ErrEmptyPassword = errors.New("password: empty password")

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	// Hash returns a salted hash of the password. The result differs
	// between calls for the same input.
	Hash(password string) (string, error)

	// Verify checks if a password matches the given hash.
	// Returns nil if they match, ErrPasswordMismatch otherwise.
	Verify(password, hash string) error
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// BcryptOption configures the bcrypt hasher.
type BcryptOption func(*BcryptHasher)

// WithCost sets the bcrypt cost parameter (default: 12, range: 4-31).
func WithCost(cost int) BcryptOption {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewBcryptHasher creates a bcrypt-based password hasher.
func NewBcryptHasher(opts ...BcryptOption) *BcryptHasher {
	h := &BcryptHasher{cost: DefaultBcryptCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns the bcrypt hash of the password as a string.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword(truncate(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify checks the password against the stored bcrypt hash. Any failure,
// including an unparseable stored hash, is reported as ErrPasswordMismatch.
func (h *BcryptHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// truncate encodes the password as bytes capped at the bcrypt input limit.
func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
