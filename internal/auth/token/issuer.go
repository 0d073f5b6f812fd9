// Package token mints signed, time-bound access tokens asserting a user's
// identity. A token carries only a subject and an expiry; nothing is
// persisted and there is no revocation.
package token

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set embedded in issued tokens: subject and expiry.
type Claims struct {
	gojwt.RegisteredClaims
}

// Issuer signs and parses access tokens.
type Issuer struct {
	cfg Config
	now func() time.Time
}

// IssuerOption configures the Issuer.
type IssuerOption func(*Issuer)

// WithClock overrides the time source used for the expiry claim.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) {
		if now != nil {
			i.now = now
		}
	}
}

// NewIssuer creates a token issuer from configuration.
func NewIssuer(cfg Config, opts ...IssuerOption) (*Issuer, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	i := &Issuer{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return time.Duration(i.cfg.AccessTokenExpireMinutes) * time.Minute
}

// Issue mints a signed token with claims {sub: subject, exp: now + TTL}.
// The signature is deterministic given identical claims, secret and
// algorithm.
func (i *Issuer) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("token: empty subject")
	}

	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: gojwt.NewNumericDate(i.now().Add(i.TTL())),
		},
	}

	t := gojwt.NewWithClaims(i.cfg.signingMethod(), claims)
	signed, err := t.SignedString([]byte(i.cfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Parse validates a token string and returns its claims. It verifies the
// signature, the signing method, and the expiry.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := gojwt.ParseWithClaims(tokenString, claims, i.keyFunc,
		gojwt.WithValidMethods([]string{i.cfg.signingMethod().Alg()}),
		gojwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("token: parse: %w", err)
	}
	if !t.Valid {
		return nil, errors.New("token: invalid token")
	}
	return claims, nil
}

// keyFunc is the jwt.Keyfunc used during token parsing.
func (i *Issuer) keyFunc(t *gojwt.Token) (interface{}, error) {
	expected := i.cfg.signingMethod()
	if t.Method.Alg() != expected.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", t.Method.Alg())
	}
	return []byte(i.cfg.SecretKey), nil
}
