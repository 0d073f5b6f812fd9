package token

import (
	"errors"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// SigningMethod defines supported signing algorithms.
type SigningMethod string

const (
	HS256 SigningMethod = "HS256"
	HS384 SigningMethod = "HS384"
	HS512 SigningMethod = "HS512"
)

// DefaultExpireMinutes is the access token lifetime when none is configured.
const DefaultExpireMinutes = 60

// Config configures the token issuer.
type Config struct {
	// SecretKey is the HMAC signing key.
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`

	// Algorithm is the signing algorithm (default: HS256).
	Algorithm SigningMethod `yaml:"algorithm" mapstructure:"algorithm"`

	// AccessTokenExpireMinutes is the token lifetime in minutes (default: 60).
	AccessTokenExpireMinutes int `yaml:"access_token_expire_minutes" mapstructure:"access_token_expire_minutes"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = HS256
	}
	if c.AccessTokenExpireMinutes == 0 {
		c.AccessTokenExpireMinutes = DefaultExpireMinutes
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("token: secret_key is required")
	}
	switch c.Algorithm {
	case HS256, HS384, HS512:
	default:
		return errors.New("token: unsupported algorithm: " + string(c.Algorithm))
	}
	if c.AccessTokenExpireMinutes < 0 {
		return errors.New("token: access_token_expire_minutes must be non-negative")
	}
	return nil
}

// signingMethod returns the golang-jwt SigningMethod instance.
func (c *Config) signingMethod() gojwt.SigningMethod {
	switch c.Algorithm {
	case HS384:
		return gojwt.SigningMethodHS384
	case HS512:
		return gojwt.SigningMethodHS512
	default:
		return gojwt.SigningMethodHS256
	}
}
