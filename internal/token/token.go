// Package token issues and validates stateless bearer tokens.
//
// Tokens are HMAC-signed JWTs carrying the username and a snapshot of
// the profile picture taken at login. Validity is derived purely from
// the signature and expiry claim; there is no revocation, so deleting
// an account does not invalidate tokens already issued for it, and
// profile edits are not reflected in outstanding tokens until the next
// login. Rotating the signing secret invalidates every issued token.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dicehall/accounts/internal/dependencies/clock"
)

// ErrInvalidToken is returned for any token that fails validation:
// bad signature, malformed structure, wrong algorithm, or expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultValidity is how long issued tokens remain valid.
const DefaultValidity = 7 * 24 * time.Hour

// Claims are the identity claims embedded in a token.
type Claims struct {
	Username       string
	ProfilePicture string
	IssuedAt       time.Time
	ExpiresAt      time.Time
}

// jwtClaims is the wire representation used for signing and parsing.
type jwtClaims struct {
	jwt.RegisteredClaims
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Config holds configuration for the token issuer
type Config struct {
	// Secret is the process-wide HMAC signing key
	Secret string
	// Validity is the issuance-to-expiry window
	Validity time.Duration
}

// DefaultConfig returns default token configuration
func DefaultConfig() Config {
	return Config{
		Validity: DefaultValidity,
	}
}

// Issuer creates and validates signed session tokens
type Issuer struct {
	secret   []byte
	validity time.Duration
	clock    clock.Clock
}

// NewIssuer creates a token issuer with the given signing secret
func NewIssuer(cfg Config, clk clock.Clock) *Issuer {
	if cfg.Validity == 0 {
		cfg.Validity = DefaultValidity
	}
	return &Issuer{
		secret:   []byte(cfg.Secret),
		validity: cfg.Validity,
		clock:    clk,
	}
}

// Issue signs a token for the given identity claims
func (i *Issuer) Issue(username, profilePicture string) (string, error) {
	now := i.clock.Now()

	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
		Username:       username,
		ProfilePicture: profilePicture,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry of a token and returns
// its claims. All failure modes map to ErrInvalidToken.
func (i *Issuer) Validate(tokenString string) (*Claims, error) {
	var parsed jwtClaims
	_, err := jwt.ParseWithClaims(tokenString, &parsed,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if parsed.Username == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{
		Username:       parsed.Username,
		ProfilePicture: parsed.ProfilePicture,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}
