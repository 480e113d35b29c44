// Package jwtmw issues and verifies session tokens and gates routes by role.
package jwtmw

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"carrental_backend/internal/feature/auth/domain/entity"
)

// DefaultTTL is the session token lifetime.
const DefaultTTL = 24 * time.Hour

var (
	// ErrMissingSecret is returned by NewIssuer when no signing secret is configured.
	ErrMissingSecret = errors.New("jwt signing secret is not set")

	// ErrInvalidToken is the only error Verify returns. Expired, tampered and
	// malformed tokens are intentionally indistinguishable to the caller.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the payload of a session token.
type Claims struct {
	UserID    uint        `json:"user_id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 session tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates an Issuer. A non-positive ttl falls back to DefaultTTL.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue mints a token for user carrying its id, display names and role.
func (i *Issuer) Issue(user *entity.User) (string, error) {
	now := i.now()
	claims := Claims{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, algorithm and expiry of tokenStr and returns its claims.
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}
