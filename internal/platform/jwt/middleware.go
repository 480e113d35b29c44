package jwtmw

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"carrental_backend/internal/feature/auth/domain/entity"
)

const (
	// ContextUserID is the gin context key holding the caller's user id (uint).
	ContextUserID = "userID"

	// ContextClaims is the gin context key holding the caller's *Claims.
	ContextClaims = "claims"

	bearerPrefix = "Bearer "
)

var (
	// ErrUnauthenticated means the request carried no usable token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the token is valid but its role is not allowed.
	ErrForbidden = errors.New("forbidden")
)

// TokenVerifier decodes and validates a bearer token.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// Authorize decides whether the Authorization header grants one of roles.
// An empty roles list admits any valid token.
func Authorize(authHeader string, verifier TokenVerifier, roles ...entity.Role) (*Claims, error) {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil, ErrUnauthenticated
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if tokenStr == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := verifier.Verify(tokenStr)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	if len(roles) > 0 && !slices.Contains(roles, claims.Role) {
		return claims, ErrForbidden
	}
	return claims, nil
}

// RequireRoles returns a Gin middleware that admits only requests whose bearer
// token carries one of roles. Decoded claims are stored in the context.
func RequireRoles(verifier TokenVerifier, roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := Authorize(c.GetHeader("Authorization"), verifier, roles...)
		switch {
		case errors.Is(err, ErrForbidden):
			slog.Warn("access denied", "user_id", claims.UserID, "role", claims.Role, "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// AuthRequired admits any request with a valid token regardless of role.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return RequireRoles(verifier)
}

// ClaimsFromContext returns the claims stored by RequireRoles.
func ClaimsFromContext(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
