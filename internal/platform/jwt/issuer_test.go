package jwtmw

import (
	"encoding/base64"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental_backend/internal/feature/auth/domain/entity"
)

const testSecret = "test-secret"

func testUser(id uint, role entity.Role) *entity.User {
	return &entity.User{
		ID:        id,
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Liddell",
		Role:      role,
	}
}

func newTestIssuer(t *testing.T, ttl time.Duration) *Issuer {
	t.Helper()
	iss, err := NewIssuer(testSecret, ttl)
	require.NoError(t, err)
	return iss
}

// TestNewIssuer verifies secret handling and TTL defaults.
func TestNewIssuer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secret  string
		ttl     time.Duration
		wantTTL time.Duration
		wantErr error
	}{
		{"standard config", "my-secret-key", time.Hour, time.Hour, nil},
		{"zero ttl falls back to 24h", "secret", 0, DefaultTTL, nil},
		{"negative ttl falls back to 24h", "secret", -time.Minute, DefaultTTL, nil},
		{"missing secret", "", time.Hour, 0, ErrMissingSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			iss, err := NewIssuer(tt.secret, tt.ttl)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, iss)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.secret, string(iss.secret))
			assert.Equal(t, tt.wantTTL, iss.TTL())
		})
	}
}

// TestIssuer_Issue checks the claims embedded in a freshly minted token.
func TestIssuer_Issue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
		role   entity.Role
	}{
		{"regular user", 1, entity.RoleUser},
		{"admin", 42, entity.RoleAdmin},
		{"large user id", 999999, entity.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			iss := newTestIssuer(t, DefaultTTL)
			tokenStr, err := iss.Issue(testUser(tt.userID, tt.role))
			require.NoError(t, err)
			require.NotEmpty(t, tokenStr)

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				return []byte(testSecret), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)
			assert.Equal(t, strconv.FormatUint(uint64(tt.userID), 10), claims["sub"])
			assert.Equal(t, float64(tt.userID), claims["user_id"])
			assert.Equal(t, "Alice", claims["firstName"])
			assert.Equal(t, "Liddell", claims["lastName"])
			assert.Equal(t, string(tt.role), claims["role"])
			assert.Contains(t, claims, "exp")
			assert.Contains(t, claims, "iat")
			assert.NotContains(t, claims, "email")
			assert.NotContains(t, claims, "password")
		})
	}
}

// TestIssuer_Issue_Expiration checks exp is issued-at plus 24 hours.
func TestIssuer_Issue_Expiration(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	iss := newTestIssuer(t, DefaultTTL)
	iss.now = func() time.Time { return fixed }

	tokenStr, err := iss.Issue(testUser(1, entity.RoleUser))
	require.NoError(t, err)

	claims, err := iss.Verify(tokenStr)
	require.NoError(t, err)

	assert.Equal(t, fixed.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixed.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

// TestIssuer_Issue_SigningMethod checks tokens are signed with HS256.
func TestIssuer_Issue_SigningMethod(t *testing.T) {
	t.Parallel()

	tokenStr, err := newTestIssuer(t, time.Hour).Issue(testUser(1, entity.RoleUser))
	require.NoError(t, err)

	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, &Claims{})
	require.NoError(t, err)
	assert.Equal(t, jwt.SigningMethodHS256.Alg(), token.Method.Alg())
}

// TestIssuer_Verify_RoundTrip checks that issued claims decode unchanged.
func TestIssuer_Verify_RoundTrip(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer(t, time.Hour)
	tokenStr, err := iss.Issue(testUser(7, entity.RoleAdmin))
	require.NoError(t, err)

	claims, err := iss.Verify(tokenStr)

	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "Alice", claims.FirstName)
	assert.Equal(t, "Liddell", claims.LastName)
}

// TestIssuer_Verify_Invalid checks that every kind of bad token yields ErrInvalidToken.
func TestIssuer_Verify_Invalid(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer(t, time.Hour)

	expiredIssuer := newTestIssuer(t, time.Hour)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredIssuer.Issue(testUser(1, entity.RoleUser))
	require.NoError(t, err)

	otherIssuer, err := NewIssuer("another-secret", time.Hour)
	require.NoError(t, err)
	wrongSecret, err := otherIssuer.Issue(testUser(1, entity.RoleUser))
	require.NoError(t, err)

	valid, err := iss.Issue(testUser(1, entity.RoleUser))
	require.NoError(t, err)
	parts := strings.Split(valid, ".")
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"1","user_id":1,"role":"admin","exp":9999999999}`))
	tampered := parts[0] + "." + forged + "." + parts[2]

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"expired but correctly signed", expired},
		{"wrong secret", wrongSecret},
		{"tampered payload", tampered},
		{"none algorithm", signedNone(t)},
		{"HS512 algorithm", signedWith(t, jwt.SigningMethodHS512, validClaims("user", time.Hour))},
		{"unknown role", signedWith(t, jwt.SigningMethodHS256, validClaims("superuser", time.Hour))},
		{"missing exp", signedWith(t, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1", "role": "user"})},
		{"missing subject", signedWith(t, jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "user",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := iss.Verify(tt.token)

			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

// TestIssuer_DifferentUsersProduceDifferentTokens checks token uniqueness across subjects.
func TestIssuer_DifferentUsersProduceDifferentTokens(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer(t, time.Hour)

	token1, _ := iss.Issue(testUser(1, entity.RoleUser))
	token2, _ := iss.Issue(testUser(2, entity.RoleUser))

	assert.NotEqual(t, token1, token2)
}

func validClaims(role string, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":     "1",
		"user_id": 1,
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}
}

func signedWith(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func signedNone(t *testing.T) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims(string(entity.RoleAdmin), time.Hour)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return s
}
