package auth

import (
	"testing"
	"time"

	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: expiration,
		Issuer:     "erp-test",
	})
}

func TestNewJWTService_DefaultsToSevenDays(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "s"})
	assert.Equal(t, 7*24*time.Hour, svc.Expiration())
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(GenerateTokenInput{
		UserID:      userID,
		Username:    "alice",
		Permissions: []string{identity.PermInvoicesIssued},
		IsAdmin:     false,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.NotEmpty(t, token.JTI)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token.Value)
	require.NoError(t, err)
	assert.Equal(t, token.JTI, claims.ID)
	assert.Equal(t, "erp-test", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)

	grants := claims.Grants()
	assert.Equal(t, userID, grants.UserID)
	assert.Equal(t, "alice", grants.Username)
	assert.True(t, grants.HasAny(identity.PermInvoicesIssued))
	assert.False(t, grants.HasAny(identity.PermInvoicesReceived))
	assert.Greater(t, claims.GetRemainingTTL(), 59*time.Minute)
}

func TestJWTService_AdminClaim(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.GenerateToken(GenerateTokenInput{UserID: uuid.New(), Username: "root", IsAdmin: true})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token.Value)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.NotNil(t, claims.Permissions)
	assert.True(t, claims.Grants().HasAny(identity.PermUsers))
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{Secret: "another-secret-key-of-32-chars!!", Expiration: time.Hour})
		token, err := other.GenerateToken(GenerateTokenInput{UserID: uuid.New(), Username: "x"})
		require.NoError(t, err)

		_, err = svc.ValidateToken(token.Value)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
			UserID: uuid.NewString(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("not yet valid", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				NotBefore: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
			},
			UserID: uuid.NewString(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrTokenNotYetValid)
	})

	t.Run("missing user id", func(t *testing.T) {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrMissingUserID)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
			UserID:           uuid.NewString(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
