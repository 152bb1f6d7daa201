package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/erp/erp-system/internal/infrastructure/auth"
	"github.com/erp/erp-system/internal/infrastructure/config"
	"github.com/erp/erp-system/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: time.Hour,
		Issuer:     "test-issuer",
	})
}

func newTestToken(t *testing.T, svc *auth.JWTService, perms []string, isAdmin bool) (*auth.Token, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	token, err := svc.GenerateToken(auth.GenerateTokenInput{
		UserID:      userID,
		Username:    "alice",
		Permissions: perms,
		IsAdmin:     isAdmin,
	})
	require.NoError(t, err)
	return token, userID
}

func newProtectedRouter(cfg JWTMiddlewareConfig) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuthMiddlewareWithConfig(cfg))
	router.GET("/api/v1/protected", func(c *gin.Context) {
		grants := GetGrants(c)
		c.JSON(http.StatusOK, gin.H{"user": grants.UserID.String(), "admin": grants.IsAdmin})
	})
	router.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func TestJWTAuthMiddleware_BearerHeader(t *testing.T) {
	svc := newTestJWTService()
	token, userID := newTestToken(t, svc, nil, true)
	router := newProtectedRouter(DefaultJWTConfig(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token.Value)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), `"admin":true`)
}

func TestJWTAuthMiddleware_Cookie(t *testing.T) {
	svc := newTestJWTService()
	token, _ := newTestToken(t, svc, []string{"projects"}, false)
	router := newProtectedRouter(DefaultJWTConfig(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: token.Value})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	svc := newTestJWTService()
	valid, _ := newTestToken(t, svc, nil, false)

	expiredSvc := auth.NewJWTService(config.JWTConfig{Secret: "test-secret-key-at-least-32-chars", Expiration: -time.Minute})
	expired, _ := newTestToken(t, expiredSvc, nil, false)

	otherSvc := auth.NewJWTService(config.JWTConfig{Secret: "another-secret-key-at-least-32-chars"})
	foreign, _ := newTestToken(t, otherSvc, nil, false)

	tests := []struct {
		name   string
		header string
		cookie string
	}{
		{"missing", "", ""},
		{"not bearer", "Basic " + valid.Value, ""},
		{"malformed header wins over a good cookie", "Token abc", valid.Value},
		{"garbage", BearerPrefix + "not-a-jwt", ""},
		{"expired", BearerPrefix + expired.Value, ""},
		{"wrong signature", BearerPrefix + foreign.Value, ""},
	}

	router := newProtectedRouter(DefaultJWTConfig(svc))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
			if tt.header != "" {
				req.Header.Set(AuthHeaderKey, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, dto.ErrCodeUnauthorized, decodeError(t, rec).Error.Code)
		})
	}
}

func TestJWTAuthMiddleware_SkipPaths(t *testing.T) {
	router := newProtectedRouter(DefaultJWTConfig(newTestJWTService()))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_Blacklist(t *testing.T) {
	svc := newTestJWTService()

	t.Run("revoked token", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		token, _ := newTestToken(t, svc, nil, false)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), token.JTI, time.Hour))
		cfg := DefaultJWTConfig(svc)
		cfg.TokenBlacklist = blacklist

		req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token.Value)
		rec := httptest.NewRecorder()
		newProtectedRouter(cfg).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("all tokens of a user revoked", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		token, userID := newTestToken(t, svc, nil, false)
		require.NoError(t, blacklist.AddUserTokensToBlacklist(context.Background(), userID.String(), time.Hour))
		cfg := DefaultJWTConfig(svc)
		cfg.TokenBlacklist = blacklist

		req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token.Value)
		rec := httptest.NewRecorder()
		newProtectedRouter(cfg).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("other tokens still work", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		token, _ := newTestToken(t, svc, nil, false)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), uuid.NewString(), time.Hour))
		cfg := DefaultJWTConfig(svc)
		cfg.TokenBlacklist = blacklist

		req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token.Value)
		rec := httptest.NewRecorder()
		newProtectedRouter(cfg).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGetGrants_Anonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, GetGrants(c).Authenticated())
}
