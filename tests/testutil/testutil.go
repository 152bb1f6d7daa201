// Package testutil holds shared helpers for handler and service tests:
// gin test contexts carrying a caller, envelope assertions and testify mocks
// of the repositories.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/infrastructure/auth"
	"github.com/erp/erp-system/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestContext wraps a gin test context and its recorder
type TestContext struct {
	Context  *gin.Context
	Recorder *httptest.ResponseRecorder
}

// NewTestContext creates a context for a request without a body
func NewTestContext(t *testing.T, method, path string) *TestContext {
	t.Helper()
	return newTestContext(httptest.NewRequest(method, path, nil))
}

// NewJSONContext creates a context whose request body is v encoded as JSON
func NewJSONContext(t *testing.T, method, path string, v any) *TestContext {
	t.Helper()
	req := httptest.NewRequest(method, path, ToJSONReader(t, v))
	req.Header.Set("Content-Type", "application/json")
	return newTestContext(req)
}

func newTestContext(req *http.Request) *TestContext {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return &TestContext{Context: c, Recorder: w}
}

// SetParam sets a path parameter
func (tc *TestContext) SetParam(key, value string) *TestContext {
	tc.Context.Params = append(tc.Context.Params, gin.Param{Key: key, Value: value})
	return tc
}

// AsCaller attaches the session claims the JWT middleware would set for g
func (tc *TestContext) AsCaller(g identity.Grants) *TestContext {
	claims := &auth.Claims{
		UserID:      g.UserID.String(),
		Username:    g.Username,
		Permissions: g.Permissions,
		IsAdmin:     g.IsAdmin,
	}
	tc.Context.Set(middleware.JWTClaimsKey, claims)
	tc.Context.Set(middleware.JWTUserIDKey, claims.UserID)
	return tc
}

// ResponseCode returns the HTTP status code
func (tc *TestContext) ResponseCode() int {
	return tc.Recorder.Code
}

// ResponseBody returns the raw response body
func (tc *TestContext) ResponseBody() []byte {
	return tc.Recorder.Body.Bytes()
}

// Admin returns grants for an administrator
func Admin() identity.Grants {
	return identity.Grants{UserID: NewTestUUID("admin"), Username: "admin", IsAdmin: true}
}

// Caller returns grants for a regular user holding perms
func Caller(perms ...string) identity.Grants {
	return identity.Grants{UserID: NewTestUUID("caller"), Username: "caller", Permissions: perms}
}

// NewTestUUID generates a deterministic UUID from seed
func NewTestUUID(seed string) uuid.UUID {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return uuid.NewSHA1(namespace, []byte(seed))
}

// ToJSONReader encodes v as JSON
func ToJSONReader(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err, "Failed to marshal to JSON")
	return bytes.NewReader(data)
}
