package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/interfaces/http/dto"
	"github.com/erp/erp-system/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestHandleError(t *testing.T) {
	h := BaseHandler{logger: zap.NewNop()}

	cases := []struct {
		name     string
		err      error
		wantCode string
		status   int
	}{
		{"not found", shared.ErrNotFound, "NOT_FOUND", http.StatusNotFound},
		{"relation not found", shared.NewDomainError("PROJECT_NOT_FOUND", "项目不存在"), "PROJECT_NOT_FOUND", http.StatusNotFound},
		{"duplicate", shared.NewDomainError("DUPLICATE_CONTRACT_NUMBER", "合同编号已存在"), "DUPLICATE_CONTRACT_NUMBER", http.StatusConflict},
		{"invalid", shared.NewDomainError("INVALID_AMOUNT", "金额无效"), "INVALID_AMOUNT", http.StatusBadRequest},
		{"business rule", shared.NewDomainError("CONTRACT_HAS_DOCUMENTS", "合同下存在单据"), "CONTRACT_HAS_DOCUMENTS", http.StatusUnprocessableEntity},
		{"wrapped", errors.Join(errors.New("context"), shared.NewDomainError("LAST_USER", "x")), "LAST_USER", http.StatusConflict},
		{"unexpected", errors.New("connection reset"), dto.ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newContext(http.MethodGet, "/", "")
			h.HandleError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleError_HidesInternalMessage(t *testing.T) {
	h := BaseHandler{}
	c, w := newContext(http.MethodGet, "/", "")
	h.HandleError(c, errors.New("pq: password authentication failed"))

	assert.NotContains(t, w.Body.String(), "password authentication")
}

func TestBindJSON(t *testing.T) {
	h := BaseHandler{}

	t.Run("validation details", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/", `{"password":"123"}`)
		var req InitAdminRequest
		assert.False(t, h.bindJSON(c, &req))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		fields := make([]string, 0, len(resp.Error.Details))
		for _, d := range resp.Error.Details {
			fields = append(fields, d.Field)
		}
		assert.ElementsMatch(t, []string{"username", "password"}, fields)
	})

	t.Run("malformed body", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/", `{"username":`)
		var req LoginRequest
		assert.False(t, h.bindJSON(c, &req))
		assert.Equal(t, dto.ErrCodeBadRequest, decode(t, w).Error.Code)
	})

	t.Run("valid", func(t *testing.T) {
		c, _ := newContext(http.MethodPost, "/", `{"username":"admin","password":"secret1"}`)
		var req LoginRequest
		assert.True(t, h.bindJSON(c, &req))
		assert.Equal(t, "admin", req.Username)
	})
}

func TestParseID(t *testing.T) {
	h := BaseHandler{}

	c, w := newContext(http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	_, ok := h.parseID(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidID, decode(t, w).Error.Code)

	c, _ = newContext(http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "id", Value: "7f1c4b70-9c52-4a8e-8f6a-2b9e1f0c3d11"}}
	id, ok := h.parseID(c)
	assert.True(t, ok)
	assert.Equal(t, "7f1c4b70-9c52-4a8e-8f6a-2b9e1f0c3d11", id.String())
}

func TestParseOptionalUUID(t *testing.T) {
	id, err := parseOptionalUUID("")
	assert.NoError(t, err)
	assert.Nil(t, id)

	_, err = parseOptionalUUID("abc")
	assert.Error(t, err)
}

func TestDateRange(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	r := dateRange(&from, &to)
	assert.Equal(t, from, *r.From)
	require.NotNil(t, r.To)
	assert.True(t, r.To.After(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)))
	assert.True(t, r.To.Before(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))

	r = dateRange(nil, nil)
	assert.True(t, r.IsZero())
}

func TestContractListRejectsMalformedFilters(t *testing.T) {
	h := NewContractHandler(nil, zap.NewNop())

	for _, target := range []string{
		"/contracts?clientId=nope",
		"/contracts?projectId=nope",
	} {
		c, w := newContext(http.MethodGet, target, "")
		h.ListContracts(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, dto.ErrCodeInvalidID, decode(t, w).Error.Code, target)
	}

	c, w := newContext(http.MethodGet, "/contracts?startDateFrom=2024-13-01", "")
	h.ListContracts(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNavigation_Anonymous(t *testing.T) {
	h := NewNavigationHandler()
	c, w := newContext(http.MethodGet, "/navigation", "")
	h.GetNavigation(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data NavigationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Menu, 1)
	assert.Equal(t, "home", body.Data.Menu[0].Key)
	assert.Empty(t, body.Data.Sections)
}
