package testutil

import (
	"encoding/json"
	"testing"

	"github.com/erp/erp-system/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope decodes the response into the API envelope, leaving data raw
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *dto.ErrorInfo  `json:"error"`
	Meta    *dto.Meta       `json:"meta"`
}

// DecodeEnvelope parses the response body
func DecodeEnvelope(t *testing.T, tc *TestContext) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(tc.ResponseBody(), &env), "Failed to parse JSON response")
	return env
}

// DataAs decodes the data field of a successful response into T
func DataAs[T any](t *testing.T, tc *TestContext) T {
	t.Helper()
	env := DecodeEnvelope(t, tc)
	require.True(t, env.Success, "Expected success response, got %s", tc.ResponseBody())
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

// AssertErrorResponse asserts the status and the error code of a failed response
func AssertErrorResponse(t *testing.T, tc *TestContext, status int, code string) {
	t.Helper()
	assert.Equal(t, status, tc.ResponseCode(), "Unexpected status code: %s", tc.ResponseBody())
	env := DecodeEnvelope(t, tc)
	assert.False(t, env.Success)
	if assert.NotNil(t, env.Error, "Expected error object in response") {
		assert.Equal(t, code, env.Error.Code)
	}
}
