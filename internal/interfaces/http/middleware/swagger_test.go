package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveSwagger(cfg SwaggerConfig, remoteAddr string) int {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestSwaggerProtection(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serveSwagger(SwaggerConfig{}, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, serveSwagger(SwaggerConfig{Enabled: true}, "10.0.0.1:1234"))

	restricted := SwaggerConfig{Enabled: true, AllowedIPs: []string{"192.168.0.0/16", "10.0.0.7"}}
	assert.Equal(t, http.StatusOK, serveSwagger(restricted, "192.168.3.4:1234"))
	assert.Equal(t, http.StatusOK, serveSwagger(restricted, "10.0.0.7:1234"))
	assert.Equal(t, http.StatusForbidden, serveSwagger(restricted, "10.0.0.8:1234"))
}
