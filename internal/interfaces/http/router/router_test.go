package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "v1", r.apiVersion)
	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	r.Register(NewDomainGroup("clients", "/clients").
		GET("", func(c *gin.Context) { c.String(http.StatusOK, "list") }).
		GET("/:id", func(c *gin.Context) { c.String(http.StatusOK, c.Param("id")) }))
	r.Setup()

	w := serve(engine, http.MethodGet, "/api/v1/clients")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "list", w.Body.String())

	w = serve(engine, http.MethodGet, "/api/v1/clients/42")
	assert.Equal(t, "42", w.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/clients").Code)
}

func TestRouterMiddlewareAppliesToEveryGroup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithMiddleware(func(c *gin.Context) {
		c.Header("X-Api", "1")
		c.Next()
	}))
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	r.Register(
		NewDomainGroup("clients", "/clients").GET("", ok),
		NewDomainGroup("projects", "/projects").GET("", ok),
	)
	r.Setup()

	for _, path := range []string{"/api/v1/clients", "/api/v1/projects"} {
		w := serve(engine, http.MethodGet, path)
		assert.Equal(t, http.StatusNoContent, w.Code, path)
		assert.Equal(t, "1", w.Header().Get("X-Api"), path)
	}
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("contracts", "/contracts")
		assert.Equal(t, "contracts", g.Name())
		assert.Equal(t, "/contracts", g.Prefix())
	})

	t.Run("registers every method", func(t *testing.T) {
		engine := gin.New()
		echo := func(c *gin.Context) { c.String(http.StatusOK, c.Request.Method) }
		NewDomainGroup("invoices", "/invoices").
			GET("", echo).
			POST("", echo).
			PUT("/:id", echo).
			DELETE("/:id", echo).
			RegisterRoutes(engine.Group("/api/v1"))

		cases := []struct{ method, path string }{
			{http.MethodGet, "/api/v1/invoices"},
			{http.MethodPost, "/api/v1/invoices"},
			{http.MethodPut, "/api/v1/invoices/1"},
			{http.MethodDelete, "/api/v1/invoices/1"},
		}
		for _, tc := range cases {
			w := serve(engine, tc.method, tc.path)
			assert.Equal(t, http.StatusOK, w.Code, tc.method)
			assert.Equal(t, tc.method, w.Body.String())
		}
	})

	t.Run("group middleware runs before route handlers", func(t *testing.T) {
		engine := gin.New()
		NewDomainGroup("payments", "/payments").
			Use(func(c *gin.Context) {
				c.AbortWithStatus(http.StatusForbidden)
			}).
			GET("", func(c *gin.Context) { c.Status(http.StatusOK) }).
			RegisterRoutes(engine.Group("/api/v1"))

		assert.Equal(t, http.StatusForbidden, serve(engine, http.MethodGet, "/api/v1/payments").Code)
	})

	t.Run("route guards only apply to their route", func(t *testing.T) {
		engine := gin.New()
		deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusForbidden) }
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }
		NewDomainGroup("users", "/users").
			GET("/check", ok).
			GET("", deny, ok).
			RegisterRoutes(engine.Group("/api/v1"))

		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v1/users/check").Code)
		assert.Equal(t, http.StatusForbidden, serve(engine, http.MethodGet, "/api/v1/users").Code)
	})
}
