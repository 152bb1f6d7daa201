package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/erp/erp-system/docs"
	contractapp "github.com/erp/erp-system/internal/application/contract"
	financeapp "github.com/erp/erp-system/internal/application/finance"
	identityapp "github.com/erp/erp-system/internal/application/identity"
	partnerapp "github.com/erp/erp-system/internal/application/partner"
	projectapp "github.com/erp/erp-system/internal/application/project"
	settingsapp "github.com/erp/erp-system/internal/application/settings"
	"github.com/erp/erp-system/internal/domain/numbering"
	"github.com/erp/erp-system/internal/infrastructure/auth"
	"github.com/erp/erp-system/internal/infrastructure/config"
	"github.com/erp/erp-system/internal/infrastructure/persistence"
	"github.com/erp/erp-system/internal/infrastructure/persistence/models"
	"github.com/erp/erp-system/internal/infrastructure/storage"
	"github.com/erp/erp-system/internal/interfaces/http/handler"
	"github.com/erp/erp-system/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func (a apiClient) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return a.serve(req)
}

func (a apiClient) serve(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	var env envelope
	if w.Header().Get("Content-Type") != "" && bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("{")) {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (a apiClient) login(username, password string) string {
	a.t.Helper()
	w, env := a.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": username, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(a.t, out.Token)
	return out.Token
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		App:    config.AppConfig{Name: "erp-test", Env: "test"},
		JWT:    config.JWTConfig{Secret: "router-test-secret", Expiration: time.Hour, Issuer: "erp-test"},
		Cookie: config.CookieConfig{Name: "token", Path: "/", HTTPOnly: true, SameSite: "lax", MaxAge: time.Hour},
		HTTP: config.HTTPConfig{
			MaxBodySize:      1 << 20,
			CORSAllowOrigins: []string{"http://localhost:5173"},
		},
		Upload: config.UploadConfig{
			Backend:      config.UploadBackendLocal,
			Dir:          t.TempDir(),
			PublicPath:   "/uploads",
			MaxSize:      1 << 20,
			AllowedTypes: []string{"image/png", "image/jpeg"},
		},
		Numbering: config.NumberingConfig{MaxRetries: 3},
	}
}

func newTestEngine(t *testing.T, cfg *config.Config, authLimiter *middleware.RateLimiter) apiClient {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	log := zap.NewNop()
	userRepo := persistence.NewGormUserRepository(db)
	clientRepo := persistence.NewGormClientRepository(db)
	projectRepo := persistence.NewGormProjectRepository(db)
	contractRepo := persistence.NewGormContractRepository(db)
	invoiceRepo := persistence.NewGormInvoiceRepository(db)
	paymentRepo := persistence.NewGormPaymentRepository(db)
	sequenceRepo := persistence.NewGormSequenceRepository(db)
	settingsRepo := persistence.NewGormSettingsRepository(db)

	blacklist := auth.NewInMemoryTokenBlacklist()
	jwtService := auth.NewJWTService(cfg.JWT)
	logos, err := storage.NewLocalLogoStorage(cfg.Upload.Dir, cfg.Upload.PublicPath)
	require.NoError(t, err)

	numberOpts := financeapp.NumberingOptions{MaxRetries: cfg.Numbering.MaxRetries, Location: time.UTC}
	invoiceNumbers := financeapp.NewNumberGenerator(numbering.SpaceInvoice, sequenceRepo, invoiceRepo, numberOpts, nil, log)
	paymentNumbers := financeapp.NewNumberGenerator(numbering.SpacePayment, sequenceRepo, paymentRepo, numberOpts, nil, log)

	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, nil, log)
	settingsService := settingsapp.NewSettingsService(settingsRepo, logos, settingsapp.UploadOptions{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}, log)

	h := Handlers{
		System:     handler.NewSystemHandler(cfg.App.Name, "test", &persistence.Database{DB: db, Driver: config.DriverSQLite}),
		Auth:       handler.NewAuthHandler(authService, cfg.Cookie, log),
		User:       handler.NewUserHandler(identityapp.NewUserService(userRepo, blacklist, cfg.JWT.Expiration, nil, log), log),
		Client:     handler.NewClientHandler(partnerapp.NewClientService(clientRepo, log), log),
		Project:    handler.NewProjectHandler(projectapp.NewProjectService(projectRepo, contractRepo, clientRepo, log), log),
		Contract:   handler.NewContractHandler(contractapp.NewContractService(contractRepo, clientRepo, projectRepo, invoiceRepo, paymentRepo, log), log),
		Invoice:    handler.NewInvoiceHandler(financeapp.NewInvoiceService(invoiceRepo, clientRepo, contractRepo, invoiceNumbers, log), log),
		Payment:    handler.NewPaymentHandler(financeapp.NewPaymentService(paymentRepo, invoiceRepo, clientRepo, contractRepo, paymentNumbers, log), log),
		Settings:   handler.NewSettingsHandler(settingsService, log),
		Navigation: handler.NewNavigationHandler(),
	}

	engine := NewEngine(Options{
		Config:          cfg,
		Logger:          log,
		JWTService:      jwtService,
		Blacklist:       blacklist,
		AuthRateLimiter: authLimiter,
	}, h)
	return apiClient{t: t, engine: engine}
}

// bootstrapAdmin creates the initial administrator and a clerk that may
// only work with issued invoices, and returns both tokens
func bootstrapAdmin(api apiClient) (adminToken, clerkToken string) {
	t := api.t
	w, _ := api.do(http.MethodPost, "/api/v1/auth/init-admin", "", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	adminToken = api.login("admin", "admin123")

	w, _ = api.do(http.MethodPost, "/api/v1/users", adminToken, gin.H{
		"username":    "clerk",
		"password":    "clerk123",
		"permissions": []string{"invoices.issued"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	clerkToken = api.login("clerk", "clerk123")
	return adminToken, clerkToken
}

func TestEngine_PublicEndpoints(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)

	w, _ := api.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w, env := api.do(http.MethodGet, "/api/v1/auth/bootstrap", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status struct {
		HasUsers    bool `json:"hasUsers"`
		Initialized bool `json:"initialized"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.False(t, status.HasUsers)
	assert.False(t, status.Initialized)

	w, env = api.do(http.MethodGet, "/api/v1/users/check", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hasUsers":false}`, string(env.Data))

	w, _ = api.do(http.MethodGet, "/swagger/index.html", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEngine_ProtectedRoutesRequireToken(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)

	for _, path := range []string{
		"/api/v1/auth/me",
		"/api/v1/clients",
		"/api/v1/contracts",
		"/api/v1/invoices",
		"/api/v1/payments",
		"/api/v1/projects",
		"/api/v1/users",
		"/api/v1/navigation",
		"/api/v1/system-settings",
		"/api/v1/system/info",
	} {
		w, env := api.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		require.NotNil(t, env.Error, path)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code, path)
	}

	w, _ := api.do(http.MethodGet, "/api/v1/clients", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEngine_BootstrapIsOneWay(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)
	bootstrapAdmin(api)

	w, env := api.do(http.MethodPost, "/api/v1/auth/init-admin", "", gin.H{"username": "second", "password": "second123"})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ALREADY_INITIALIZED", env.Error.Code)

	_, env = api.do(http.MethodGet, "/api/v1/auth/bootstrap", "", nil)
	assert.Contains(t, string(env.Data), `"initialized":true`)
}

func TestEngine_LoginSetsCookie(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)
	bootstrapAdmin(api)

	w, _ := api.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(session)
	w, env := api.serve(req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"username":"admin"`)

	w, _ = api.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "admin", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEngine_LogoutRevokesToken(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)
	admin, _ := bootstrapAdmin(api)

	w, _ := api.do(http.MethodPost, "/api/v1/auth/logout", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = api.do(http.MethodGet, "/api/v1/auth/me", admin, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEngine_PermissionGuards(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)
	admin, clerk := bootstrapAdmin(api)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"invoice list", http.MethodGet, "/api/v1/invoices", nil, http.StatusOK},
		{"invoice next number", http.MethodGet, "/api/v1/invoices/next-number", nil, http.StatusOK},
		{"contracts readable for pickers", http.MethodGet, "/api/v1/contracts", nil, http.StatusOK},
		{"clients readable for pickers", http.MethodGet, "/api/v1/clients", nil, http.StatusOK},
		{"contract write", http.MethodPost, "/api/v1/contracts", gin.H{}, http.StatusForbidden},
		{"client write", http.MethodPost, "/api/v1/clients", gin.H{"name": "x"}, http.StatusForbidden},
		{"payments", http.MethodGet, "/api/v1/payments", nil, http.StatusForbidden},
		{"projects", http.MethodGet, "/api/v1/projects", nil, http.StatusForbidden},
		{"users", http.MethodGet, "/api/v1/users", nil, http.StatusForbidden},
		{"settings read", http.MethodGet, "/api/v1/system-settings", nil, http.StatusOK},
		{"settings write", http.MethodPut, "/api/v1/system-settings", gin.H{"companyName": "ACME"}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, env := api.do(tc.method, tc.path, clerk, tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
			if tc.want == http.StatusForbidden {
				require.NotNil(t, env.Error)
				assert.Equal(t, "FORBIDDEN", env.Error.Code)
			}
		})
	}

	w, _ := api.do(http.MethodPut, "/api/v1/system-settings", admin, gin.H{"companyName": "ACME"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEngine_Navigation(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)
	admin, clerk := bootstrapAdmin(api)

	w, env := api.do(http.MethodGet, "/api/v1/navigation", clerk, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var nav handler.NavigationResponse
	require.NoError(t, json.Unmarshal(env.Data, &nav))
	assert.Equal(t, []string{"invoices"}, nav.Sections)
	keys := make([]string, 0, len(nav.Menu))
	for _, m := range nav.Menu {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"home", "invoices"}, keys)
	require.Len(t, nav.Menu[1].Children, 1)
	assert.Equal(t, "invoices.issued", nav.Menu[1].Children[0].Key)

	_, env = api.do(http.MethodGet, "/api/v1/navigation", admin, nil)
	require.NoError(t, json.Unmarshal(env.Data, &nav))
	assert.Len(t, nav.Sections, 6)
	assert.Equal(t, "settings", nav.Menu[len(nav.Menu)-1].Key)
}

func TestEngine_RequestErrors(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)
	admin, _ := bootstrapAdmin(api)

	w, env := api.do(http.MethodGet, "/api/v1/clients/not-a-uuid", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)

	w, env = api.do(http.MethodPost, "/api/v1/clients", admin, gin.H{"clientType": "PARTNER"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	w, env = api.do(http.MethodGet, "/api/v1/clients/7f1c4b70-9c52-4a8e-8f6a-2b9e1f0c3d11", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestEngine_LastUserCannotBeDeleted(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)
	w, env := api.do(http.MethodPost, "/api/v1/auth/init-admin", "", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusCreated, w.Code)
	var user struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	token := api.login("admin", "admin123")

	w, env = api.do(http.MethodDelete, "/api/v1/users/"+user.ID, token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "LAST_USER", env.Error.Code)
}

func TestEngine_InvoiceNumbering(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)
	admin, _ := bootstrapAdmin(api)

	w, env := api.do(http.MethodPost, "/api/v1/clients", admin, gin.H{"name": "华东机电", "clientType": "CUSTOMER"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var client struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &client))

	_, env = api.do(http.MethodGet, "/api/v1/invoices/next-number", admin, nil)
	var next struct {
		Number string `json:"number"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &next))
	assert.Regexp(t, `^\d{6}-01$`, next.Number)

	w, env = api.do(http.MethodPost, "/api/v1/invoices", admin, gin.H{
		"clientId":    client.ID,
		"invoiceType": "ISSUED",
		"amount":      "1000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var invoice struct {
		InvoiceNumber string `json:"invoiceNumber"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &invoice))
	assert.Equal(t, next.Number, invoice.InvoiceNumber)

	_, env = api.do(http.MethodGet, "/api/v1/invoices/next-number", admin, nil)
	require.NoError(t, json.Unmarshal(env.Data, &next))
	assert.Regexp(t, `^\d{6}-02$`, next.Number)
}

func TestEngine_LogoUploadIsServed(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)
	admin, _ := bootstrapAdmin(api)

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "logo.png")
	require.NoError(t, err)
	_, err = part.Write(png)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/system-settings/logo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+admin)
	w, env := api.serve(req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var st handler.SettingsResponse
	require.NoError(t, json.Unmarshal(env.Data, &st))
	require.NotEmpty(t, st.LogoURL)

	w, _ = api.serve(httptest.NewRequest(http.MethodGet, st.LogoURL, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, png, w.Body.Bytes())

	req = httptest.NewRequest(http.MethodPost, "/api/v1/system-settings/logo", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w, _ = api.serve(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEngine_AuthRateLimit(t *testing.T) {
	api := newTestEngine(t, testConfig(t), middleware.NewRateLimiter(2, time.Minute))

	body := gin.H{"username": "nobody", "password": "nothing1"}
	for range 2 {
		w, _ := api.do(http.MethodPost, "/api/v1/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
	w, env := api.do(http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", env.Error.Code)

	// Other endpoints are not counted against the login budget
	w, _ = api.do(http.MethodGet, "/api/v1/auth/bootstrap", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEngine_CORS(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w, _ := api.serve(req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/auth/login", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w, _ = api.serve(req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestEngine_APIDocumentListsEveryRoute(t *testing.T) {
	api := newTestEngine(t, testConfig(t), nil)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	prefix := docs.SwaggerInfo.BasePath
	checked := 0
	for _, route := range api.engine.Routes() {
		if !strings.HasPrefix(route.Path, prefix+"/") {
			continue
		}
		path := strings.TrimPrefix(route.Path, prefix)
		path = strings.ReplaceAll(path, ":id", "{id}")
		ops, ok := doc.Paths[path]
		require.True(t, ok, "%s is not documented", path)
		assert.Contains(t, ops, strings.ToLower(route.Method), "%s %s", route.Method, path)
		checked++
	}
	assert.Greater(t, checked, 40)
}
