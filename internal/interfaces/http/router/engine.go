package router

import (
	"github.com/erp/erp-system/internal/infrastructure/auth"
	"github.com/erp/erp-system/internal/infrastructure/config"
	"github.com/erp/erp-system/internal/infrastructure/logger"
	"github.com/erp/erp-system/internal/infrastructure/telemetry"
	"github.com/erp/erp-system/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Options carries what the engine needs besides the handlers
type Options struct {
	Config        *config.Config
	Logger        *zap.Logger
	JWTService    *auth.JWTService
	Blacklist     auth.TokenBlacklist
	MeterProvider *telemetry.MeterProvider
	// RateLimiter and AuthRateLimiter are optional
	RateLimiter     *middleware.RateLimiter
	AuthRateLimiter *middleware.RateLimiter
}

// NewEngine builds the gin engine with the global middleware chain, the
// unversioned endpoints and the /api/v1 routes
func NewEngine(opts Options, h Handlers) *gin.Engine {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Warn("Invalid trusted proxies, trusting none", zap.Error(err))
		_ = engine.SetTrustedProxies(nil)
	}
	middleware.SetupValidator()

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}

	secure := middleware.DefaultSecurityConfig()
	secure.HSTSEnabled = cfg.App.Env == "production"
	engine.Use(middleware.SecureWithConfig(secure))

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(cors))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if opts.RateLimiter != nil {
		engine.Use(middleware.RateLimit(opts.RateLimiter))
	}
	if opts.MeterProvider != nil && opts.MeterProvider.IsEnabled() {
		engine.Use(middleware.HTTPMetrics(opts.MeterProvider, log))
	}
	engine.Use(middleware.ProfilingWithConfig(middleware.ProfilingConfig{
		Enabled:          cfg.Telemetry.ProfilingEnabled,
		SkipPathPrefixes: []string{"/health", "/swagger", "/uploads"},
	}))

	if h.System != nil {
		engine.GET("/health", h.System.Health)
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{Enabled: cfg.Swagger.Enabled}),
		ginSwagger.WrapHandler(swaggerFiles.Handler))
	if cfg.Upload.Backend == config.UploadBackendLocal && cfg.Upload.Dir != "" {
		engine.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)
	}

	jwtCfg := middleware.DefaultJWTConfig(opts.JWTService)
	jwtCfg.TokenBlacklist = opts.Blacklist
	jwtCfg.CookieName = cfg.Cookie.Name
	jwtCfg.Logger = log

	var authLimit gin.HandlerFunc
	if opts.AuthRateLimiter != nil {
		authLimit = middleware.RateLimit(opts.AuthRateLimiter)
	}

	r := NewRouter(engine,
		WithAPIVersion("v1"),
		WithMiddleware(
			middleware.JWTAuthMiddlewareWithConfig(jwtCfg),
			middleware.TracingAttributeInjector(),
		),
	)
	r.Register(
		authRoutes(h.Auth, authLimit),
		userRoutes(h.User, h.Auth),
		navigationRoutes(h.Navigation),
		clientRoutes(h.Client),
		projectRoutes(h.Project),
		contractRoutes(h.Contract),
		invoiceRoutes(h.Invoice),
		paymentRoutes(h.Payment),
		settingsRoutes(h.Settings),
	)
	if h.System != nil {
		r.Register(systemRoutes(h.System))
	}
	r.Setup()

	return engine
}
