package main

import (
	"context"
	"fmt"

	contractapp "github.com/erp/erp-system/internal/application/contract"
	financeapp "github.com/erp/erp-system/internal/application/finance"
	identityapp "github.com/erp/erp-system/internal/application/identity"
	partnerapp "github.com/erp/erp-system/internal/application/partner"
	projectapp "github.com/erp/erp-system/internal/application/project"
	settingsapp "github.com/erp/erp-system/internal/application/settings"
	"github.com/erp/erp-system/internal/domain/numbering"
	"github.com/erp/erp-system/internal/domain/settings"
	"github.com/erp/erp-system/internal/infrastructure/auth"
	"github.com/erp/erp-system/internal/infrastructure/config"
	"github.com/erp/erp-system/internal/infrastructure/persistence"
	"github.com/erp/erp-system/internal/infrastructure/storage"
	"github.com/erp/erp-system/internal/infrastructure/telemetry"
	"github.com/erp/erp-system/internal/interfaces/http/handler"
	"github.com/erp/erp-system/internal/interfaces/http/middleware"
	"github.com/erp/erp-system/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// application holds the assembled services and the resources to release
// on shutdown
type application struct {
	jwt             *auth.JWTService
	blacklist       auth.TokenBlacklist
	rateLimiter     *middleware.RateLimiter
	authRateLimiter *middleware.RateLimiter
	handlers        router.Handlers
	closers         []func() error
	log             *zap.Logger
}

func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Error("Error releasing resource", zap.Error(err))
		}
	}
}

func wire(
	ctx context.Context,
	cfg *config.Config,
	db *persistence.Database,
	mp *telemetry.MeterProvider,
	log *zap.Logger,
) (*application, error) {
	app := &application{log: log}

	metrics, err := telemetry.NewBusinessMetrics(mp.Meter("erp-system"))
	if err != nil {
		return nil, fmt.Errorf("failed to register business metrics: %w", err)
	}

	userRepo := persistence.NewGormUserRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	sequenceRepo := persistence.NewGormSequenceRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)

	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.blacklist = redisBlacklist
		app.closers = append(app.closers, redisBlacklist.Close)
		log.Info("Token blacklist backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		app.blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Token blacklist kept in memory")
	}

	logos, err := newLogoStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	numberOpts := financeapp.NumberingOptions{
		MaxRetries: cfg.Numbering.MaxRetries,
		Location:   cfg.App.Location(),
	}
	invoiceNumbers := financeapp.NewNumberGenerator(numbering.SpaceInvoice, sequenceRepo, invoiceRepo, numberOpts, metrics, log)
	paymentNumbers := financeapp.NewNumberGenerator(numbering.SpacePayment, sequenceRepo, paymentRepo, numberOpts, metrics, log)

	app.jwt = auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, app.jwt, app.blacklist, metrics, log)
	userService := identityapp.NewUserService(userRepo, app.blacklist, cfg.JWT.Expiration, metrics, log)
	clientService := partnerapp.NewClientService(clientRepo, log)
	projectService := projectapp.NewProjectService(projectRepo, contractRepo, clientRepo, log)
	contractService := contractapp.NewContractService(contractRepo, clientRepo, projectRepo, invoiceRepo, paymentRepo, log)
	invoiceService := financeapp.NewInvoiceService(invoiceRepo, clientRepo, contractRepo, invoiceNumbers, log)
	paymentService := financeapp.NewPaymentService(paymentRepo, invoiceRepo, clientRepo, contractRepo, paymentNumbers, log)
	settingsService := settingsapp.NewSettingsService(settingsRepo, logos, settingsapp.UploadOptions{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}, log)

	app.handlers = router.Handlers{
		System:     handler.NewSystemHandler(cfg.App.Name, version, db),
		Auth:       handler.NewAuthHandler(authService, cfg.Cookie, log),
		User:       handler.NewUserHandler(userService, log),
		Client:     handler.NewClientHandler(clientService, log),
		Project:    handler.NewProjectHandler(projectService, log),
		Contract:   handler.NewContractHandler(contractService, log),
		Invoice:    handler.NewInvoiceHandler(invoiceService, log),
		Payment:    handler.NewPaymentHandler(paymentService, log),
		Settings:   handler.NewSettingsHandler(settingsService, log),
		Navigation: handler.NewNavigationHandler(),
	}

	if cfg.HTTP.RateLimitEnabled {
		app.rateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		go app.rateLimiter.StartCleanup(ctx)
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}
	if cfg.HTTP.AuthRateLimitEnabled {
		app.authRateLimiter = middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		go app.authRateLimiter.StartCleanup(ctx)
	}

	return app, nil
}

func newLogoStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (settings.LogoStorage, error) {
	if cfg.Upload.Backend == config.UploadBackendS3 {
		s3Storage, err := storage.NewS3LogoStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 logo storage: %w", err)
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("failed to prepare logo bucket: %w", err)
		}
		log.Info("Logos stored in object storage", zap.String("bucket", cfg.Storage.Bucket))
		return s3Storage, nil
	}

	local, err := storage.NewLocalLogoStorage(cfg.Upload.Dir, cfg.Upload.PublicPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create local logo storage: %w", err)
	}
	log.Info("Logos stored on disk", zap.String("dir", cfg.Upload.Dir))
	return local, nil
}
