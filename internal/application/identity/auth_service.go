package identity

import (
	"context"
	"errors"

	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/auth"
	"github.com/erp/erp-system/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles login, logout and first-run setup
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	metrics    *telemetry.BusinessMetrics
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service.
// metrics may be nil.
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	metrics *telemetry.BusinessMetrics,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		metrics:    metrics,
		logger:     logger,
	}
}

// Login authenticates a user and issues a session token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "auth", "login")
	defer span.End()

	s.logger.Info("Login attempt", zap.String("username", input.Username))

	if input.Username == "" || input.Password == "" {
		s.metrics.RecordLogin(ctx, telemetry.LoginFailed)
		return nil, shared.NewDomainError("INVALID_INPUT", "用户名和密码不能为空")
	}

	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Error("Failed to look up user", zap.Error(err))
			telemetry.RecordError(span, err)
			return nil, err
		}
		s.logger.Warn("User not found during login", zap.String("username", input.Username))
		s.metrics.RecordLogin(ctx, telemetry.LoginFailed)
		return nil, identity.ErrInvalidCredentials
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", input.Username))
		s.metrics.RecordLogin(ctx, telemetry.LoginFailed)
		return nil, identity.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:      user.ID,
		Username:    user.Username,
		Permissions: user.Permissions,
		IsAdmin:     user.IsAdmin,
	})
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	user.RecordLogin()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, *user.LastLoginAt); err != nil {
		// Login still succeeds; only the timestamp is lost
		s.logger.Error("Failed to record last login", zap.Error(err))
	}

	s.metrics.RecordLogin(ctx, telemetry.LoginSucceeded)
	telemetry.SetAttributes(span, telemetry.SpanAttrUserID, user.ID.String())
	s.logger.Info("User logged in successfully",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))

	return &LoginResult{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		User:      ToUserInfo(user),
	}, nil
}

// Logout revokes the presented token until it would have expired
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI == "" || input.TokenTTL <= 0 {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, input.TokenTTL); err != nil {
		s.logger.Error("Failed to blacklist token",
			zap.String("user_id", input.UserID.String()),
			zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
	}
	s.logger.Info("User logged out", zap.String("user_id", input.UserID.String()))
	return nil
}

// Me re-reads the caller's account from storage
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// BootstrapStatus reports whether the initial administrator may still be created
func (s *AuthService) BootstrapStatus(ctx context.Context) (*BootstrapStatus, error) {
	state, err := s.userRepo.BootstrapState(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &BootstrapStatus{
		HasUsers:    count > 0,
		Initialized: !state.CanCreateInitialAdmin(),
		State:       state,
	}, nil
}

// HasUsers reports whether any account exists
func (s *AuthService) HasUsers(ctx context.Context) (bool, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InitAdmin creates the first administrator. It succeeds at most once for
// the lifetime of the database.
func (s *AuthService) InitAdmin(ctx context.Context, input InitAdminInput) (*UserInfo, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "auth", "init_admin")
	defer span.End()

	admin, err := identity.NewInitialAdmin(input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateInitialAdmin(ctx, admin); err != nil {
		if errors.Is(err, identity.ErrAlreadyInitialized) {
			s.logger.Warn("Initial admin creation rejected, system already initialized",
				zap.String("username", admin.Username))
		} else {
			s.logger.Error("Failed to create initial admin", zap.Error(err))
			telemetry.RecordError(span, err)
		}
		return nil, err
	}

	s.logger.Info("Initial administrator created",
		zap.String("username", admin.Username),
		zap.String("user_id", admin.ID.String()))
	info := ToUserInfo(admin)
	return &info, nil
}
