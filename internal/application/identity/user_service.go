package identity

import (
	"context"
	"errors"
	"time"

	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/auth"
	"github.com/erp/erp-system/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService manages user accounts
type UserService struct {
	userRepo  identity.UserRepository
	blacklist auth.TokenBlacklist
	tokenTTL  time.Duration
	metrics   *telemetry.BusinessMetrics
	logger    *zap.Logger
}

// NewUserService creates a new user service. tokenTTL bounds how long a
// revocation has to be remembered.
func NewUserService(
	userRepo identity.UserRepository,
	blacklist auth.TokenBlacklist,
	tokenTTL time.Duration,
	metrics *telemetry.BusinessMetrics,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		blacklist: blacklist,
		tokenTTL:  tokenTTL,
		metrics:   metrics,
		logger:    logger,
	}
}

// List returns every user, newest first
func (s *UserService) List(ctx context.Context) ([]UserInfo, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserInfo(u))
	}
	return out, nil
}

// Get returns a single user
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// Create creates a user. Only administrators may create administrators.
func (s *UserService) Create(ctx context.Context, caller identity.Grants, input CreateUserInput) (*UserInfo, error) {
	if input.IsAdmin && !caller.IsAdministrator() {
		return nil, identity.ErrAdminRequired
	}

	user, err := identity.NewUser(input.Username, input.Password, input.Permissions, input.IsAdmin)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, user.Username, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, identity.ErrDuplicateUsername
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, identity.ErrDuplicateUsername) {
			s.logger.Error("Failed to create user", zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("created_by", caller.UserID.String()))
	info := ToUserInfo(user)
	return &info, nil
}

// Update applies the supplied fields. Changing the password, the
// permissions or the admin flag revokes the user's existing tokens.
func (s *UserService) Update(ctx context.Context, caller identity.Grants, id uuid.UUID, input UpdateUserInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	changesAdmin := input.IsAdmin != nil && *input.IsAdmin != user.IsAdmin
	if (user.IsAdmin || changesAdmin) && !caller.IsAdministrator() {
		return nil, identity.ErrAdminRequired
	}

	revoke := false

	if input.Username != nil && *input.Username != user.Username {
		if err := user.Rename(*input.Username); err != nil {
			return nil, err
		}
		exists, err := s.userRepo.ExistsByUsername(ctx, user.Username, user.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, identity.ErrDuplicateUsername
		}
	}
	if input.Password != nil && *input.Password != "" {
		if err := user.SetPassword(*input.Password); err != nil {
			return nil, err
		}
		revoke = true
	}
	if input.Permissions != nil {
		if err := user.SetPermissions(*input.Permissions); err != nil {
			return nil, err
		}
		revoke = true
	}
	if input.IsAdmin != nil && *input.IsAdmin != user.IsAdmin {
		user.SetAdmin(*input.IsAdmin)
		revoke = true
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if revoke {
		s.revokeTokens(ctx, user.ID)
	}

	s.logger.Info("User updated",
		zap.String("user_id", user.ID.String()),
		zap.String("updated_by", caller.UserID.String()),
		zap.Bool("tokens_revoked", revoke))
	info := ToUserInfo(user)
	return &info, nil
}

// Delete removes a user. The last remaining user cannot be removed.
func (s *UserService) Delete(ctx context.Context, caller identity.Grants, id uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "user", "delete", telemetry.SpanAttrUserID, id.String())
	defer span.End()

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.IsAdmin && !caller.IsAdministrator() {
		return identity.ErrAdminRequired
	}

	if err := s.userRepo.DeleteUnlessLast(ctx, id); err != nil {
		if errors.Is(err, identity.ErrLastUser) {
			s.logger.Warn("Refusing to delete the last user", zap.String("user_id", id.String()))
		} else if !errors.Is(err, shared.ErrNotFound) {
			telemetry.RecordError(span, err)
		}
		return err
	}

	s.revokeTokens(ctx, id)
	s.metrics.RecordUserDeleted(ctx)
	s.logger.Info("User deleted",
		zap.String("user_id", id.String()),
		zap.String("deleted_by", caller.UserID.String()))
	return nil
}

func (s *UserService) revokeTokens(ctx context.Context, userID uuid.UUID) {
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), s.tokenTTL); err != nil {
		s.logger.Error("Failed to revoke user tokens",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
}
