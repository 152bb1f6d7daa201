package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/auth"
	"github.com/erp/erp-system/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*identity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) DeleteUnlessLast(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) CreateInitialAdmin(ctx context.Context, admin *identity.User) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockUserRepository) BootstrapState(ctx context.Context) (identity.BootstrapState, error) {
	args := m.Called(ctx)
	return args.Get(0).(identity.BootstrapState), args.Error(1)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-that-is-long-enough",
		Expiration: time.Hour,
		Issuer:     "erp-test",
	})
}

func newTestAuthService(repo *MockUserRepository, blacklist auth.TokenBlacklist) *AuthService {
	return NewAuthService(repo, newTestJWTService(), blacklist, nil, zap.NewNop())
}

func mustUser(t *testing.T, username, password string, perms []string, isAdmin bool) *identity.User {
	t.Helper()
	u, err := identity.NewUser(username, password, perms, isAdmin)
	require.NoError(t, err)
	return u
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("successful login issues a token carrying the grants", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "alice", "secret1", []string{identity.PermContractsSales}, false)
		repo.On("FindByUsername", ctx, "alice").Return(user, nil)
		repo.On("UpdateLastLogin", ctx, user.ID, mock.AnythingOfType("time.Time")).Return(nil)

		svc := newTestAuthService(repo, auth.NewInMemoryTokenBlacklist())
		result, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "secret1"})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.True(t, result.ExpiresAt.After(time.Now()))
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotNil(t, user.LastLoginAt)

		claims, err := newTestJWTService().ValidateToken(result.Token)
		require.NoError(t, err)
		g := claims.Grants()
		assert.Equal(t, user.ID, g.UserID)
		assert.Equal(t, []string{identity.PermContractsSales}, g.Permissions)
		assert.False(t, g.IsAdmin)
		repo.AssertExpectations(t)
	})

	t.Run("login only stamps the login time", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "alice", "secret1", []string{identity.PermContractsSales}, false)
		repo.On("FindByUsername", ctx, "alice").Return(user, nil)
		repo.On("UpdateLastLogin", ctx, user.ID, mock.AnythingOfType("time.Time")).Return(nil)

		_, err := newTestAuthService(repo, auth.NewInMemoryTokenBlacklist()).
			Login(ctx, LoginInput{Username: "alice", Password: "secret1"})

		require.NoError(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("a failed timestamp write does not fail the login", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "alice", "secret1", nil, false)
		repo.On("FindByUsername", ctx, "alice").Return(user, nil)
		repo.On("UpdateLastLogin", ctx, user.ID, mock.Anything).Return(errors.New("connection reset"))

		result, err := newTestAuthService(repo, auth.NewInMemoryTokenBlacklist()).
			Login(ctx, LoginInput{Username: "alice", Password: "secret1"})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", ctx, "ghost").Return(nil, shared.ErrNotFound)

		svc := newTestAuthService(repo, auth.NewInMemoryTokenBlacklist())
		_, err := svc.Login(ctx, LoginInput{Username: "ghost", Password: "whatever"})

		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("wrong password does not touch the account", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "alice", "secret1", nil, false)
		repo.On("FindByUsername", ctx, "alice").Return(user, nil)

		svc := newTestAuthService(repo, auth.NewInMemoryTokenBlacklist())
		_, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "wrong-pass"})

		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
		repo.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty credentials", func(t *testing.T) {
		svc := newTestAuthService(new(MockUserRepository), auth.NewInMemoryTokenBlacklist())
		_, err := svc.Login(ctx, LoginInput{Username: "alice"})

		assert.Equal(t, "INVALID_INPUT", shared.CodeOf(err))
	})

	t.Run("storage failure is not reported as bad credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		boom := errors.New("connection refused")
		repo.On("FindByUsername", ctx, "alice").Return(nil, boom)

		svc := newTestAuthService(repo, auth.NewInMemoryTokenBlacklist())
		_, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "secret1"})

		assert.ErrorIs(t, err, boom)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	blacklist := auth.NewInMemoryTokenBlacklist()
	svc := newTestAuthService(new(MockUserRepository), blacklist)

	err := svc.Logout(ctx, LogoutInput{UserID: uuid.New(), TokenJTI: "jti-1", TokenTTL: time.Minute})
	require.NoError(t, err)

	revoked, err := blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.NoError(t, svc.Logout(ctx, LogoutInput{UserID: uuid.New()}))
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	user := mustUser(t, "alice", "secret1", nil, true)
	repo.On("FindByID", ctx, user.ID).Return(user, nil)
	deleted := uuid.New()
	repo.On("FindByID", ctx, deleted).Return(nil, shared.ErrNotFound)

	svc := newTestAuthService(repo, auth.NewInMemoryTokenBlacklist())

	info, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Username)
	assert.True(t, info.IsAdmin)
	assert.NotNil(t, info.Permissions)

	_, err = svc.Me(ctx, deleted)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAuthService_BootstrapStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		state           identity.BootstrapState
		count           int64
		wantHasUsers    bool
		wantInitialized bool
	}{
		{"fresh install", identity.BootstrapNoUsers, 0, false, false},
		{"initialized", identity.BootstrapAdminCreated, 2, true, true},
		{"initialized then emptied", identity.BootstrapAdminCreated, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			repo.On("BootstrapState", ctx).Return(tt.state, nil)
			repo.On("Count", ctx).Return(tt.count, nil)

			status, err := newTestAuthService(repo, auth.NewInMemoryTokenBlacklist()).BootstrapStatus(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.wantHasUsers, status.HasUsers)
			assert.Equal(t, tt.wantInitialized, status.Initialized)
		})
	}
}

func TestAuthService_InitAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an administrator with every permission", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("CreateInitialAdmin", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.Username == "root" && u.IsAdmin && len(u.Permissions) == len(identity.AllPermissions)
		})).Return(nil)

		info, err := newTestAuthService(repo, auth.NewInMemoryTokenBlacklist()).
			InitAdmin(ctx, InitAdminInput{Username: "root", Password: "secret1"})

		require.NoError(t, err)
		assert.True(t, info.IsAdmin)
		repo.AssertExpectations(t)
	})

	t.Run("closed gate", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("CreateInitialAdmin", ctx, mock.Anything).Return(identity.ErrAlreadyInitialized)

		_, err := newTestAuthService(repo, auth.NewInMemoryTokenBlacklist()).
			InitAdmin(ctx, InitAdminInput{Username: "root", Password: "secret1"})

		assert.ErrorIs(t, err, identity.ErrAlreadyInitialized)
	})

	t.Run("short password is rejected before storage", func(t *testing.T) {
		repo := new(MockUserRepository)

		_, err := newTestAuthService(repo, auth.NewInMemoryTokenBlacklist()).
			InitAdmin(ctx, InitAdminInput{Username: "root", Password: "123"})

		assert.Equal(t, "INVALID_PASSWORD", shared.CodeOf(err))
		repo.AssertNotCalled(t, "CreateInitialAdmin", mock.Anything, mock.Anything)
	})
}
