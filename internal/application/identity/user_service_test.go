package identity

import (
	"context"
	"testing"
	"time"

	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	adminCaller   = identity.Grants{UserID: uuid.New(), Username: "root", IsAdmin: true}
	managerCaller = identity.Grants{UserID: uuid.New(), Username: "hr", Permissions: []string{identity.PermUsers}}
)

func newTestUserService(repo *MockUserRepository, blacklist auth.TokenBlacklist) *UserService {
	return NewUserService(repo, blacklist, time.Hour, nil, zap.NewNop())
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with normalized permissions", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsername", ctx, "bob", uuid.Nil).Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		info, err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).Create(ctx, managerCaller, CreateUserInput{
			Username:    " bob ",
			Password:    "secret1",
			Permissions: []string{identity.PermUsers, identity.PermProjects, identity.PermUsers},
		})

		require.NoError(t, err)
		assert.Equal(t, "bob", info.Username)
		assert.Equal(t, []string{identity.PermProjects, identity.PermUsers}, info.Permissions)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsername", ctx, "bob", uuid.Nil).Return(true, nil)

		_, err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).Create(ctx, managerCaller, CreateUserInput{
			Username: "bob",
			Password: "secret1",
		})

		assert.ErrorIs(t, err, identity.ErrDuplicateUsername)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid permission lists the offender", func(t *testing.T) {
		_, err := newTestUserService(new(MockUserRepository), auth.NewInMemoryTokenBlacklist()).Create(ctx, managerCaller, CreateUserInput{
			Username:    "bob",
			Password:    "secret1",
			Permissions: []string{"reports.export"},
		})

		assert.ErrorIs(t, err, identity.ErrInvalidPermission)
		assert.Contains(t, err.Error(), "reports.export")
	})

	t.Run("only administrators create administrators", func(t *testing.T) {
		_, err := newTestUserService(new(MockUserRepository), auth.NewInMemoryTokenBlacklist()).Create(ctx, managerCaller, CreateUserInput{
			Username: "bob",
			Password: "secret1",
			IsAdmin:  true,
		})

		assert.ErrorIs(t, err, identity.ErrAdminRequired)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only supplied fields", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "bob", "secret1", []string{identity.PermProjects}, false)
		oldHash := user.PasswordHash
		repo.On("FindByID", ctx, user.ID).Return(user, nil)
		repo.On("ExistsByUsername", ctx, "robert", user.ID).Return(false, nil)
		repo.On("Update", ctx, user).Return(nil)

		blacklist := auth.NewInMemoryTokenBlacklist()
		name := "robert"
		info, err := newTestUserService(repo, blacklist).Update(ctx, managerCaller, user.ID, UpdateUserInput{Username: &name})

		require.NoError(t, err)
		assert.Equal(t, "robert", info.Username)
		assert.Equal(t, []string{identity.PermProjects}, info.Permissions)
		assert.Equal(t, oldHash, user.PasswordHash)

		revoked, err := blacklist.IsUserTokenInvalidated(ctx, user.ID.String(), time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.False(t, revoked, "renaming keeps sessions")
	})

	t.Run("permission change revokes existing tokens", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "bob", "secret1", []string{identity.PermProjects}, false)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)
		repo.On("Update", ctx, user).Return(nil)

		blacklist := auth.NewInMemoryTokenBlacklist()
		perms := []string{identity.PermInvoicesIssued}
		issuedBefore := time.Now().Add(-time.Minute)
		_, err := newTestUserService(repo, blacklist).Update(ctx, managerCaller, user.ID, UpdateUserInput{Permissions: &perms})
		require.NoError(t, err)

		assert.Equal(t, []string{identity.PermInvoicesIssued}, user.Permissions)
		revoked, err := blacklist.IsUserTokenInvalidated(ctx, user.ID.String(), issuedBefore)
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("password change", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "bob", "secret1", nil, false)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)
		repo.On("Update", ctx, user).Return(nil)

		pw := "new-secret"
		_, err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).Update(ctx, managerCaller, user.ID, UpdateUserInput{Password: &pw})

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("new-secret"))
	})

	t.Run("taken username", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "bob", "secret1", nil, false)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)
		repo.On("ExistsByUsername", ctx, "alice", user.ID).Return(true, nil)

		name := "alice"
		_, err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).Update(ctx, managerCaller, user.ID, UpdateUserInput{Username: &name})

		assert.ErrorIs(t, err, identity.ErrDuplicateUsername)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("non-admin cannot grant admin", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "bob", "secret1", nil, false)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)

		yes := true
		_, err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).Update(ctx, managerCaller, user.ID, UpdateUserInput{IsAdmin: &yes})

		assert.ErrorIs(t, err, identity.ErrAdminRequired)
	})

	t.Run("unchanged admin flag needs no administrator", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "bob", "secret1", []string{identity.PermProjects}, false)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)
		repo.On("Update", ctx, user).Return(nil)

		// edit forms send the whole record back, admin flag included
		no := false
		perms := []string{identity.PermProjects, identity.PermInvoicesIssued}
		info, err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).
			Update(ctx, managerCaller, user.ID, UpdateUserInput{Permissions: &perms, IsAdmin: &no})

		require.NoError(t, err)
		assert.False(t, info.IsAdmin)
		assert.ElementsMatch(t, perms, info.Permissions)
		repo.AssertExpectations(t)
	})

	t.Run("non-admin cannot revoke admin", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "root", "secret1", nil, true)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)

		no := false
		_, err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).Update(ctx, managerCaller, user.ID, UpdateUserInput{IsAdmin: &no})

		assert.ErrorIs(t, err, identity.ErrAdminRequired)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin can grant admin", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "bob", "secret1", nil, false)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)
		repo.On("Update", ctx, user).Return(nil)

		yes := true
		info, err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).Update(ctx, adminCaller, user.ID, UpdateUserInput{IsAdmin: &yes})

		require.NoError(t, err)
		assert.True(t, info.IsAdmin)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and revokes", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "bob", "secret1", nil, false)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("DeleteUnlessLast", mock.Anything, user.ID).Return(nil)

		blacklist := auth.NewInMemoryTokenBlacklist()
		issuedBefore := time.Now().Add(-time.Minute)
		require.NoError(t, newTestUserService(repo, blacklist).Delete(ctx, managerCaller, user.ID))

		revoked, err := blacklist.IsUserTokenInvalidated(ctx, user.ID.String(), issuedBefore)
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("last user is protected", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "root", "secret1", nil, true)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("DeleteUnlessLast", mock.Anything, user.ID).Return(identity.ErrLastUser)

		err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).Delete(ctx, adminCaller, user.ID)

		assert.ErrorIs(t, err, identity.ErrLastUser)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := new(MockUserRepository)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).Delete(ctx, adminCaller, id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "DeleteUnlessLast", mock.Anything, mock.Anything)
	})

	t.Run("non-admin cannot delete an administrator", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := mustUser(t, "root", "secret1", nil, true)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).Delete(ctx, managerCaller, user.ID)

		assert.ErrorIs(t, err, identity.ErrAdminRequired)
	})
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("FindAll", ctx).Return([]*identity.User{
		mustUser(t, "bob", "secret1", nil, false),
		mustUser(t, "alice", "secret1", nil, true),
	}, nil)

	users, err := newTestUserService(repo, auth.NewInMemoryTokenBlacklist()).List(ctx)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[0].Username)
	assert.Empty(t, users[0].Permissions)
}
