package persistence

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, username string) *identity.User {
	t.Helper()
	u, err := identity.NewUser(username, "secret123", []string{identity.PermClientsCustomers}, false)
	require.NoError(t, err)
	return u
}

func TestGormUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "alice")
	require.NoError(t, repo.Create(ctx, user))

	t.Run("find by id keeps permissions", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", found.Username)
		assert.Equal(t, []string{identity.PermClientsCustomers}, found.Permissions)
		assert.True(t, found.VerifyPassword("secret123"))
	})

	t.Run("find by username", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		_, err = repo.FindByUsername(ctx, "bob")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, newTestUser(t, "alice"))
		assert.ErrorIs(t, err, identity.ErrDuplicateUsername)
	})

	t.Run("exists ignores the excluded user", func(t *testing.T) {
		exists, err := repo.ExistsByUsername(ctx, "alice", user.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByUsername(ctx, "alice", uuid.Nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, user.SetPermissions([]string{identity.PermUsers, identity.PermProjects}))
		user.SetAdmin(true)
		require.NoError(t, repo.Update(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, found.IsAdmin)
		assert.ElementsMatch(t, []string{identity.PermUsers, identity.PermProjects}, found.Permissions)
	})

	t.Run("update of a missing user", func(t *testing.T) {
		err := repo.Update(ctx, newTestUser(t, "ghost"))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepository_UpdateLastLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "alice")
	require.NoError(t, repo.Create(ctx, user))

	// a login read the row before an admin revoked the permissions
	stale, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, user.SetPermissions(nil))
	require.NoError(t, repo.Update(ctx, user))

	at := time.Date(2026, 2, 3, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateLastLogin(ctx, stale.ID, at))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Permissions)
	require.NotNil(t, found.LastLoginAt)
	assert.True(t, found.LastLoginAt.Equal(at))

	assert.ErrorIs(t, repo.UpdateLastLogin(ctx, uuid.New(), at), shared.ErrNotFound)
}

func TestGormUserRepository_DeleteUnlessLast(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	a := newTestUser(t, "alice")
	b := newTestUser(t, "bob")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.DeleteUnlessLast(ctx, a.ID))

	err := repo.DeleteUnlessLast(ctx, b.ID)
	assert.ErrorIs(t, err, identity.ErrLastUser)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.ErrorIs(t, repo.DeleteUnlessLast(ctx, uuid.New()), shared.ErrNotFound)
}

func TestGormUserRepository_ConcurrentDeletesKeepOneUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	a := newTestUser(t, "alice")
	b := newTestUser(t, "bob")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uuid.UUID{a.ID, b.ID} {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			errs[i] = repo.DeleteUnlessLast(ctx, id)
		}(i, id)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, identity.ErrLastUser)
			failures++
		}
	}
	assert.Equal(t, 1, failures)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormUserRepository_Bootstrap(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	state, err := repo.BootstrapState(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity.BootstrapNoUsers, state)

	admin, err := identity.NewInitialAdmin("admin", "secret123")
	require.NoError(t, err)
	require.NoError(t, repo.CreateInitialAdmin(ctx, admin))

	state, err = repo.BootstrapState(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity.BootstrapAdminCreated, state)

	t.Run("second call is rejected", func(t *testing.T) {
		again, err := identity.NewInitialAdmin("admin2", "secret123")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.CreateInitialAdmin(ctx, again), identity.ErrAlreadyInitialized)
	})

	t.Run("gate stays closed after users are gone", func(t *testing.T) {
		require.NoError(t, db.Where("1 = 1").Delete(&models.UserModel{}).Error)

		state, err := repo.BootstrapState(ctx)
		require.NoError(t, err)
		assert.Equal(t, identity.BootstrapAdminCreated, state)

		again, err := identity.NewInitialAdmin("admin3", "secret123")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.CreateInitialAdmin(ctx, again), identity.ErrAlreadyInitialized)
	})
}

func TestGormUserRepository_BootstrapWithExistingUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser(t, "legacy")))

	state, err := repo.BootstrapState(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity.BootstrapAdminCreated, state)

	admin, err := identity.NewInitialAdmin("admin", "secret123")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.CreateInitialAdmin(ctx, admin), identity.ErrAlreadyInitialized)
}

func TestGormUserRepository_ConcurrentInitialAdmin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	const callers = 5
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		admin, err := identity.NewInitialAdmin("admin"+string(rune('a'+i)), "secret123")
		require.NoError(t, err)
		wg.Add(1)
		go func(i int, admin *identity.User) {
			defer wg.Done()
			errs[i] = repo.CreateInitialAdmin(ctx, admin)
		}(i, admin)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, identity.ErrAlreadyInitialized)
		}
	}
	assert.Equal(t, 1, succeeded)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormUserRepository_DeleteUnlessLast_LocksSettingsRow(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormUserRepository(gormDB)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "system_settings" .* ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "system_settings" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_name"}).AddRow(1, "Acme"))
	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.DeleteUnlessLast(context.Background(), id)

	assert.ErrorIs(t, err, identity.ErrLastUser)
	assert.NoError(t, mock.ExpectationsWereMet())
}
