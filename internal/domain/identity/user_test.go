package identity

import (
	"strings"
	"testing"

	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := NewUser("  alice  ", "secret1", []string{PermUsers}, false)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "secret1", user.PasswordHash)
		assert.True(t, user.VerifyPassword("secret1"))
		assert.False(t, user.VerifyPassword("secret2"))
		assert.Equal(t, []string{PermUsers}, user.Permissions)
		assert.False(t, user.IsAdmin)
	})

	t.Run("rejects short username", func(t *testing.T) {
		_, err := NewUser("a", "secret1", nil, false)

		assert.Equal(t, "INVALID_USERNAME", shared.CodeOf(err))
	})

	t.Run("counts username length in characters", func(t *testing.T) {
		_, err := NewUser("张三", "secret1", nil, false)

		assert.NoError(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("alice", "12345", nil, false)

		assert.Equal(t, "INVALID_PASSWORD", shared.CodeOf(err))
	})

	t.Run("rejects password longer than bcrypt accepts", func(t *testing.T) {
		_, err := NewUser("alice", strings.Repeat("x", 73), nil, false)

		assert.Equal(t, "INVALID_PASSWORD", shared.CodeOf(err))
	})

	t.Run("rejects unknown permissions", func(t *testing.T) {
		_, err := NewUser("alice", "secret1", []string{"admin"}, false)

		assert.ErrorIs(t, err, ErrInvalidPermission)
	})
}

func TestNewInitialAdmin(t *testing.T) {
	admin, err := NewInitialAdmin("root", "secret1")

	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.ElementsMatch(t, AllPermissions, admin.Permissions)
	assert.True(t, admin.Grants().IsAdministrator())
}

func TestUser_Grants(t *testing.T) {
	user, err := NewUser("bob", "secret1", []string{PermProjects}, false)
	require.NoError(t, err)

	g := user.Grants()
	g.Permissions[0] = PermUsers

	assert.Equal(t, user.ID, g.UserID)
	assert.Equal(t, []string{PermProjects}, user.Permissions)
}

func TestUser_RecordLogin(t *testing.T) {
	user, err := NewUser("bob", "secret1", nil, false)
	require.NoError(t, err)
	assert.Nil(t, user.LastLoginAt)

	user.RecordLogin()

	assert.NotNil(t, user.LastLoginAt)
}
