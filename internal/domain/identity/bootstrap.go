package identity

import "github.com/erp/erp-system/internal/domain/shared"

// BootstrapState is the first-run state machine: NO_USERS -> ADMIN_CREATED.
// The transition is one-way; deleting users afterwards never reopens it.
type BootstrapState string

const (
	BootstrapNoUsers      BootstrapState = "NO_USERS"
	BootstrapAdminCreated BootstrapState = "ADMIN_CREATED"
)

// ResolveBootstrapState derives the state from the persisted marker and the
// current user count. A database that already has users but predates the
// marker counts as initialized.
func ResolveBootstrapState(markerSet bool, userCount int64) BootstrapState {
	if markerSet || userCount > 0 {
		return BootstrapAdminCreated
	}
	return BootstrapNoUsers
}

// CanCreateInitialAdmin reports whether the bootstrap path is still open
func (s BootstrapState) CanCreateInitialAdmin() bool {
	return s == BootstrapNoUsers
}

// Identity errors
var (
	ErrAlreadyInitialized = shared.NewDomainError("ALREADY_INITIALIZED", "系统已初始化，无法再次创建初始管理员")
	ErrLastUser           = shared.NewDomainError("LAST_USER", "不能删除最后一个用户")
	ErrDuplicateUsername  = shared.NewDomainError("DUPLICATE_USERNAME", "用户名已存在")
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "用户名或密码错误")
	ErrAdminRequired      = shared.NewDomainError("FORBIDDEN", "需要管理员权限")
	ErrPermissionDenied   = shared.NewDomainError("FORBIDDEN", "没有访问权限")
)
