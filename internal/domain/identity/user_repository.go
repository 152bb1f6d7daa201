package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user. A taken username yields ErrDuplicateUsername.
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// UpdateLastLogin stamps the login time without touching any other column
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername checks if a username already exists, ignoring excludeID
	ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)

	// FindAll returns every user ordered by creation time, newest first
	FindAll(ctx context.Context) ([]*User, error)

	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)

	// DeleteUnlessLast removes the user unless it is the only one left.
	// The count and the delete happen under the same lock, so two
	// concurrent deletes cannot empty the table.
	DeleteUnlessLast(ctx context.Context, id uuid.UUID) error

	// CreateInitialAdmin creates admin and closes the bootstrap gate in one
	// transaction. It fails with ErrAlreadyInitialized once the gate is closed.
	CreateInitialAdmin(ctx context.Context, admin *User) error

	// BootstrapState reports where the first-run state machine stands
	BootstrapState(ctx context.Context) (BootstrapState, error)
}
