package store

import (
	"context"
	"errors"

	"github.com/varunai/backend/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error, the
	// transaction is rolled back; otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByUsernameOrEmail is the pre-registration duplicate check. It
	// returns whichever record collides first; callers only care that one
	// exists.
	GetUserByUsernameOrEmail(ctx context.Context, username, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username or email is already taken,
	// which is what settles concurrent registrations racing on the same
	// identity.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateAvatar sets the avatar and bumps updated_at.
	UpdateAvatar(ctx context.Context, userID string, avatar string) error

	// ListUsersExcept returns every user other than the given one, ordered by
	// username. Backs the chat client's contact list.
	ListUsersExcept(ctx context.Context, userID string) ([]domain.User, error)

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)
}
