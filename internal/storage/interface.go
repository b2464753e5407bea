package storage

import (
	"context"

	"github.com/dicehall/accounts/internal/model"
)

// Storage defines the interface for account persistence.
// Usernames are matched exactly; no case folding or normalization.
// Implementations must make each operation atomic per username so
// concurrent registrations or updates for the same account cannot
// interleave.
type Storage interface {
	// CreateUser stores a new user. Returns model.ErrUsernameExists
	// if the username is already taken.
	CreateUser(ctx context.Context, user *model.User) error

	// GetUser returns the user for a username, or model.ErrUserNotFound.
	GetUser(ctx context.Context, username string) (*model.User, error)

	// UpdateUser applies mutate to the stored user under the store's
	// per-key lock. Returns model.ErrUserNotFound if the user is absent;
	// an error from mutate aborts the update.
	UpdateUser(ctx context.Context, username string, mutate func(*model.User) error) error

	// DeleteUser removes the user, or returns model.ErrUserNotFound.
	DeleteUser(ctx context.Context, username string) error
}
