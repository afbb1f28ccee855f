package user

import (
	"context"
	"errors"
)

// ErrUsernameTaken is returned by Create when the username is already
// registered, including when a concurrent registration wins the race.
var ErrUsernameTaken = errors.New("username already exists")

// Repository defines the interface for user data operations
type Repository interface {
	// Create inserts the user and assigns its ID.
	Create(ctx context.Context, user *User) error

	// GetByID returns nil, nil when no user has the ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUsername returns nil, nil when no user has the exact username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername checks if a username is already registered
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// PasswordHasher produces and checks one-way password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
