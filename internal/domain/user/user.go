package user

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

const (
	MaxUsernameLength = 150
	// bcrypt ignores everything past 72 bytes
	MaxPasswordBytes = 72
)

// User is a registered account. Identity and credentials never change
// after registration.
type User struct {
	id           uint
	username     string
	passwordHash string
}

// NormalizeUsername trims surrounding whitespace and converts the name to
// Unicode NFC so visually identical names compare equal. Case is kept.
func NormalizeUsername(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}

// ValidateUsername checks a normalized username.
func ValidateUsername(username string) error {
	if username == "" {
		return errors.NewValidationError("Username must not be empty")
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return errors.NewValidationError("Username is too long", "username must be at most 150 characters")
	}
	return nil
}

// ValidatePassword checks a plaintext password before hashing.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.NewValidationError("Password must not be empty")
	}
	if len(password) > MaxPasswordBytes {
		return errors.NewValidationError("Password is too long", "password must be at most 72 bytes")
	}
	return nil
}

// NewUser creates a user from a normalized username and an already computed
// password digest.
func NewUser(username, passwordHash string) (*User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errors.NewValidationError("Password hash is required")
	}

	return &User{
		username:     username,
		passwordHash: passwordHash,
	}, nil
}

// ReconstructUser rebuilds a persisted user.
func ReconstructUser(id uint, username, passwordHash string) (*User, error) {
	if id == 0 {
		return nil, errors.NewValidationError("user ID cannot be zero")
	}
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return errors.NewValidationError("user ID is already set")
	}
	if id == 0 {
		return errors.NewValidationError("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// VerifyPassword checks plain against the stored digest.
func (u *User) VerifyPassword(plain string, hasher PasswordHasher) error {
	return hasher.Verify(plain, u.passwordHash)
}
