package user

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (fakeHasher) Verify(password, hash string) error {
	if hash != "h:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  alice\t", "alice"},
		{"keeps case", "Alice", "Alice"},
		{"composes", "élodie", "élodie"},
		{"already composed", "élodie", "élodie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeUsername(tt.in))
		})
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("alice"))
	assert.NoError(t, ValidateUsername(strings.Repeat("é", MaxUsernameLength)))

	err := ValidateUsername("")
	assert.True(t, apperrors.IsValidationError(err))

	err = ValidateUsername(strings.Repeat("a", MaxUsernameLength+1))
	assert.True(t, apperrors.IsValidationError(err))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("abc123"))
	assert.NoError(t, ValidatePassword(strings.Repeat("p", MaxPasswordBytes)))
	assert.True(t, apperrors.IsValidationError(ValidatePassword("")))
	assert.True(t, apperrors.IsValidationError(ValidatePassword(strings.Repeat("p", MaxPasswordBytes+1))))
}

func TestNewUser(t *testing.T) {
	u, err := NewUser("alice", "h:secret")
	require.NoError(t, err)
	assert.Zero(t, u.ID())
	assert.Equal(t, "alice", u.Username())
	assert.Equal(t, "h:secret", u.PasswordHash())

	_, err = NewUser("", "h:secret")
	assert.Error(t, err)
	_, err = NewUser("alice", "")
	assert.Error(t, err)
}

func TestSetIDAndReconstruct(t *testing.T) {
	u, err := NewUser("alice", "h:secret")
	require.NoError(t, err)
	require.NoError(t, u.SetID(3))
	assert.Error(t, u.SetID(4))

	r, err := ReconstructUser(3, "alice", "h:secret")
	require.NoError(t, err)
	assert.Equal(t, uint(3), r.ID())

	_, err = ReconstructUser(0, "alice", "h:secret")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	u, err := NewUser("alice", "h:secret")
	require.NoError(t, err)

	assert.NoError(t, u.VerifyPassword("secret", fakeHasher{}))
	assert.Error(t, u.VerifyPassword("Secret", fakeHasher{}))
}
