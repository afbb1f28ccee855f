package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	apperrors "github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

func TestRegisterWithPasswordUseCase_Execute_Success(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			return u.SetID(7)
		},
	}

	uc := NewRegisterWithPasswordUseCase(repo, &mockHasher{}, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Username: "  alice  ",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, "alice", result.Username)

	require.NotNil(t, saved)
	assert.Equal(t, "hashed:s3cret", saved.PasswordHash())
}

func TestRegisterWithPasswordUseCase_Execute_NormalizesToNFC(t *testing.T) {
	var checked string
	repo := &mockUserRepository{
		ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
			checked = username
			return false, nil
		},
	}

	uc := NewRegisterWithPasswordUseCase(repo, &mockHasher{}, logger.NewNopLogger())
	// "e" followed by a combining acute accent
	result, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Username: "jose\u0301",
		Password: "pw",
	})

	require.NoError(t, err)
	assert.Equal(t, "jos\u00e9", checked)
	assert.Equal(t, "jos\u00e9", result.Username)
}

func TestRegisterWithPasswordUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		command  RegisterWithPasswordCommand
		expected string
	}{
		{
			name:     "blank username",
			command:  RegisterWithPasswordCommand{Username: "   ", Password: "pw"},
			expected: "Username must not be empty",
		},
		{
			name:     "username too long",
			command:  RegisterWithPasswordCommand{Username: strings.Repeat("a", 151), Password: "pw"},
			expected: "Username is too long",
		},
		{
			name:     "empty password",
			command:  RegisterWithPasswordCommand{Username: "alice", Password: ""},
			expected: "Password must not be empty",
		},
		{
			name:     "password over 72 bytes",
			command:  RegisterWithPasswordCommand{Username: "alice", Password: strings.Repeat("p", 73)},
			expected: "Password is too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				CreateFunc: func(ctx context.Context, u *user.User) error {
					t.Fatal("Create must not be called")
					return nil
				},
			}
			uc := NewRegisterWithPasswordUseCase(repo, &mockHasher{}, logger.NewNopLogger())

			_, err := uc.Execute(context.Background(), tt.command)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestRegisterWithPasswordUseCase_Execute_Conflict(t *testing.T) {
	tests := []struct {
		name string
		repo *mockUserRepository
	}{
		{
			name: "pre-check finds existing username",
			repo: &mockUserRepository{
				ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
					return true, nil
				},
			},
		},
		{
			name: "concurrent registration wins the insert",
			repo: &mockUserRepository{
				CreateFunc: func(ctx context.Context, u *user.User) error {
					return fmt.Errorf("insert user: %w", user.ErrUsernameTaken)
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterWithPasswordUseCase(tt.repo, &mockHasher{}, logger.NewNopLogger())

			_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{Username: "alice", Password: "pw"})
			require.Error(t, err)
			assert.True(t, apperrors.IsConflictError(err))
			assert.Equal(t, 409, apperrors.GetAppError(err).Code)
		})
	}
}

func TestRegisterWithPasswordUseCase_Execute_InfrastructureErrors(t *testing.T) {
	dbErr := errors.New("connection refused")

	t.Run("existence check fails", func(t *testing.T) {
		repo := &mockUserRepository{
			ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
				return false, dbErr
			},
		}
		uc := NewRegisterWithPasswordUseCase(repo, &mockHasher{}, logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{Username: "alice", Password: "pw"})
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, apperrors.IsAppError(err))
	})

	t.Run("hashing fails", func(t *testing.T) {
		uc := NewRegisterWithPasswordUseCase(&mockUserRepository{}, &mockHasher{HashErr: dbErr}, logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{Username: "alice", Password: "pw"})
		assert.ErrorIs(t, err, dbErr)
	})
}
