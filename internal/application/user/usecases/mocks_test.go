package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/auth"
)

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

var errMismatch = errors.New("mismatch")

// mockHasher stores passwords as "hashed:" + plaintext.
type mockHasher struct {
	HashErr     error
	dummyCalled int
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errMismatch
	}
	return nil
}

func (m *mockHasher) VerifyDummy(string) {
	m.dummyCalled++
}

type mockTokenService struct {
	IssueFunc  func(username string, userID uint, ttl time.Duration) (string, error)
	VerifyFunc func(token string) (*auth.Identity, error)
	ttl        time.Duration
}

func (m *mockTokenService) Issue(username string, userID uint, ttl time.Duration) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(username, userID, ttl)
	}
	return "token-for-" + username, nil
}

func (m *mockTokenService) Verify(token string) (*auth.Identity, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	return nil, auth.ErrInvalidToken
}

func (m *mockTokenService) TTL() time.Duration {
	if m.ttl == 0 {
		return 20 * time.Minute
	}
	return m.ttl
}

func existingUser(id uint, username, password string) *user.User {
	u, err := user.ReconstructUser(id, username, "hashed:"+password)
	if err != nil {
		panic(err)
	}
	return u
}
