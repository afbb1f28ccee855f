package usecases

import (
	"context"
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/application/user/dto"
	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/auth"
)

// TokenService issues and verifies access tokens.
type TokenService interface {
	Issue(username string, userID uint, ttl time.Duration) (string, error)
	Verify(token string) (*auth.Identity, error)
	TTL() time.Duration
}

// CredentialVerifier is a PasswordHasher that can also spend the time of a
// real comparison when there is no digest to compare against.
type CredentialVerifier interface {
	user.PasswordHasher
	VerifyDummy(password string)
}

type RegisterWithPasswordExecutor interface {
	Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*dto.UserDTO, error)
}

type LoginWithPasswordExecutor interface {
	Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*dto.TokenDTO, error)
}

type AuthenticateExecutor interface {
	Execute(ctx context.Context, token string) (*auth.Identity, error)
}
