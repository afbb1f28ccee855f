package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/auth"
	apperrors "github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

// AuthenticateUseCase resolves a bearer token to the calling identity. It
// does not touch storage: a token stays valid until it expires.
type AuthenticateUseCase struct {
	tokens TokenService
	logger logger.Interface
}

func NewAuthenticateUseCase(tokens TokenService, logger logger.Interface) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		tokens: tokens,
		logger: logger,
	}
}

func (uc *AuthenticateUseCase) Execute(_ context.Context, token string) (*auth.Identity, error) {
	if token == "" {
		return nil, apperrors.NewMissingTokenError()
	}

	identity, err := uc.tokens.Verify(token)
	if err != nil {
		uc.logger.Debugw("rejected access token", "error", err)
		return nil, apperrors.NewTokenInvalidError()
	}
	return identity, nil
}
