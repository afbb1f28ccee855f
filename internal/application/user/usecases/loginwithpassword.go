package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/application/user/dto"
	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/shared/constants"
	apperrors "github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils"
)

type LoginWithPasswordCommand struct {
	Username string
	Password string
}

type LoginWithPasswordUseCase struct {
	userRepo user.Repository
	hasher   CredentialVerifier
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher CredentialVerifier,
	tokens TokenService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute exchanges credentials for an access token. Unknown usernames and
// wrong passwords produce the same error.
func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*dto.TokenDTO, error) {
	username := user.NormalizeUsername(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	existingUser, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, err
	}

	if existingUser == nil {
		uc.hasher.VerifyDummy(cmd.Password)
		uc.logger.Warnw("login attempt for unknown user", "username", utils.MaskUsername(username))
		return nil, apperrors.NewInvalidCredentialsError()
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", existingUser.ID())
		return nil, apperrors.NewInvalidCredentialsError()
	}

	ttl := uc.tokens.TTL()
	token, err := uc.tokens.Issue(existingUser.Username(), existingUser.ID(), ttl)
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", existingUser.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &dto.TokenDTO{
		AccessToken: token,
		TokenType:   constants.TokenType,
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}
