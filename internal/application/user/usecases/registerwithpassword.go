package usecases

import (
	"context"
	"errors"

	"github.com/helpdesk-inc/helpdesk/internal/application/user/dto"
	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/shared/constants"
	apperrors "github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils"
)

type RegisterWithPasswordCommand struct {
	Username string
	Password string
}

type RegisterWithPasswordUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*dto.UserDTO, error) {
	username := user.NormalizeUsername(cmd.Username)
	if err := user.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := user.ValidatePassword(cmd.Password); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError(constants.ErrMsgUsernameTaken)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	newUser, err := user.NewUser(username, hash)
	if err != nil {
		return nil, err
	}

	// the unique index decides concurrent registrations of the same name
	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return nil, apperrors.NewConflictError(constants.ErrMsgUsernameTaken)
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", utils.MaskUsername(username))

	return dto.ToUserDTO(newUser), nil
}
