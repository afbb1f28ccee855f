package mappers

import (
	"fmt"

	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/models"
)

// UserMapper converts between the user entity and its persistence model.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToEntity(model *models.UserModel) (*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
	}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	u, err := user.ReconstructUser(model.ID, model.Username, model.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return u, nil
}
