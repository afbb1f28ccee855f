package dto

import (
	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
)

// UserDTO is the public view of an account. The password digest never
// leaves the domain layer.
type UserDTO struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{ID: u.ID(), Username: u.Username()}
}

// TokenDTO is returned by a successful login.
type TokenDTO struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int64 `json:"expires_in" example:"1200"`
}
