package models

import "github.com/helpdesk-inc/helpdesk/internal/shared/constants"

// UserModel is the persistence row for a registered account.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:150;not null;uniqueIndex:uk_users_username"`
	PasswordHash string `gorm:"size:255;not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
