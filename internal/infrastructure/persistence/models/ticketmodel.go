package models

import (
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/shared/constants"
)

type TicketModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text;not null"`
	Priority    int       `gorm:"not null"`
	Status      string    `gorm:"size:20;not null;default:open;index:idx_tickets_owner_status,priority:2"`
	Created     time.Time `gorm:"type:date;not null"`
	OwnerID     uint      `gorm:"not null;index:idx_tickets_owner_status,priority:1"`

	Owner *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
