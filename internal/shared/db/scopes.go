// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows belonging to ownerID.
//
//	db.Model(&models.TicketModel{}).Scopes(db.OwnedBy(ownerID)).Where("id = ?", id).First(&m)
func OwnedBy(ownerID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

// Window applies an offset/limit window. Callers normalize the values first.
func Window(offset, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(limit)
	}
}
