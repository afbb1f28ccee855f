package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/database"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdesk-inc/helpdesk/internal/shared/constants"
	"github.com/helpdesk-inc/helpdesk/internal/shared/db"
	apperrors "github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

// likeEscaper escapes LIKE wildcards using '!' which MySQL, PostgreSQL and
// SQLite all accept as an explicit ESCAPE character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// TicketRepository stores tickets. Every query carries the owner in its
// WHERE clause.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := db.GetTxFromContext(ctx, r.db).Omit("Owner").Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(ownerID)).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(constants.ErrMsgTicketNotFound)
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, ownerID uint, filter ticket.ListFilter) ([]*ticket.Ticket, error) {
	var list []models.TicketModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(ownerID), db.Window(filter.Offset, filter.Limit)).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *TicketRepository) Search(ctx context.Context, ownerID uint, filter ticket.SearchFilter) ([]*ticket.Ticket, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Scopes(db.OwnedBy(ownerID))

	if filter.Title != "" {
		query = query.Where(r.containsClause("title"), containsPattern(filter.Title))
	}
	if filter.Description != "" {
		query = query.Where(r.containsClause("description"), containsPattern(filter.Description))
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.Int())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var list []models.TicketModel
	if err := query.
		Scopes(db.Window(filter.Offset, filter.Limit)).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to search tickets: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

// Update writes the mutable fields of t. Rows owned by someone else are
// never touched and yield NotFound.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Scopes(db.OwnedBy(t.OwnerID())).
		Where("id = ?", t.ID()).
		Select("title", "description", "priority", "status").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// MySQL reports 0 affected rows when nothing changed, so confirm the row exists.
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.TicketModel{}).
			Scopes(db.OwnedBy(t.OwnerID())).
			Where("id = ?", t.ID()).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError(constants.ErrMsgTicketNotFound)
		}
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id, ownerID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(ownerID)).
		Where("id = ?", id).
		Delete(&models.TicketModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(constants.ErrMsgTicketNotFound)
	}
	return nil
}

// containsClause folds the column and the pattern with the same SQL
// function, so matching never depends on Go and the database agreeing on case.
func (r *TicketRepository) containsClause(column string) string {
	return database.CaseFold(r.db, column) + " LIKE " + database.CaseFold(r.db, "?") + " ESCAPE '!'"
}

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
