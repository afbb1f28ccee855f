package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/services/markdown"
)

// UpdateTicketCommand applies a partial update. Nil fields are left as is.
type UpdateTicketCommand struct {
	TicketID    uint
	OwnerID     uint
	Title       *string
	Description *string
	Priority    *int
	Status      *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	txMgr      TransactionRunner
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	txMgr TransactionRunner,
	renderer markdown.Renderer,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	patch := ticket.Patch{
		Title:       cmd.Title,
		Description: cmd.Description,
		Priority:    cmd.Priority,
		Status:      cmd.Status,
	}

	var updated *ticket.Ticket
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID, cmd.OwnerID)
		if err != nil {
			return err
		}
		if err := existing.Apply(patch); err != nil {
			return err
		}
		if err := uc.ticketRepo.Update(txCtx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", updated.ID(), "owner_id", cmd.OwnerID)

	return dto.ToTicketDTO(updated, uc.renderer), nil
}
