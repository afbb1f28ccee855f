package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/services/markdown"
)

type DeleteTicketCommand struct {
	TicketID uint
	OwnerID  uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	txMgr      TransactionRunner
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	txMgr TransactionRunner,
	renderer markdown.Renderer,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		renderer:   renderer,
		logger:     logger,
	}
}

// Execute removes the ticket and returns it as it was just before deletion.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*dto.TicketDTO, error) {
	var deleted *ticket.Ticket
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID, cmd.OwnerID)
		if err != nil {
			return err
		}
		if err := uc.ticketRepo.Delete(txCtx, cmd.TicketID, cmd.OwnerID); err != nil {
			return err
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID, "owner_id", cmd.OwnerID)

	return dto.ToTicketDTO(deleted, uc.renderer), nil
}
