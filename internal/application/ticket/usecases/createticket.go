package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/services/markdown"
)

// CreateTicketCommand carries the new ticket's fields. OwnerID always comes
// from the authenticated identity, never from the request body.
type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    int
	OwnerID     uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.Priority, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "owner_id", cmd.OwnerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "owner_id", cmd.OwnerID)

	return dto.ToTicketDTO(newTicket, uc.renderer), nil
}
