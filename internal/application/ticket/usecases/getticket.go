package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID uint
	OwnerID  uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

// Execute returns NotFound both for missing tickets and for tickets owned
// by someone else.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID, query.OwnerID)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTO(t, uc.renderer), nil
}
