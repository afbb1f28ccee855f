package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/services/markdown"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	OwnerID uint
	Offset  int
	Limit   int
}

// ListTicketsResult is one page of tickets plus the window actually applied.
type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Window  utils.Window
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	window, err := utils.NormalizeWindow(query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.List(ctx, query.OwnerID, ticket.ListFilter{
		Offset: window.Offset,
		Limit:  window.Limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "owner_id", query.OwnerID, "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketDTOList(tickets, uc.renderer),
		Window:  window,
	}, nil
}
