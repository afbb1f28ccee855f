package usecases

import (
	"context"
	"strings"

	"github.com/helpdesk-inc/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/services/markdown"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils"
)

// SearchTicketsQuery holds optional filters. Empty strings and nil
// pointers match everything.
type SearchTicketsQuery struct {
	OwnerID     uint
	Title       string
	Description string
	Priority    *int
	Status      *string
	Offset      int
	Limit       int
}

type SearchTicketsUseCase struct {
	ticketRepo ticket.Repository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewSearchTicketsUseCase(
	ticketRepo ticket.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *SearchTicketsUseCase {
	return &SearchTicketsUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *SearchTicketsUseCase) Execute(ctx context.Context, query SearchTicketsQuery) (*ListTicketsResult, error) {
	window, err := utils.NormalizeWindow(query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	filter := ticket.SearchFilter{
		ListFilter:  ticket.ListFilter{Offset: window.Offset, Limit: window.Limit},
		Title:       strings.TrimSpace(query.Title),
		Description: strings.TrimSpace(query.Description),
	}

	if query.Priority != nil {
		p, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("Invalid priority", err.Error())
		}
		filter.Priority = &p
	}
	if query.Status != nil {
		s, err := vo.NewTicketStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError("Invalid status", err.Error())
		}
		filter.Status = &s
	}

	tickets, err := uc.ticketRepo.Search(ctx, query.OwnerID, filter)
	if err != nil {
		uc.logger.Errorw("failed to search tickets", "owner_id", query.OwnerID, "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketDTOList(tickets, uc.renderer),
		Window:  window,
	}, nil
}
