package ticket

import (
	"github.com/helpdesk-inc/helpdesk/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Title       string `json:"title" form:"title" binding:"required,notblank,max=255" example:"Printer jammed"`
	Description string `json:"description" form:"description" binding:"required,notblank" example:"Paper stuck in tray 2"`
	Priority    int    `json:"priority" form:"priority" binding:"required,gte=1,lte=5" example:"3"`
}

func (r *CreateTicketRequest) ToCommand(ownerID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		OwnerID:     ownerID,
	}
}

// UpdateTicketRequest is a partial update: omitted fields are unchanged.
// Values are validated by the domain so that a rejected patch changes nothing.
type UpdateTicketRequest struct {
	Title       *string `json:"title,omitempty" example:"Printer fixed?"`
	Description *string `json:"description,omitempty"`
	Priority    *int    `json:"priority,omitempty" example:"2"`
	Status      *string `json:"status,omitempty" enums:"open,in_progress,closed" example:"in_progress"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, ownerID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		OwnerID:     ownerID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
	}
}

type SearchTicketsRequest struct {
	Title       string  `form:"title"`
	Description string  `form:"description"`
	Priority    *int    `form:"priority"`
	Status      *string `form:"status"`
}

func (r *SearchTicketsRequest) ToQuery(ownerID uint, offset, limit int) usecases.SearchTicketsQuery {
	return usecases.SearchTicketsQuery{
		OwnerID:     ownerID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		Offset:      offset,
		Limit:       limit,
	}
}
