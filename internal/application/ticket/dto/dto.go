package dto

import (
	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/shared/constants"
	"github.com/helpdesk-inc/helpdesk/internal/shared/services/markdown"
)

// TicketDTO is the wire form of a ticket.
type TicketDTO struct {
	ID              uint   `json:"id" example:"1"`
	Title           string `json:"title" example:"Printer on floor 3 is jammed"`
	Description     string `json:"description" example:"Paper stuck in tray **2**"`
	DescriptionHTML string `json:"description_html" example:"<p>Paper stuck in tray <strong>2</strong></p>"`
	Priority        int    `json:"priority" example:"3"`
	Status          string `json:"status" example:"open"`
	Created         string `json:"created" example:"2026-01-02"`
	OwnerID         uint   `json:"owner_id" example:"1"`
}

// ToTicketDTO converts a domain ticket. The description is rendered to
// sanitized HTML when a renderer is given; a render failure leaves the
// HTML field empty rather than failing the request.
func ToTicketDTO(t *ticket.Ticket, renderer markdown.Renderer) *TicketDTO {
	if t == nil {
		return nil
	}

	d := &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().Int(),
		Status:      t.Status().String(),
		Created:     t.Created().Format(constants.DateLayout),
		OwnerID:     t.OwnerID(),
	}
	if renderer != nil {
		if html, err := renderer.Render(t.Description()); err == nil {
			d.DescriptionHTML = html
		}
	}
	return d
}

// ToTicketDTOList converts tickets in order. The result is never nil.
func ToTicketDTOList(tickets []*ticket.Ticket, renderer markdown.Renderer) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, ToTicketDTO(t, renderer))
	}
	return result
}
