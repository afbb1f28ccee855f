package ticket

import (
	"context"

	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
)

// Repository persists tickets. Every read and write is scoped to an owner:
// a ticket that exists but belongs to someone else is reported exactly like
// a missing one.
type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id, ownerID uint) (*Ticket, error)
	List(ctx context.Context, ownerID uint, filter ListFilter) ([]*Ticket, error)
	Search(ctx context.Context, ownerID uint, filter SearchFilter) ([]*Ticket, error)
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, id, ownerID uint) error
}

// ListFilter is a normalized offset/limit window.
type ListFilter struct {
	Offset int
	Limit  int
}

// SearchFilter narrows a search. Empty strings and nil pointers mean "any".
// Title and Description match case-insensitive substrings.
type SearchFilter struct {
	ListFilter
	Title       string
	Description string
	Priority    *vo.Priority
	Status      *vo.TicketStatus
}
