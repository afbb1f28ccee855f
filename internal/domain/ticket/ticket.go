package ticket

import (
	"strings"
	"time"

	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

const maxTitleLength = 255

// Ticket is a support request owned by exactly one user.
type Ticket struct {
	id          uint
	title       string
	description string
	priority    vo.Priority
	status      vo.TicketStatus
	created     time.Time
	ownerID     uint
}

// NewTicket creates an open ticket for ownerID dated today (UTC).
// Title and description are trimmed and must not be blank.
func NewTicket(title, description string, priority int, ownerID uint) (*Ticket, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	description, err = normalizeDescription(description)
	if err != nil {
		return nil, err
	}
	p, err := vo.NewPriority(priority)
	if err != nil {
		return nil, errors.NewValidationError("Invalid priority", err.Error())
	}
	if ownerID == 0 {
		return nil, errors.NewValidationError("Owner is required")
	}

	return &Ticket{
		title:       title,
		description: description,
		priority:    p,
		status:      vo.StatusOpen,
		created:     Today(),
		ownerID:     ownerID,
	}, nil
}

// ReconstructTicket rebuilds a persisted ticket.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	created time.Time,
	ownerID uint,
) (*Ticket, error) {
	if id == 0 {
		return nil, errors.NewValidationError("ticket ID cannot be zero")
	}
	if !priority.IsValid() {
		return nil, errors.NewValidationError("invalid priority")
	}
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid status")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		priority:    priority,
		status:      status,
		created:     created,
		ownerID:     ownerID,
	}, nil
}

// Today returns the current UTC date at midnight.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Created() time.Time {
	return t.created
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return errors.NewValidationError("ticket ID is already set")
	}
	if id == 0 {
		return errors.NewValidationError("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Apply changes only the fields present in p. The patch is validated as a
// whole before anything is modified.
func (t *Ticket) Apply(p Patch) error {
	if p.IsEmpty() {
		return errors.NewValidationError("At least one field must be provided")
	}

	title, description := t.title, t.description
	priority, status := t.priority, t.status

	var err error
	if p.Title != nil {
		if title, err = normalizeTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if description, err = normalizeDescription(*p.Description); err != nil {
			return err
		}
	}
	if p.Priority != nil {
		if priority, err = vo.NewPriority(*p.Priority); err != nil {
			return errors.NewValidationError("Invalid priority", err.Error())
		}
	}
	if p.Status != nil {
		if status, err = vo.NewTicketStatus(*p.Status); err != nil {
			return errors.NewValidationError("Invalid status", err.Error())
		}
	}

	t.title, t.description = title, description
	t.priority, t.status = priority, status
	return nil
}

func normalizeTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.NewValidationError("Title must not be empty")
	}
	if len([]rune(s)) > maxTitleLength {
		return "", errors.NewValidationError("Title is too long", "title must be at most 255 characters")
	}
	return s, nil
}

func normalizeDescription(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.NewValidationError("Description must not be empty")
	}
	return s, nil
}
