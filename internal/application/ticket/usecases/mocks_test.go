package usecases

import (
	"context"
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/shared/constants"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

type mockTicketRepository struct {
	CreateFunc  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, ownerID uint, filter ticket.ListFilter) ([]*ticket.Ticket, error)
	SearchFunc  func(ctx context.Context, ownerID uint, filter ticket.SearchFilter) ([]*ticket.Ticket, error)
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc  func(ctx context.Context, id, ownerID uint) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, ownerID)
	}
	return nil, errors.NewNotFoundError(constants.ErrMsgTicketNotFound)
}

func (m *mockTicketRepository) List(ctx context.Context, ownerID uint, filter ticket.ListFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) Search(ctx context.Context, ownerID uint, filter ticket.SearchFilter) ([]*ticket.Ticket, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, ownerID, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id, ownerID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, ownerID)
	}
	return nil
}

type txKey struct{}

// mockTxRunner runs fn inline with a marked context so tests can check
// that repository calls happen inside the transaction.
type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(context.WithValue(ctx, txKey{}, true))
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// ownedTicketLookup returns a persisted ticket owned by ownerID, or NotFound for
// any other owner.
func ownedTicketLookup(id, ownerID uint) func(ctx context.Context, gotID, gotOwner uint) (*ticket.Ticket, error) {
	return func(ctx context.Context, gotID, gotOwner uint) (*ticket.Ticket, error) {
		if gotID != id || gotOwner != ownerID {
			return nil, errors.NewNotFoundError(constants.ErrMsgTicketNotFound)
		}
		return persistedTicket(id, ownerID), nil
	}
}

func persistedTicket(id, ownerID uint) *ticket.Ticket {
	t, err := ticket.ReconstructTicket(
		id,
		"Printer jammed",
		"Paper stuck in tray **2**",
		vo.Priority(3),
		vo.StatusOpen,
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		ownerID,
	)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T {
	return &v
}
