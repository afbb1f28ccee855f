package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
	apperrors "github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

func TestSearchTicketsUseCase_Execute_BuildsFilter(t *testing.T) {
	var got ticket.SearchFilter
	repo := &mockTicketRepository{
		SearchFunc: func(ctx context.Context, ownerID uint, filter ticket.SearchFilter) ([]*ticket.Ticket, error) {
			assert.Equal(t, uint(4), ownerID)
			got = filter
			return nil, nil
		},
	}
	uc := NewSearchTicketsUseCase(repo, nil, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), SearchTicketsQuery{
		OwnerID:     4,
		Title:       " printer ",
		Description: "tray",
		Priority:    ptr(2),
		Status:      ptr("in_progress"),
		Offset:      5,
		Limit:       500,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Tickets)
	assert.Equal(t, "printer", got.Title)
	assert.Equal(t, "tray", got.Description)
	require.NotNil(t, got.Priority)
	assert.Equal(t, vo.Priority(2), *got.Priority)
	require.NotNil(t, got.Status)
	assert.Equal(t, vo.StatusInProgress, *got.Status)
	assert.Equal(t, 5, got.Offset)
	assert.Equal(t, 100, got.Limit)
}

func TestSearchTicketsUseCase_Execute_NoFilters(t *testing.T) {
	var got ticket.SearchFilter
	repo := &mockTicketRepository{
		SearchFunc: func(ctx context.Context, ownerID uint, filter ticket.SearchFilter) ([]*ticket.Ticket, error) {
			got = filter
			return []*ticket.Ticket{persistedTicket(1, ownerID)}, nil
		},
	}
	uc := NewSearchTicketsUseCase(repo, nil, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), SearchTicketsQuery{OwnerID: 1})
	require.NoError(t, err)
	assert.Len(t, result.Tickets, 1)
	assert.Empty(t, got.Title)
	assert.Nil(t, got.Priority)
	assert.Nil(t, got.Status)
}

func TestSearchTicketsUseCase_Execute_InvalidFilters(t *testing.T) {
	tests := []struct {
		name  string
		query SearchTicketsQuery
	}{
		{name: "priority out of range", query: SearchTicketsQuery{OwnerID: 1, Priority: ptr(9)}},
		{name: "unknown status", query: SearchTicketsQuery{OwnerID: 1, Status: ptr("resolved")}},
		{name: "negative offset", query: SearchTicketsQuery{OwnerID: 1, Offset: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTicketRepository{
				SearchFunc: func(ctx context.Context, ownerID uint, filter ticket.SearchFilter) ([]*ticket.Ticket, error) {
					t.Fatal("Search must not be called")
					return nil, nil
				},
			}
			uc := NewSearchTicketsUseCase(repo, nil, logger.NewNopLogger())

			_, err := uc.Execute(context.Background(), tt.query)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}
