package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/services/markdown"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	repo := &mockTicketRepository{GetByIDFunc: ownedTicketLookup(5, 1)}
	uc := NewGetTicketUseCase(repo, markdown.NewRenderer(), logger.NewNopLogger())

	t.Run("owner sees the ticket", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 5, OwnerID: 1})
		require.NoError(t, err)
		assert.Equal(t, uint(5), result.ID)
		assert.Equal(t, "2026-01-02", result.Created)
		assert.Equal(t, "Paper stuck in tray **2**", result.Description)
	})

	tests := []struct {
		name  string
		query GetTicketQuery
	}{
		{name: "ticket of another user", query: GetTicketQuery{TicketID: 5, OwnerID: 2}},
		{name: "missing ticket", query: GetTicketQuery{TicketID: 999, OwnerID: 1}},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tt.query)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsNotFoundError(err))
			messages = append(messages, err.Error())
		})
	}
	require.Len(t, messages, 2)
	assert.Equal(t, messages[0], messages[1])
}
