package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("Printer jam", "Paper stuck in tray 2", 3, 10)
	require.NoError(t, err)
	return tk
}

// ---------------------------------------------------------------------------
// Constructor Tests
// ---------------------------------------------------------------------------

func TestNewTicket_ValidInput(t *testing.T) {
	tk, err := NewTicket("  Computer problems ", "\tTurns off randomly\n", 4, 7)
	require.NoError(t, err)

	assert.Zero(t, tk.ID())
	assert.Equal(t, "Computer problems", tk.Title())
	assert.Equal(t, "Turns off randomly", tk.Description())
	assert.Equal(t, vo.Priority(4), tk.Priority())
	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Equal(t, uint(7), tk.OwnerID())
	assert.Equal(t, Today(), tk.Created())
	assert.Equal(t, time.UTC, tk.Created().Location())
}

func TestNewTicket_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		desc     string
		priority int
		ownerID  uint
	}{
		{"empty title", "", "desc", 1, 1},
		{"blank title", "   ", "desc", 1, 1},
		{"blank description", "title", " \n ", 1, 1},
		{"title too long", strings.Repeat("x", 256), "desc", 1, 1},
		{"priority too low", "title", "desc", 0, 1},
		{"priority too high", "title", "desc", 6, 1},
		{"missing owner", "title", "desc", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.title, tt.desc, tt.priority, tt.ownerID)
			assert.Nil(t, tk)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestReconstructTicket(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tk, err := ReconstructTicket(5, "t", "d", 2, vo.StatusClosed, created, 9)
	require.NoError(t, err)
	assert.Equal(t, uint(5), tk.ID())
	assert.Equal(t, created, tk.Created())

	_, err = ReconstructTicket(0, "t", "d", 2, vo.StatusOpen, created, 9)
	assert.Error(t, err)
	_, err = ReconstructTicket(1, "t", "d", 9, vo.StatusOpen, created, 9)
	assert.Error(t, err)
	_, err = ReconstructTicket(1, "t", "d", 2, "resolved", created, 9)
	assert.Error(t, err)
}

func TestSetID(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.SetID(12))
	assert.Equal(t, uint(12), tk.ID())
	assert.Error(t, tk.SetID(13))
}


// ---------------------------------------------------------------------------
// Apply Tests
// ---------------------------------------------------------------------------

func TestApply_OnlyPresentFieldsChange(t *testing.T) {
	tk := newValidTicket(t)
	created := tk.Created()

	require.NoError(t, tk.Apply(Patch{Status: strPtr("in_progress")}))

	assert.Equal(t, vo.StatusInProgress, tk.Status())
	assert.Equal(t, "Printer jam", tk.Title())
	assert.Equal(t, "Paper stuck in tray 2", tk.Description())
	assert.Equal(t, vo.Priority(3), tk.Priority())
	assert.Equal(t, created, tk.Created())
	assert.Equal(t, uint(10), tk.OwnerID())
}

func TestApply_AllFields(t *testing.T) {
	tk := newValidTicket(t)

	err := tk.Apply(Patch{
		Title:       strPtr(" New title "),
		Description: strPtr("New description"),
		Priority:    intPtr(5),
		Status:      strPtr("closed"),
	})
	require.NoError(t, err)

	assert.Equal(t, "New title", tk.Title())
	assert.Equal(t, "New description", tk.Description())
	assert.Equal(t, vo.Priority(5), tk.Priority())
	assert.Equal(t, vo.StatusClosed, tk.Status())
}

func TestApply_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
	}{
		{"empty patch", Patch{}},
		{"blank title", Patch{Title: strPtr("  ")}},
		{"blank description", Patch{Description: strPtr("")}},
		{"bad priority", Patch{Priority: intPtr(0)}},
		{"bad status", Patch{Status: strPtr("resolved")}},
		{"valid title with bad status", Patch{Title: strPtr("ok"), Status: strPtr("nope")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newValidTicket(t)

			err := tk.Apply(tt.patch)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			// a rejected patch leaves the ticket untouched
			assert.Equal(t, "Printer jam", tk.Title())
			assert.Equal(t, vo.StatusOpen, tk.Status())
		})
	}
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{Priority: intPtr(1)}.IsEmpty())
}
