package ticket_models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to TicketStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		// Cancelled is terminal
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		// no going back
		{StatusConfirmed, StatusPending, false},
		// no self loops
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
	}
	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		assert.Equal(t, tc.want, got, "CanTransition(%s, %s)", tc.from, tc.to)
	}
}

func TestIsValidTravelMode(t *testing.T) {
	assert.True(t, IsValidTravelMode(ModeCar))
	assert.True(t, IsValidTravelMode(ModeFlight))
	assert.True(t, IsValidTravelMode(ModeTrain))
	assert.False(t, IsValidTravelMode("Bus"))
	assert.False(t, IsValidTravelMode("car"))
	assert.False(t, IsValidTravelMode(""))
}

func TestNewConfirmedTicket(t *testing.T) {
	sourceID := uuid.New()
	destinationID := uuid.New()
	createdBy := uuid.New()
	travelDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	ticket, err := NewConfirmedTicket(sourceID, destinationID, travelDate,
		ModeCar, "Asha", "9876543210", "S1", 828.34, createdBy)
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, ticket.Status)
	assert.True(t, strings.HasPrefix(ticket.UniqueTicketID, "TID-"))
	assert.NotEqual(t, uuid.Nil, ticket.ID)
	assert.Equal(t, sourceID, ticket.SourceID)
	assert.Equal(t, destinationID, ticket.DestinationID)
	assert.Equal(t, 828.34, ticket.Price)
	assert.Equal(t, createdBy, ticket.CreatedBy)

	// The TID suffix must itself be a valid UUID.
	_, err = uuid.Parse(strings.TrimPrefix(ticket.UniqueTicketID, "TID-"))
	require.NoError(t, err)

	// External ids are unique across tickets.
	other, err := NewConfirmedTicket(sourceID, destinationID, travelDate,
		ModeCar, "Asha", "9876543210", "S2", 828.34, createdBy)
	require.NoError(t, err)
	assert.NotEqual(t, ticket.UniqueTicketID, other.UniqueTicketID)
	assert.NotEqual(t, ticket.ID, other.ID)
}
