package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCheckedIn, false},
		{StatusConfirmed, StatusCheckedIn, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCheckedOut, false},
		{StatusCheckedIn, StatusCheckedOut, true},
		{StatusCheckedIn, StatusCancelled, false},
		{StatusCheckedOut, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCheckedOut.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusCheckedIn.IsTerminal())
}

func TestBookingStatus_CanBeCancelled(t *testing.T) {
	assert.True(t, StatusPending.CanBeCancelled())
	assert.True(t, StatusConfirmed.CanBeCancelled())
	assert.False(t, StatusCheckedIn.CanBeCancelled())
	assert.False(t, StatusCheckedOut.CanBeCancelled())
	assert.False(t, StatusCancelled.CanBeCancelled())
}

func TestParseBookingStatus(t *testing.T) {
	st, err := ParseBookingStatus("CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, st)

	_, err = ParseBookingStatus("NOPE")
	require.Error(t, err)
}
