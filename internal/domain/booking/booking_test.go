package booking

import (
	"testing"
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func newTestBooking(t *testing.T) *Booking {
	t.Helper()
	bk, err := NewBooking(uuid.New(), uuid.New(), uuid.New(),
		testNow.AddDate(0, 0, 1), testNow.AddDate(0, 0, 3), testNow)
	require.NoError(t, err)
	return bk
}

func TestNewBooking_CreatesConfirmed(t *testing.T) {
	userID := uuid.New()
	bk, err := NewBooking(userID, uuid.New(), uuid.New(),
		testNow, testNow.AddDate(0, 0, 2), testNow)
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, bk.Status())
	assert.Equal(t, userID, bk.UserID())
	assert.Equal(t, int64(1), bk.Version())
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), bk.CheckIn())
	assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), bk.CheckOut())
}

func TestNewBooking_DateValidation(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{"check-in after check-out", testNow.AddDate(0, 0, 5), testNow.AddDate(0, 0, 2)},
		{"check-in in the past", testNow.AddDate(0, 0, -1), testNow.AddDate(0, 0, 2)},
		{"both dates in the past", testNow.AddDate(0, 0, -5), testNow.AddDate(0, 0, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBooking(uuid.New(), uuid.New(), uuid.New(), tt.checkIn, tt.checkOut, testNow)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Equal(t, domain.ReasonDateRange, domain.ReasonOf(err))
		})
	}
}

func TestNewBooking_SameDayStayAllowed(t *testing.T) {
	bk, err := NewBooking(uuid.New(), uuid.New(), uuid.New(), testNow, testNow, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bk.Nights())
}

func TestNewBooking_RequiresUser(t *testing.T) {
	_, err := NewBooking(uuid.Nil, uuid.New(), uuid.New(),
		testNow.AddDate(0, 0, 1), testNow.AddDate(0, 0, 2), testNow)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, domain.ReasonMissingUser, domain.ReasonOf(err))
}

func TestNewBooking_DateValidatedBeforeUser(t *testing.T) {
	// Both the dates and the user are invalid; the date error wins.
	_, err := NewBooking(uuid.Nil, uuid.New(), uuid.New(),
		testNow.AddDate(0, 0, 5), testNow.AddDate(0, 0, 2), testNow)
	require.Error(t, err)
	assert.Equal(t, domain.ReasonDateRange, domain.ReasonOf(err))
}

func TestBooking_Nights(t *testing.T) {
	bk, err := NewBooking(uuid.New(), uuid.New(), uuid.New(),
		testNow.AddDate(0, 0, 1), testNow.AddDate(0, 0, 4), testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(3), bk.Nights())
}

func TestBooking_Cancel(t *testing.T) {
	bk := newTestBooking(t)

	require.NoError(t, bk.Cancel())
	assert.Equal(t, StatusCancelled, bk.Status())
	assert.False(t, bk.Occupies())
}

func TestBooking_CancelTwice(t *testing.T) {
	bk := newTestBooking(t)
	require.NoError(t, bk.Cancel())

	err := bk.Cancel()
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, domain.ReasonAlreadyCancelled, domain.ReasonOf(err))
}

func TestBooking_CancelAfterCheckIn(t *testing.T) {
	bk := newTestBooking(t)
	require.NoError(t, bk.CheckInGuest())

	err := bk.Cancel()
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, domain.ReasonBookingStarted, domain.ReasonOf(err))
}

func TestBooking_CancelAfterCheckOut(t *testing.T) {
	bk := newTestBooking(t)
	require.NoError(t, bk.CheckInGuest())
	require.NoError(t, bk.CheckOutGuest())

	err := bk.Cancel()
	require.Error(t, err)
	assert.Equal(t, domain.ReasonBookingStarted, domain.ReasonOf(err))
}

func TestBooking_CheckInFlow(t *testing.T) {
	bk := newTestBooking(t)

	require.NoError(t, bk.CheckInGuest())
	assert.Equal(t, StatusCheckedIn, bk.Status())
	assert.True(t, bk.Occupies())

	require.NoError(t, bk.CheckOutGuest())
	assert.Equal(t, StatusCheckedOut, bk.Status())
	assert.False(t, bk.Occupies())
}

func TestBooking_CheckOutRequiresCheckIn(t *testing.T) {
	bk := newTestBooking(t)

	err := bk.CheckOutGuest()
	require.Error(t, err)
	assert.Equal(t, domain.ReasonStateTransition, domain.ReasonOf(err))
}

func TestBooking_CheckInCancelled(t *testing.T) {
	bk := newTestBooking(t)
	require.NoError(t, bk.Cancel())

	err := bk.CheckInGuest()
	require.Error(t, err)
	assert.Equal(t, domain.ReasonStateTransition, domain.ReasonOf(err))
}

func TestBooking_IncrementVersion(t *testing.T) {
	bk := newTestBooking(t)
	bk.IncrementVersion()
	assert.Equal(t, int64(2), bk.Version())
}

func TestDateOf(t *testing.T) {
	in := time.Date(2026, 7, 4, 18, 45, 12, 999, time.FixedZone("X", 3600))
	assert.Equal(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), DateOf(in))
}
