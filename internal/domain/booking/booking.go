package booking

import (
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	"github.com/google/uuid"
)

// Booking is the aggregate root for the booking domain. A booking always
// references exactly one room; the room's availability flag must stay false
// while the booking is CONFIRMED or CHECKED_IN.
type Booking struct {
	id       uuid.UUID
	userID   uuid.UUID
	hotelID  uuid.UUID
	roomID   uuid.UUID
	checkIn  time.Time
	checkOut time.Time
	status   BookingStatus

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// Clock supplies the current time for date validation. It is substitutable
// in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation of Clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// DateOf truncates t to midnight UTC. Bookings carry dates, not instants.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewBooking creates a new Booking aggregate with status=CONFIRMED.
//
// Validation order: date validity first, then the user reference. The caller
// is responsible for having verified room existence and availability before
// constructing the booking.
func NewBooking(userID, hotelID, roomID uuid.UUID, checkIn, checkOut time.Time, now time.Time) (*Booking, error) {
	checkIn = DateOf(checkIn)
	checkOut = DateOf(checkOut)
	today := DateOf(now)

	if checkIn.After(checkOut) || checkIn.Before(today) || checkOut.Before(today) {
		return nil, domain.NewValidationError(domain.ReasonDateRange,
			"check-in must not be after check-out and neither date may be in the past")
	}
	if userID == uuid.Nil {
		return nil, domain.NewValidationError(domain.ReasonMissingUser,
			"a booking requires a user reference")
	}

	nowUTC := now.UTC()
	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		hotelID:   hotelID,
		roomID:    roomID,
		checkIn:   checkIn,
		checkOut:  checkOut,
		status:    StatusConfirmed,
		version:   1,
		createdAt: nowUTC,
		updatedAt: nowUTC,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id, userID, hotelID, roomID uuid.UUID,
	checkIn, checkOut time.Time,
	status BookingStatus,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		hotelID:   hotelID,
		roomID:    roomID,
		checkIn:   checkIn,
		checkOut:  checkOut,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// UserID returns the booking user's ID.
func (b *Booking) UserID() uuid.UUID { return b.userID }

// HotelID returns the referenced hotel's ID.
func (b *Booking) HotelID() uuid.UUID { return b.hotelID }

// RoomID returns the referenced room's ID.
func (b *Booking) RoomID() uuid.UUID { return b.roomID }

// CheckIn returns the check-in date (midnight UTC).
func (b *Booking) CheckIn() time.Time { return b.checkIn }

// CheckOut returns the check-out date (midnight UTC).
func (b *Booking) CheckOut() time.Time { return b.checkOut }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Nights returns the number of nights between check-in and check-out.
// A same-day stay counts as one night for billing purposes.
func (b *Booking) Nights() int64 {
	nights := int64(b.checkOut.Sub(b.checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

// Cancel transitions the booking to CANCELLED. A cancelled booking cannot be
// cancelled again, and a stay that has started (CHECKED_IN or CHECKED_OUT)
// cannot be cancelled at all.
func (b *Booking) Cancel() error {
	switch b.status {
	case StatusCancelled:
		return domain.NewConflictError(domain.ReasonAlreadyCancelled,
			"booking is already cancelled")
	case StatusCheckedIn, StatusCheckedOut:
		return domain.NewConflictError(domain.ReasonBookingStarted,
			"cannot cancel a booking that has already started")
	}
	if !b.status.CanBeCancelled() {
		return domain.NewInvalidStateError(string(b.status), string(StatusCancelled))
	}
	b.status = StatusCancelled
	b.updatedAt = time.Now().UTC()
	return nil
}

// CheckInGuest transitions the booking from CONFIRMED to CHECKED_IN.
func (b *Booking) CheckInGuest() error {
	if !b.status.CanTransitionTo(StatusCheckedIn) {
		return domain.NewInvalidStateError(string(b.status), string(StatusCheckedIn))
	}
	b.status = StatusCheckedIn
	b.updatedAt = time.Now().UTC()
	return nil
}

// CheckOutGuest transitions the booking from CHECKED_IN to CHECKED_OUT.
func (b *Booking) CheckOutGuest() error {
	if !b.status.CanTransitionTo(StatusCheckedOut) {
		return domain.NewInvalidStateError(string(b.status), string(StatusCheckedOut))
	}
	b.status = StatusCheckedOut
	b.updatedAt = time.Now().UTC()
	return nil
}

// Occupies reports whether the booking currently holds its room, i.e. the
// room's availability flag must be false while this is true.
func (b *Booking) Occupies() bool {
	return b.status == StatusConfirmed || b.status == StatusCheckedIn
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
