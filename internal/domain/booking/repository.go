package booking

import (
	"context"

	"github.com/bagabo/hotel-booking/internal/domain/room"
	"github.com/google/uuid"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByUserID retrieves all bookings for a user, newest first.
	// An empty result is an empty slice, never an error.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*Booking, error)

	// FindByUserIDExcludingStatus retrieves a user's bookings whose status
	// differs from the given one.
	FindByUserIDExcludingStatus(ctx context.Context, userID uuid.UUID, status BookingStatus) ([]*Booking, error)

	// FindByStatus retrieves all bookings currently in the given status.
	FindByStatus(ctx context.Context, status BookingStatus) ([]*Booking, error)

	// ListAll retrieves all bookings with pagination (admin).
	ListAll(ctx context.Context, page, limit int) ([]*Booking, int64, error)

	// Count returns the total number of bookings.
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns booking counts grouped by status (admin).
	CountByStatus(ctx context.Context) (map[string]int64, error)

	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, booking *Booking) error
}

// UnitOfWork executes fn atomically. The repositories passed to fn share a
// single transaction, and their row-locking reads serialize concurrent
// attempts on the same room: of N concurrent creations against one available
// room, exactly one commits.
type UnitOfWork interface {
	InTx(ctx context.Context, fn func(rooms room.RoomRepository, bookings BookingRepository) error) error
}
