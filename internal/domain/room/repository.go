package room

import (
	"context"

	"github.com/google/uuid"
)

// RoomRepository defines the persistence contract for room aggregates.
type RoomRepository interface {
	// FindByID retrieves a room by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Room, error)

	// FindByIDForUpdate retrieves a room holding a row-level lock until the
	// surrounding transaction ends. Outside a transaction it behaves like
	// FindByID.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Room, error)

	// FindByHotelID retrieves all rooms of a hotel.
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*Room, error)

	// FindAvailableByHotelID retrieves the rooms of a hotel whose
	// availability flag is true.
	FindAvailableByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*Room, error)

	// Save persists a new room.
	Save(ctx context.Context, room *Room) error

	// Update persists changes to an existing room.
	Update(ctx context.Context, room *Room) error

	// Delete removes a room.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of rooms.
	Count(ctx context.Context) (int64, error)
}
