package room

import (
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	"github.com/google/uuid"
)

// Room is the aggregate root for hotel rooms. The availability flag is the
// single source of truth for whether the room may be booked; only the booking
// engine flips it.
type Room struct {
	id         uuid.UUID
	hotelID    uuid.UUID
	roomType   string
	priceCents int64
	available  bool

	createdAt time.Time
	updatedAt time.Time
}

// NewRoom creates a new available Room for the given hotel.
func NewRoom(hotelID uuid.UUID, roomType string, priceCents int64) (*Room, error) {
	if hotelID == uuid.Nil {
		return nil, domain.NewValidationError("missing_hotel", "a room requires a hotel reference")
	}
	if roomType == "" {
		return nil, domain.NewValidationError("missing_room_type", "room type is required")
	}
	if priceCents <= 0 {
		return nil, domain.NewValidationError("invalid_price", "room price must be positive")
	}

	now := time.Now().UTC()
	return &Room{
		id:         uuid.New(),
		hotelID:    hotelID,
		roomType:   roomType,
		priceCents: priceCents,
		available:  true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructRoom rebuilds a Room from persistence data (no validation).
func ReconstructRoom(id, hotelID uuid.UUID, roomType string, priceCents int64, available bool, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:         id,
		hotelID:    hotelID,
		roomType:   roomType,
		priceCents: priceCents,
		available:  available,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ID returns the room's unique identifier.
func (r *Room) ID() uuid.UUID { return r.id }

// HotelID returns the owning hotel's ID.
func (r *Room) HotelID() uuid.UUID { return r.hotelID }

// RoomType returns the room type.
func (r *Room) RoomType() string { return r.roomType }

// PriceCents returns the nightly price in cents.
func (r *Room) PriceCents() int64 { return r.priceCents }

// Available returns the availability flag.
func (r *Room) Available() bool { return r.available }

// CreatedAt returns the creation timestamp.
func (r *Room) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

// MarkUnavailable flips the availability flag off when a booking takes the room.
func (r *Room) MarkUnavailable() {
	r.available = false
	r.updatedAt = time.Now().UTC()
}

// MarkAvailable flips the availability flag back on when a booking releases the room.
func (r *Room) MarkAvailable() {
	r.available = true
	r.updatedAt = time.Now().UTC()
}

// UpdateDetails changes the administrative attributes. Availability is not
// touched here; that belongs to the booking engine.
func (r *Room) UpdateDetails(roomType string, priceCents int64) error {
	if roomType == "" {
		return domain.NewValidationError("missing_room_type", "room type is required")
	}
	if priceCents <= 0 {
		return domain.NewValidationError("invalid_price", "room price must be positive")
	}
	r.roomType = roomType
	r.priceCents = priceCents
	r.updatedAt = time.Now().UTC()
	return nil
}
