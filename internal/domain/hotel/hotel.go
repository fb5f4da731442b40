package hotel

import (
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	"github.com/google/uuid"
)

// Hotel is the aggregate root for hotels.
type Hotel struct {
	id       uuid.UUID
	name     string
	location string

	createdAt time.Time
	updatedAt time.Time
}

// NewHotel creates a new Hotel.
func NewHotel(name, location string) (*Hotel, error) {
	if name == "" {
		return nil, domain.NewValidationError("missing_name", "hotel name is required")
	}
	if location == "" {
		return nil, domain.NewValidationError("missing_location", "hotel location is required")
	}

	now := time.Now().UTC()
	return &Hotel{
		id:        uuid.New(),
		name:      name,
		location:  location,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructHotel rebuilds a Hotel from persistence data (no validation).
func ReconstructHotel(id uuid.UUID, name, location string, createdAt, updatedAt time.Time) *Hotel {
	return &Hotel{
		id:        id,
		name:      name,
		location:  location,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the hotel's unique identifier.
func (h *Hotel) ID() uuid.UUID { return h.id }

// Name returns the hotel name.
func (h *Hotel) Name() string { return h.name }

// Location returns the hotel location.
func (h *Hotel) Location() string { return h.location }

// CreatedAt returns the creation timestamp.
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }

// Update changes the hotel's attributes.
func (h *Hotel) Update(name, location string) error {
	if name == "" {
		return domain.NewValidationError("missing_name", "hotel name is required")
	}
	if location == "" {
		return domain.NewValidationError("missing_location", "hotel location is required")
	}
	h.name = name
	h.location = location
	h.updatedAt = time.Now().UTC()
	return nil
}
