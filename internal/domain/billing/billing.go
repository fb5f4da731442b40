package billing

import (
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	"github.com/google/uuid"
)

// Billing is the invoice record generated for a confirmed booking. It is
// one-to-one with its booking and immutable once written.
type Billing struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	userID      uuid.UUID
	amountCents int64
	generatedAt time.Time
}

// NewBilling creates a new Billing record for a booking.
func NewBilling(bookingID, userID uuid.UUID, amountCents int64, generatedAt time.Time) (*Billing, error) {
	if bookingID == uuid.Nil {
		return nil, domain.NewValidationError("missing_booking", "a billing record requires a booking reference")
	}
	if amountCents <= 0 {
		return nil, domain.NewValidationError("invalid_amount", "billing amount must be positive")
	}
	return &Billing{
		id:          uuid.New(),
		bookingID:   bookingID,
		userID:      userID,
		amountCents: amountCents,
		generatedAt: generatedAt.UTC(),
	}, nil
}

// ReconstructBilling rebuilds a Billing from persistence data (no validation).
func ReconstructBilling(id, bookingID, userID uuid.UUID, amountCents int64, generatedAt time.Time) *Billing {
	return &Billing{
		id:          id,
		bookingID:   bookingID,
		userID:      userID,
		amountCents: amountCents,
		generatedAt: generatedAt,
	}
}

// ID returns the billing record's unique identifier.
func (b *Billing) ID() uuid.UUID { return b.id }

// BookingID returns the associated booking's ID.
func (b *Billing) BookingID() uuid.UUID { return b.bookingID }

// UserID returns the billed user's ID.
func (b *Billing) UserID() uuid.UUID { return b.userID }

// AmountCents returns the invoice amount in cents.
func (b *Billing) AmountCents() int64 { return b.amountCents }

// GeneratedAt returns when the invoice was generated.
func (b *Billing) GeneratedAt() time.Time { return b.generatedAt }
