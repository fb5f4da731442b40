package billing

import (
	"context"

	"github.com/google/uuid"
)

// BillingRepository defines the persistence contract for billing records.
type BillingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Billing, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*Billing, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*Billing, error)
	ListAll(ctx context.Context) ([]*Billing, error)
	Save(ctx context.Context, billing *Billing) error
}
