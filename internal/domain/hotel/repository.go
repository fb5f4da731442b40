package hotel

import (
	"context"

	"github.com/google/uuid"
)

// HotelRepository defines the persistence contract for hotel aggregates.
type HotelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Hotel, error)
	ListAll(ctx context.Context) ([]*Hotel, error)
	Save(ctx context.Context, hotel *Hotel) error
	Update(ctx context.Context, hotel *Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
