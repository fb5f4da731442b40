package user

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the persistence contract for user records.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
	Count(ctx context.Context) (int64, error)
}
