package user

import (
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	"github.com/google/uuid"
)

// Role determines what a user may do through the API.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// IsValid returns true if the role is recognized.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User is a plain domain record. It carries no authentication-framework
// behavior; the rest of the system consumes only its ID and role.
type User struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	role         Role

	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates a new User with an already-hashed password.
func NewUser(name, email, passwordHash string, role Role) (*User, error) {
	if name == "" {
		return nil, domain.NewValidationError("missing_name", "user name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("missing_email", "user email is required")
	}
	if passwordHash == "" {
		return nil, domain.NewValidationError("missing_password", "user password is required")
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("invalid_role", "unknown user role: "+string(role))
	}

	now := time.Now().UTC()
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a User from persistence data (no validation).
func ReconstructUser(id uuid.UUID, name, email, passwordHash string, role Role, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the user's unique identifier.
func (u *User) ID() uuid.UUID { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the user's role.
func (u *User) Role() Role { return u.role }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.role == RoleAdmin }
