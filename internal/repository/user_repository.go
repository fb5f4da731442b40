package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	userDomain "github.com/bagabo/hotel-booking/internal/domain/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null;size:100"`
	Email        string    `gorm:"uniqueIndex;not null;size:200"`
	PasswordHash string    `gorm:"not null;size:100"`
	Role         string    `gorm:"not null;size:20"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (UserModel) TableName() string {
	return "users"
}

// GormUserRepository is the GORM-based implementation of UserRepository.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID retrieves a user by its unique identifier.
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("User", id.String())
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return toDomainUser(&model), nil
}

// FindByEmail retrieves a user by email address.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("User", email)
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return toDomainUser(&model), nil
}

// Save persists a new user.
func (r *GormUserRepository) Save(ctx context.Context, u *userDomain.User) error {
	if err := r.db.WithContext(ctx).Create(toUserModel(u)).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// Count returns the total number of users.
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

// --- Conversion Helpers ---

func toUserModel(u *userDomain.User) *UserModel {
	return &UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func toDomainUser(m *UserModel) *userDomain.User {
	return userDomain.ReconstructUser(
		m.ID, m.Name, m.Email, m.PasswordHash,
		userDomain.Role(m.Role),
		m.CreatedAt, m.UpdatedAt,
	)
}
