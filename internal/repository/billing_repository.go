package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	billingDomain "github.com/bagabo/hotel-booking/internal/domain/billing"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillingModel is the GORM model for the billing table.
type BillingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	AmountCents int64     `gorm:"not null"`
	GeneratedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BillingModel) TableName() string {
	return "billing"
}

// GormBillingRepository is the GORM-based implementation of BillingRepository.
type GormBillingRepository struct {
	db *gorm.DB
}

// NewGormBillingRepository creates a new GormBillingRepository.
func NewGormBillingRepository(db *gorm.DB) *GormBillingRepository {
	return &GormBillingRepository{db: db}
}

// FindByID retrieves a billing record by its unique identifier.
func (r *GormBillingRepository) FindByID(ctx context.Context, id uuid.UUID) (*billingDomain.Billing, error) {
	var model BillingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Billing", id.String())
		}
		return nil, fmt.Errorf("failed to find billing by ID: %w", err)
	}
	return toDomainBilling(&model), nil
}

// FindByBookingID retrieves the billing record associated with a booking.
func (r *GormBillingRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*billingDomain.Billing, error) {
	var model BillingModel
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Billing", bookingID.String())
		}
		return nil, fmt.Errorf("failed to find billing by booking: %w", err)
	}
	return toDomainBilling(&model), nil
}

// FindByUserID retrieves all billing records for a user, newest first.
func (r *GormBillingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*billingDomain.Billing, error) {
	var models []BillingModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find billing by user: %w", err)
	}
	return toDomainBillings(models), nil
}

// ListAll retrieves all billing records.
func (r *GormBillingRepository) ListAll(ctx context.Context) ([]*billingDomain.Billing, error) {
	var models []BillingModel
	if err := r.db.WithContext(ctx).Order("generated_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list billing records: %w", err)
	}
	return toDomainBillings(models), nil
}

// Save persists a new billing record.
func (r *GormBillingRepository) Save(ctx context.Context, b *billingDomain.Billing) error {
	if err := r.db.WithContext(ctx).Create(toBillingModel(b)).Error; err != nil {
		return fmt.Errorf("failed to save billing: %w", err)
	}
	return nil
}

// --- Conversion Helpers ---

func toBillingModel(b *billingDomain.Billing) *BillingModel {
	return &BillingModel{
		ID:          b.ID(),
		BookingID:   b.BookingID(),
		UserID:      b.UserID(),
		AmountCents: b.AmountCents(),
		GeneratedAt: b.GeneratedAt(),
	}
}

func toDomainBilling(m *BillingModel) *billingDomain.Billing {
	return billingDomain.ReconstructBilling(m.ID, m.BookingID, m.UserID, m.AmountCents, m.GeneratedAt)
}

func toDomainBillings(models []BillingModel) []*billingDomain.Billing {
	billings := make([]*billingDomain.Billing, len(models))
	for i, m := range models {
		billings[i] = toDomainBilling(&m)
	}
	return billings
}
