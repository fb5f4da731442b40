package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	hotelDomain "github.com/bagabo/hotel-booking/internal/domain/hotel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HotelModel is the GORM model for the hotels table.
type HotelModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;size:200"`
	Location  string    `gorm:"not null;size:200"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (HotelModel) TableName() string {
	return "hotels"
}

// GormHotelRepository is the GORM-based implementation of HotelRepository.
type GormHotelRepository struct {
	db *gorm.DB
}

// NewGormHotelRepository creates a new GormHotelRepository.
func NewGormHotelRepository(db *gorm.DB) *GormHotelRepository {
	return &GormHotelRepository{db: db}
}

// FindByID retrieves a hotel by its unique identifier.
func (r *GormHotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*hotelDomain.Hotel, error) {
	var model HotelModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Hotel", id.String())
		}
		return nil, fmt.Errorf("failed to find hotel by ID: %w", err)
	}
	return toDomainHotel(&model), nil
}

// ListAll retrieves all hotels.
func (r *GormHotelRepository) ListAll(ctx context.Context) ([]*hotelDomain.Hotel, error) {
	var models []HotelModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}

	hotels := make([]*hotelDomain.Hotel, len(models))
	for i, m := range models {
		hotels[i] = toDomainHotel(&m)
	}
	return hotels, nil
}

// Save persists a new hotel.
func (r *GormHotelRepository) Save(ctx context.Context, h *hotelDomain.Hotel) error {
	if err := r.db.WithContext(ctx).Create(toHotelModel(h)).Error; err != nil {
		return fmt.Errorf("failed to save hotel: %w", err)
	}
	return nil
}

// Update persists changes to an existing hotel.
func (r *GormHotelRepository) Update(ctx context.Context, h *hotelDomain.Hotel) error {
	model := toHotelModel(h)
	result := r.db.WithContext(ctx).
		Model(&HotelModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"location":   model.Location,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update hotel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Hotel", model.ID.String())
	}
	return nil
}

// Delete removes a hotel.
func (r *GormHotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&HotelModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete hotel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Hotel", id.String())
	}
	return nil
}

// Count returns the total number of hotels.
func (r *GormHotelRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&HotelModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count hotels: %w", err)
	}
	return total, nil
}

// --- Conversion Helpers ---

func toHotelModel(h *hotelDomain.Hotel) *HotelModel {
	return &HotelModel{
		ID:        h.ID(),
		Name:      h.Name(),
		Location:  h.Location(),
		CreatedAt: h.CreatedAt(),
		UpdatedAt: h.UpdatedAt(),
	}
}

func toDomainHotel(m *HotelModel) *hotelDomain.Hotel {
	return hotelDomain.ReconstructHotel(m.ID, m.Name, m.Location, m.CreatedAt, m.UpdatedAt)
}
