package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	roomDomain "github.com/bagabo/hotel-booking/internal/domain/room"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomModel is the GORM model for the rooms table.
type RoomModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	HotelID    uuid.UUID `gorm:"type:uuid;index;not null"`
	RoomType   string    `gorm:"not null;size:50"`
	PriceCents int64     `gorm:"not null"`
	Available  bool      `gorm:"not null;default:true;index"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RoomModel) TableName() string {
	return "rooms"
}

// GormRoomRepository is the GORM-based implementation of RoomRepository.
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository.
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// FindByID retrieves a room by its unique identifier.
func (r *GormRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*roomDomain.Room, error) {
	return r.findByID(ctx, id, false)
}

// FindByIDForUpdate retrieves a room with a SELECT ... FOR UPDATE row lock.
// Within a transaction this serializes concurrent booking attempts on the
// same room.
func (r *GormRoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*roomDomain.Room, error) {
	return r.findByID(ctx, id, true)
}

func (r *GormRoomRepository) findByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*roomDomain.Room, error) {
	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var model RoomModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Room", id.String())
		}
		return nil, fmt.Errorf("failed to find room by ID: %w", err)
	}
	return toDomainRoom(&model), nil
}

// FindByHotelID retrieves all rooms of a hotel.
func (r *GormRoomRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*roomDomain.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find rooms by hotel: %w", err)
	}
	return toDomainRooms(models), nil
}

// FindAvailableByHotelID retrieves the rooms of a hotel whose availability
// flag is true.
func (r *GormRoomRepository) FindAvailableByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*roomDomain.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).
		Where("hotel_id = ? AND available = ?", hotelID, true).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find available rooms: %w", err)
	}
	return toDomainRooms(models), nil
}

// Save persists a new room.
func (r *GormRoomRepository) Save(ctx context.Context, rm *roomDomain.Room) error {
	if err := r.db.WithContext(ctx).Create(toRoomModel(rm)).Error; err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

// Update persists changes to an existing room.
func (r *GormRoomRepository) Update(ctx context.Context, rm *roomDomain.Room) error {
	model := toRoomModel(rm)
	result := r.db.WithContext(ctx).
		Model(&RoomModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"room_type":   model.RoomType,
			"price_cents": model.PriceCents,
			"available":   model.Available,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Room", model.ID.String())
	}
	return nil
}

// Delete removes a room.
func (r *GormRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&RoomModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Room", id.String())
	}
	return nil
}

// Count returns the total number of rooms.
func (r *GormRoomRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&RoomModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return total, nil
}

// --- Conversion Helpers ---

func toRoomModel(rm *roomDomain.Room) *RoomModel {
	return &RoomModel{
		ID:         rm.ID(),
		HotelID:    rm.HotelID(),
		RoomType:   rm.RoomType(),
		PriceCents: rm.PriceCents(),
		Available:  rm.Available(),
		CreatedAt:  rm.CreatedAt(),
		UpdatedAt:  rm.UpdatedAt(),
	}
}

func toDomainRoom(m *RoomModel) *roomDomain.Room {
	return roomDomain.ReconstructRoom(
		m.ID, m.HotelID,
		m.RoomType, m.PriceCents, m.Available,
		m.CreatedAt, m.UpdatedAt,
	)
}

func toDomainRooms(models []RoomModel) []*roomDomain.Room {
	rooms := make([]*roomDomain.Room, len(models))
	for i, m := range models {
		rooms[i] = toDomainRoom(&m)
	}
	return rooms
}
