package application

import (
	"context"
	"fmt"
	"time"

	hotelDomain "github.com/bagabo/hotel-booking/internal/domain/hotel"
	roomDomain "github.com/bagabo/hotel-booking/internal/domain/room"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRoomRequest holds the data needed to register a room in a hotel.
type CreateRoomRequest struct {
	HotelID    uuid.UUID `json:"hotel_id" binding:"required"`
	RoomType   string    `json:"room_type" binding:"required"`
	PriceCents int64     `json:"price_cents" binding:"required"`
}

// UpdateRoomRequest holds the mutable fields of a room.
type UpdateRoomRequest struct {
	RoomType   string `json:"room_type" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required"`
}

// RoomDTO is the response representation of a room.
type RoomDTO struct {
	ID         uuid.UUID `json:"id"`
	HotelID    uuid.UUID `json:"hotel_id"`
	RoomType   string    `json:"room_type"`
	PriceCents int64     `json:"price_cents"`
	Available  bool      `json:"available"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RoomService manages the room catalog. Availability flips are owned by the
// booking flow, not by this service.
type RoomService struct {
	rooms  roomDomain.RoomRepository
	hotels hotelDomain.HotelRepository
	logger *zap.Logger
}

// NewRoomService creates a new RoomService.
func NewRoomService(rooms roomDomain.RoomRepository, hotels hotelDomain.HotelRepository, logger *zap.Logger) *RoomService {
	return &RoomService{rooms: rooms, hotels: hotels, logger: logger}
}

// CreateRoom registers a new room under an existing hotel. New rooms start
// available.
func (s *RoomService) CreateRoom(ctx context.Context, req CreateRoomRequest) (*RoomDTO, error) {
	if _, err := s.hotels.FindByID(ctx, req.HotelID); err != nil {
		return nil, err
	}

	rm, err := roomDomain.NewRoom(req.HotelID, req.RoomType, req.PriceCents)
	if err != nil {
		return nil, err
	}
	if err := s.rooms.Save(ctx, rm); err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	s.logger.Info("room created",
		zap.String("room_id", rm.ID().String()),
		zap.String("hotel_id", req.HotelID.String()),
	)

	result := toRoomDTO(rm)
	return &result, nil
}

// GetRoom retrieves a single room by ID.
func (s *RoomService) GetRoom(ctx context.Context, roomID uuid.UUID) (*RoomDTO, error) {
	rm, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	result := toRoomDTO(rm)
	return &result, nil
}

// GetRoomsByHotel lists every room of a hotel. A hotel with no rooms yields
// an empty list.
func (s *RoomService) GetRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]RoomDTO, error) {
	rms, err := s.rooms.FindByHotelID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hotel rooms: %w", err)
	}
	return toRoomDTOs(rms), nil
}

// GetAvailableRoomsByHotel lists the currently bookable rooms of a hotel.
func (s *RoomService) GetAvailableRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]RoomDTO, error) {
	rms, err := s.rooms.FindAvailableByHotelID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}
	return toRoomDTOs(rms), nil
}

// UpdateRoom changes a room's type and price. Availability is untouched.
func (s *RoomService) UpdateRoom(ctx context.Context, roomID uuid.UUID, req UpdateRoomRequest) (*RoomDTO, error) {
	rm, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if err := rm.UpdateDetails(req.RoomType, req.PriceCents); err != nil {
		return nil, err
	}
	if err := s.rooms.Update(ctx, rm); err != nil {
		return nil, err
	}

	result := toRoomDTO(rm)
	return &result, nil
}

// DeleteRoom removes a room from the catalog.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	if err := s.rooms.Delete(ctx, roomID); err != nil {
		return err
	}
	s.logger.Info("room deleted", zap.String("room_id", roomID.String()))
	return nil
}

// GetTotalRooms returns the total number of rooms.
func (s *RoomService) GetTotalRooms(ctx context.Context) (int64, error) {
	return s.rooms.Count(ctx)
}

func toRoomDTO(rm *roomDomain.Room) RoomDTO {
	return RoomDTO{
		ID:         rm.ID(),
		HotelID:    rm.HotelID(),
		RoomType:   rm.RoomType(),
		PriceCents: rm.PriceCents(),
		Available:  rm.Available(),
		CreatedAt:  rm.CreatedAt(),
		UpdatedAt:  rm.UpdatedAt(),
	}
}

func toRoomDTOs(rms []*roomDomain.Room) []RoomDTO {
	dtos := make([]RoomDTO, len(rms))
	for i, rm := range rms {
		dtos[i] = toRoomDTO(rm)
	}
	return dtos
}
