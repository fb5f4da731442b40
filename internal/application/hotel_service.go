package application

import (
	"context"
	"fmt"
	"time"

	hotelDomain "github.com/bagabo/hotel-booking/internal/domain/hotel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateHotelRequest holds the data needed to register a hotel.
type CreateHotelRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// UpdateHotelRequest holds the mutable fields of a hotel.
type UpdateHotelRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// HotelDTO is the response representation of a hotel.
type HotelDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HotelService manages the hotel catalog.
type HotelService struct {
	hotels hotelDomain.HotelRepository
	logger *zap.Logger
}

// NewHotelService creates a new HotelService.
func NewHotelService(hotels hotelDomain.HotelRepository, logger *zap.Logger) *HotelService {
	return &HotelService{hotels: hotels, logger: logger}
}

// CreateHotel registers a new hotel.
func (s *HotelService) CreateHotel(ctx context.Context, req CreateHotelRequest) (*HotelDTO, error) {
	h, err := hotelDomain.NewHotel(req.Name, req.Location)
	if err != nil {
		return nil, err
	}
	if err := s.hotels.Save(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to save hotel: %w", err)
	}

	s.logger.Info("hotel created",
		zap.String("hotel_id", h.ID().String()),
		zap.String("name", h.Name()),
	)

	result := toHotelDTO(h)
	return &result, nil
}

// GetHotel retrieves a single hotel by ID.
func (s *HotelService) GetHotel(ctx context.Context, hotelID uuid.UUID) (*HotelDTO, error) {
	h, err := s.hotels.FindByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	result := toHotelDTO(h)
	return &result, nil
}

// ListHotels returns every hotel. An empty catalog yields an empty list.
func (s *HotelService) ListHotels(ctx context.Context) ([]HotelDTO, error) {
	hs, err := s.hotels.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return toHotelDTOs(hs), nil
}

// UpdateHotel changes a hotel's name and location.
func (s *HotelService) UpdateHotel(ctx context.Context, hotelID uuid.UUID, req UpdateHotelRequest) (*HotelDTO, error) {
	h, err := s.hotels.FindByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if err := h.Update(req.Name, req.Location); err != nil {
		return nil, err
	}
	if err := s.hotels.Update(ctx, h); err != nil {
		return nil, err
	}

	result := toHotelDTO(h)
	return &result, nil
}

// DeleteHotel removes a hotel.
func (s *HotelService) DeleteHotel(ctx context.Context, hotelID uuid.UUID) error {
	if err := s.hotels.Delete(ctx, hotelID); err != nil {
		return err
	}
	s.logger.Info("hotel deleted", zap.String("hotel_id", hotelID.String()))
	return nil
}

// GetTotalHotels returns the total number of hotels.
func (s *HotelService) GetTotalHotels(ctx context.Context) (int64, error) {
	return s.hotels.Count(ctx)
}

func toHotelDTO(h *hotelDomain.Hotel) HotelDTO {
	return HotelDTO{
		ID:        h.ID(),
		Name:      h.Name(),
		Location:  h.Location(),
		CreatedAt: h.CreatedAt(),
		UpdatedAt: h.UpdatedAt(),
	}
}

func toHotelDTOs(hs []*hotelDomain.Hotel) []HotelDTO {
	dtos := make([]HotelDTO, len(hs))
	for i, h := range hs {
		dtos[i] = toHotelDTO(h)
	}
	return dtos
}
