package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	bookingDomain "github.com/bagabo/hotel-booking/internal/domain/booking"
	roomDomain "github.com/bagabo/hotel-booking/internal/domain/room"
	"github.com/bagabo/hotel-booking/internal/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	HotelID   uuid.UUID `json:"hotel_id"`
	RoomID    uuid.UUID `json:"room_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Status    string    `json:"status"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingStatsDTO holds booking statistics for the admin dashboard.
type BookingStatsDTO struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// BookingService orchestrates the booking lifecycle and owns every mutation
// of room availability. All state-changing operations run through a unit of
// work that locks the room row, so concurrent attempts on one room serialize
// and at most one wins.
type BookingService struct {
	uow      bookingDomain.UnitOfWork
	bookings bookingDomain.BookingRepository
	producer *events.Producer
	logger   *zap.Logger
	clock    bookingDomain.Clock
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	uow bookingDomain.UnitOfWork,
	bookings bookingDomain.BookingRepository,
	producer *events.Producer,
	logger *zap.Logger,
	clock bookingDomain.Clock,
) *BookingService {
	if clock == nil {
		clock = bookingDomain.SystemClock{}
	}
	return &BookingService{
		uow:      uow,
		bookings: bookings,
		producer: producer,
		logger:   logger,
		clock:    clock,
	}
}

// CreateBooking validates and creates a booking for the given user, flipping
// the room unavailable in the same transaction.
//
// Check order: room existence, room availability, date validity, user
// reference. The room flag and the booking row commit together; if the
// booking save fails the room flip rolls back with it.
func (s *BookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	var created *bookingDomain.Booking
	var nightlyPrice int64

	err := s.uow.InTx(ctx, func(rooms roomDomain.RoomRepository, bookings bookingDomain.BookingRepository) error {
		rm, err := rooms.FindByIDForUpdate(ctx, req.RoomID)
		if err != nil {
			return err
		}
		if !rm.Available() {
			return domain.NewConflictError(domain.ReasonRoomUnavailable,
				"room is not available")
		}

		bk, err := bookingDomain.NewBooking(userID, rm.HotelID(), rm.ID(), req.CheckIn, req.CheckOut, s.clock.Now())
		if err != nil {
			return err
		}

		rm.MarkUnavailable()
		if err := rooms.Update(ctx, rm); err != nil {
			return err
		}
		if err := bookings.Save(ctx, bk); err != nil {
			return err
		}

		created = bk
		nightlyPrice = rm.PriceCents()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_id", created.ID().String()),
		zap.String("room_id", created.RoomID().String()),
		zap.String("user_id", userID.String()),
	)

	s.publishEvent(ctx, events.BookingConfirmed, events.BookingConfirmedEvent{
		BookingID:         created.ID(),
		UserID:            created.UserID(),
		HotelID:           created.HotelID(),
		RoomID:            created.RoomID(),
		CheckIn:           created.CheckIn(),
		CheckOut:          created.CheckOut(),
		NightlyPriceCents: nightlyPrice,
		OccurredAt:        time.Now().UTC(),
	})

	result := toBookingDTO(created)
	return &result, nil
}

// CancelBooking cancels a booking and restores its room's availability, both
// in one transaction. Cancelled and started (checked-in/checked-out)
// bookings reject cancellation.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	var cancelled *bookingDomain.Booking

	err := s.uow.InTx(ctx, func(rooms roomDomain.RoomRepository, bookings bookingDomain.BookingRepository) error {
		bk, err := bookings.FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := bk.Cancel(); err != nil {
			return err
		}

		rm, err := rooms.FindByIDForUpdate(ctx, bk.RoomID())
		if err != nil {
			return err
		}
		rm.MarkAvailable()
		if err := rooms.Update(ctx, rm); err != nil {
			return err
		}

		bk.IncrementVersion()
		if err := bookings.Update(ctx, bk); err != nil {
			return err
		}

		cancelled = bk
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("booking cancelled",
		zap.String("booking_id", cancelled.ID().String()),
		zap.String("room_id", cancelled.RoomID().String()),
	)

	s.publishEvent(ctx, events.BookingCancelled, events.BookingCancelledEvent{
		BookingID:  cancelled.ID(),
		UserID:     cancelled.UserID(),
		RoomID:     cancelled.RoomID(),
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// CheckIn marks a confirmed booking's guest as checked in. The room stays
// unavailable.
func (s *BookingService) CheckIn(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	var checked *bookingDomain.Booking

	err := s.uow.InTx(ctx, func(rooms roomDomain.RoomRepository, bookings bookingDomain.BookingRepository) error {
		bk, err := bookings.FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := bk.CheckInGuest(); err != nil {
			return err
		}
		bk.IncrementVersion()
		if err := bookings.Update(ctx, bk); err != nil {
			return err
		}
		checked = bk
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.BookingCheckedIn, events.BookingCheckedInEvent{
		BookingID:  checked.ID(),
		RoomID:     checked.RoomID(),
		OccurredAt: time.Now().UTC(),
	})

	result := toBookingDTO(checked)
	return &result, nil
}

// CheckOut completes a stay. The booking goes terminal and the room becomes
// available again, atomically.
func (s *BookingService) CheckOut(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	var checked *bookingDomain.Booking

	err := s.uow.InTx(ctx, func(rooms roomDomain.RoomRepository, bookings bookingDomain.BookingRepository) error {
		bk, err := bookings.FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := bk.CheckOutGuest(); err != nil {
			return err
		}

		rm, err := rooms.FindByIDForUpdate(ctx, bk.RoomID())
		if err != nil {
			return err
		}
		rm.MarkAvailable()
		if err := rooms.Update(ctx, rm); err != nil {
			return err
		}

		bk.IncrementVersion()
		if err := bookings.Update(ctx, bk); err != nil {
			return err
		}
		checked = bk
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.BookingCheckedOut, events.BookingCheckedOutEvent{
		BookingID:  checked.ID(),
		RoomID:     checked.RoomID(),
		OccurredAt: time.Now().UTC(),
	})

	result := toBookingDTO(checked)
	return &result, nil
}

// GetBooking retrieves a single booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// GetUserBookings retrieves all bookings for a user. No bookings is an empty
// list, not an error.
func (s *BookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingDTO, error) {
	bks, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings: %w", err)
	}
	return toBookingDTOs(bks), nil
}

// GetActiveUserBookings retrieves a user's bookings excluding cancelled ones.
func (s *BookingService) GetActiveUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingDTO, error) {
	bks, err := s.bookings.FindByUserIDExcludingStatus(ctx, userID, bookingDomain.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to get active user bookings: %w", err)
	}
	return toBookingDTOs(bks), nil
}

// ListAllBookings returns a paginated list of all bookings (admin).
func (s *BookingService) ListAllBookings(ctx context.Context, page, limit int) ([]BookingDTO, int64, error) {
	bks, total, err := s.bookings.ListAll(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return toBookingDTOs(bks), total, nil
}

// GetTotalBookings returns the total number of bookings.
func (s *BookingService) GetTotalBookings(ctx context.Context) (int64, error) {
	return s.bookings.Count(ctx)
}

// GetBookingStats returns aggregate booking statistics (admin).
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStatsDTO, error) {
	counts, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return &BookingStatsDTO{TotalBookings: total, ByStatus: counts}, nil
}

// --- Helpers ---

func (s *BookingService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.producer == nil {
		return
	}
	ce, err := events.NewCloudEvent(events.EventSource, eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	if err := s.producer.PublishEvent(ctx, events.TopicBookingEvents, ce); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:        bk.ID(),
		UserID:    bk.UserID(),
		HotelID:   bk.HotelID(),
		RoomID:    bk.RoomID(),
		CheckIn:   bk.CheckIn(),
		CheckOut:  bk.CheckOut(),
		Status:    string(bk.Status()),
		Version:   bk.Version(),
		CreatedAt: bk.CreatedAt(),
		UpdatedAt: bk.UpdatedAt(),
	}
}

func toBookingDTOs(bks []*bookingDomain.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bks))
	for i, bk := range bks {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos
}
