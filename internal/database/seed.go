package database

import (
	"context"
	"fmt"

	"github.com/bagabo/hotel-booking/internal/domain"
	hotelDomain "github.com/bagabo/hotel-booking/internal/domain/hotel"
	roomDomain "github.com/bagabo/hotel-booking/internal/domain/room"
	userDomain "github.com/bagabo/hotel-booking/internal/domain/user"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedDev populates an empty development database with an admin account and
// a sample hotel with a handful of rooms. Running it twice is a no-op.
func SeedDev(
	ctx context.Context,
	users userDomain.UserRepository,
	hotels hotelDomain.HotelRepository,
	rooms roomDomain.RoomRepository,
	log *zap.Logger,
) error {
	const adminEmail = "admin@bagabo.com"

	if _, err := users.FindByEmail(ctx, adminEmail); err == nil {
		return nil
	} else if !domain.IsNotFound(err) {
		return fmt.Errorf("failed to check seed admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	admin, err := userDomain.NewUser("Admin", adminEmail, string(hash), userDomain.RoleAdmin)
	if err != nil {
		return err
	}
	if err := users.Save(ctx, admin); err != nil {
		return fmt.Errorf("failed to save seed admin: %w", err)
	}

	hotel, err := hotelDomain.NewHotel("Bagabo Grand", "Kigali")
	if err != nil {
		return err
	}
	if err := hotels.Save(ctx, hotel); err != nil {
		return fmt.Errorf("failed to save seed hotel: %w", err)
	}

	for i := 0; i < 6; i++ {
		rm, err := roomDomain.NewRoom(hotel.ID(), "Standard", 50_00)
		if err != nil {
			return err
		}
		if err := rooms.Save(ctx, rm); err != nil {
			return fmt.Errorf("failed to save seed room: %w", err)
		}
	}

	log.Info("development data seeded",
		zap.String("admin_email", adminEmail),
		zap.String("hotel_id", hotel.ID().String()),
	)
	return nil
}
