package repository

import (
	"context"

	bookingDomain "github.com/bagabo/hotel-booking/internal/domain/booking"
	roomDomain "github.com/bagabo/hotel-booking/internal/domain/room"
	"gorm.io/gorm"
)

// GormUnitOfWork implements booking.UnitOfWork over a database transaction.
// Repositories handed to fn share the transaction, so a FindByIDForUpdate on
// the room row blocks every competing booking attempt on that room until the
// transaction commits or rolls back.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GormUnitOfWork.
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// InTx runs fn inside a single transaction. Any error from fn rolls the
// transaction back, so partial side effects never persist.
func (u *GormUnitOfWork) InTx(ctx context.Context, fn func(rooms roomDomain.RoomRepository, bookings bookingDomain.BookingRepository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormRoomRepository(tx), NewGormBookingRepository(tx))
	})
}
