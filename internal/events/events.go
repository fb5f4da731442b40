package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicBookingEvents carries all booking lifecycle events.
const TopicBookingEvents = "booking.events"

// Event types published on TopicBookingEvents.
const (
	BookingConfirmed  = "booking.confirmed"
	BookingCancelled  = "booking.cancelled"
	BookingCheckedIn  = "booking.checked_in"
	BookingCheckedOut = "booking.checked_out"
)

// EventSource identifies this service as the event producer.
const EventSource = "hotel-booking"

// BookingConfirmedEvent is published when a booking is created. It carries
// the nightly rate so downstream invoicing needs no extra lookup.
type BookingConfirmedEvent struct {
	BookingID         uuid.UUID `json:"booking_id"`
	UserID            uuid.UUID `json:"user_id"`
	HotelID           uuid.UUID `json:"hotel_id"`
	RoomID            uuid.UUID `json:"room_id"`
	CheckIn           time.Time `json:"check_in"`
	CheckOut          time.Time `json:"check_out"`
	NightlyPriceCents int64     `json:"nightly_price_cents"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is published when a booking is cancelled.
type BookingCancelledEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     uuid.UUID `json:"user_id"`
	RoomID     uuid.UUID `json:"room_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingCheckedInEvent is published when a guest checks in.
type BookingCheckedInEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	RoomID     uuid.UUID `json:"room_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingCheckedOutEvent is published when a guest checks out.
type BookingCheckedOutEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	RoomID     uuid.UUID `json:"room_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
