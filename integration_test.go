//go:build integration

package main_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bagabo/hotel-booking/internal/application"
	"github.com/bagabo/hotel-booking/internal/domain"
	"github.com/bagabo/hotel-booking/internal/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBookingConfirmed_GeneratesBilling verifies the end-to-end flow: a
// created booking publishes a confirmation event, the billing consumer picks
// it up and a billing record with the right amount lands in the database.
func TestBookingConfirmed_GeneratesBilling(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()
	defer func() { _ = stack.Consumer.Close() }()

	_, roomID := seedRoomAndHotel(t, infra.DB, 75_00)
	userID := seedUser(t, infra.DB)

	// Start the consumer.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = stack.Consumer.Start(ctx) }()
	time.Sleep(3 * time.Second) // Wait for consumer group join.

	now := time.Now().UTC()
	booking, err := stack.Bookings.CreateBooking(ctx, userID, application.CreateBookingRequest{
		RoomID:   roomID,
		CheckIn:  now.AddDate(0, 0, 1),
		CheckOut: now.AddDate(0, 0, 4),
	})
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", booking.Status)

	// Assert: the confirmation event is on the wire.
	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicBookingEvents,
		events.BookingConfirmed, 15*time.Second)

	var confirmed events.BookingConfirmedEvent
	require.NoError(t, ce.ParseData(&confirmed))
	assert.Equal(t, booking.ID, confirmed.BookingID)
	assert.Equal(t, userID, confirmed.UserID)
	assert.Equal(t, int64(75_00), confirmed.NightlyPriceCents)

	// Assert: the consumer generated the billing record (3 nights x 75.00).
	billing := waitForBillingRecord(t, infra.DB, booking.ID, 15*time.Second)
	assert.Equal(t, userID, billing.UserID)
	assert.Equal(t, int64(225_00), billing.AmountCents)
}

// TestConcurrentBooking_OneWinner races many transactions for a single room
// against a real database and verifies the row lock admits exactly one.
func TestConcurrentBooking_OneWinner(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	_, roomID := seedRoomAndHotel(t, infra.DB, 50_00)

	const attempts = 10
	now := time.Now().UTC()
	results := make(chan error, attempts)

	userIDs := make([]uuid.UUID, attempts)
	for i := range userIDs {
		userIDs[i] = seedUser(t, infra.DB)
	}

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		userID := userIDs[i]
		go func() {
			defer wg.Done()
			_, err := stack.Bookings.CreateBooking(context.Background(), userID, application.CreateBookingRequest{
				RoomID:   roomID,
				CheckIn:  now.AddDate(0, 0, 1),
				CheckOut: now.AddDate(0, 0, 2),
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		require.True(t, domain.IsConflict(err), "unexpected error: %v", err)
		assert.Equal(t, domain.ReasonRoomUnavailable, domain.ReasonOf(err))
	}
	assert.Equal(t, 1, wins, "exactly one booking must win the room")
}

// TestCancelBooking_ReleasesRoomForRebooking verifies that cancelling frees
// the room for another user end to end.
func TestCancelBooking_ReleasesRoomForRebooking(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	_, roomID := seedRoomAndHotel(t, infra.DB, 60_00)
	userA := seedUser(t, infra.DB)
	userB := seedUser(t, infra.DB)

	ctx := context.Background()
	now := time.Now().UTC()
	req := application.CreateBookingRequest{
		RoomID:   roomID,
		CheckIn:  now.AddDate(0, 0, 2),
		CheckOut: now.AddDate(0, 0, 5),
	}

	first, err := stack.Bookings.CreateBooking(ctx, userA, req)
	require.NoError(t, err)

	_, err = stack.Bookings.CreateBooking(ctx, userB, req)
	require.Error(t, err)
	assert.Equal(t, domain.ReasonRoomUnavailable, domain.ReasonOf(err))

	require.NoError(t, stack.Bookings.CancelBooking(ctx, first.ID))

	second, err := stack.Bookings.CreateBooking(ctx, userB, req)
	require.NoError(t, err)
	assert.Equal(t, userB, second.UserID)

	// The cancellation event is also on the wire.
	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicBookingEvents,
		events.BookingCancelled, 15*time.Second)
	var cancelled events.BookingCancelledEvent
	require.NoError(t, ce.ParseData(&cancelled))
	assert.Equal(t, first.ID, cancelled.BookingID)
	assert.Equal(t, roomID, cancelled.RoomID)
}
