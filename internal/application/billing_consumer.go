package application

import (
	"context"

	"github.com/bagabo/hotel-booking/internal/events"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// BookingEventConsumer listens to booking events and generates billing
// records for confirmed bookings.
type BookingEventConsumer struct {
	consumer *events.Consumer
	billing  *BillingService
	logger   *zap.Logger
}

// NewBookingEventConsumer creates a new BookingEventConsumer.
func NewBookingEventConsumer(
	brokers []string,
	groupID string,
	billing *BillingService,
	logger *zap.Logger,
) *BookingEventConsumer {
	consumer := events.NewConsumer(brokers, groupID, events.TopicBookingEvents, logger)
	return &BookingEventConsumer{
		consumer: consumer,
		billing:  billing,
		logger:   logger,
	}
}

// Start begins consuming booking events. This blocks until the context is
// cancelled.
func (c *BookingEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *BookingEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *BookingEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := events.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from booking topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case events.BookingConfirmed:
		return c.handleBookingConfirmed(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled booking event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *BookingEventConsumer) handleBookingConfirmed(ctx context.Context, cloudEvent events.CloudEvent) error {
	var evt events.BookingConfirmedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse BookingConfirmedEvent data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	c.logger.Info("processing booking confirmed event",
		zap.String("booking_id", evt.BookingID.String()),
		zap.String("user_id", evt.UserID.String()),
	)

	nights := int64(evt.CheckOut.Sub(evt.CheckIn).Hours() / 24)
	_, err := c.billing.GenerateForBooking(ctx, evt.BookingID, evt.UserID, evt.NightlyPriceCents, nights)
	if err != nil {
		c.logger.Error("failed to generate billing for booking",
			zap.String("booking_id", evt.BookingID.String()),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("billing generated for booking",
		zap.String("booking_id", evt.BookingID.String()),
	)
	return nil
}
