//go:build integration

package main_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/bagabo/hotel-booking/internal/application"
	"github.com/bagabo/hotel-booking/internal/events"
	"github.com/bagabo/hotel-booking/internal/repository"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB           *gorm.DB
	KafkaBrokers []string
	Cleanup      func()
}

// bookingStack holds wired-up booking and billing components.
type bookingStack struct {
	Bookings        *application.BookingService
	Billings        *application.BillingService
	Consumer        *application.BookingEventConsumer
	CleanupProducer func()
}

// setupContainers starts PostgreSQL and Kafka testcontainers and returns a connected GORM DB.
func setupContainers(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_hotel",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test_hotel sslmode=disable", pgHost, pgPort.Port())

	// Poll until GORM can actually connect and ping.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, db.AutoMigrate(
		&repository.UserModel{},
		&repository.HotelModel{},
		&repository.RoomModel{},
		&repository.BookingModel{},
		&repository.BillingModel{},
	))

	// Start Kafka container using confluent-local (supports KRaft natively).
	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")

	kafkaBrokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	// Pre-create required topics.
	createTopics(t, kafkaBrokers, events.TopicBookingEvents)

	cleanup := func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return &testInfra{
		DB:           db,
		KafkaBrokers: kafkaBrokers,
		Cleanup:      cleanup,
	}
}

// setupBookingStack wires up the booking service, billing service and the
// booking event consumer that connects them.
func setupBookingStack(t *testing.T, db *gorm.DB, brokers []string) *bookingStack {
	t.Helper()
	logger, _ := zap.NewDevelopment()

	bookingRepo := repository.NewGormBookingRepository(db)
	billingRepo := repository.NewGormBillingRepository(db)
	uow := repository.NewGormUnitOfWork(db)
	producer := events.NewProducer(brokers, logger)

	bookingSvc := application.NewBookingService(uow, bookingRepo, producer, logger, nil)
	billingSvc := application.NewBillingService(billingRepo, nil, logger)

	groupID := fmt.Sprintf("test-billing-%s", uuid.New().String()[:8])
	consumer := application.NewBookingEventConsumer(brokers, groupID, billingSvc, logger)

	return &bookingStack{
		Bookings:        bookingSvc,
		Billings:        billingSvc,
		Consumer:        consumer,
		CleanupProducer: func() { _ = producer.Close() },
	}
}

// seedRoomAndHotel inserts a hotel with one available room and returns the room ID.
func seedRoomAndHotel(t *testing.T, db *gorm.DB, priceCents int64) (hotelID, roomID uuid.UUID) {
	t.Helper()
	now := time.Now().UTC()

	hotelID = uuid.New()
	require.NoError(t, db.Create(&repository.HotelModel{
		ID:        hotelID,
		Name:      "Integration Hotel",
		Location:  "Kigali",
		CreatedAt: now,
		UpdatedAt: now,
	}).Error, "failed to seed hotel")

	roomID = uuid.New()
	require.NoError(t, db.Create(&repository.RoomModel{
		ID:         roomID,
		HotelID:    hotelID,
		RoomType:   "Standard",
		PriceCents: priceCents,
		Available:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}).Error, "failed to seed room")

	return hotelID, roomID
}

// seedUser inserts a customer user and returns its ID.
func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	now := time.Now().UTC()
	userID := uuid.New()
	require.NoError(t, db.Create(&repository.UserModel{
		ID:           userID,
		Name:         "Integration Customer",
		Email:        fmt.Sprintf("%s@example.com", userID.String()[:8]),
		PasswordHash: "x",
		Role:         "CUSTOMER",
		CreatedAt:    now,
		UpdatedAt:    now,
	}).Error, "failed to seed user")
	return userID
}

// waitForBillingRecord polls the billing table until a record exists for the booking.
func waitForBillingRecord(t *testing.T, db *gorm.DB, bookingID uuid.UUID, timeout time.Duration) repository.BillingModel {
	t.Helper()
	var result repository.BillingModel
	require.Eventually(t, func() bool {
		var model repository.BillingModel
		err := db.Where("booking_id = ?", bookingID).First(&model).Error
		if err != nil {
			return false
		}
		result = model
		return true
	}, timeout, 200*time.Millisecond, "billing record was not generated for booking %s", bookingID)
	return result
}

// consumeOneEvent reads from a Kafka topic until it finds an event of the expected type.
func consumeOneEvent(t *testing.T, brokers []string, topic, expectedType string, timeout time.Duration) events.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	groupID := fmt.Sprintf("test-assert-%s", uuid.New().String()[:8])
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() { _ = reader.Close() }()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("timed out waiting for event type %q on topic %q", expectedType, topic)
			}
			continue
		}
		ce, err := events.ParseCloudEvent(msg.Value)
		if err != nil {
			continue
		}
		if ce.Type == expectedType {
			return ce
		}
	}
}

// createTopics pre-creates Kafka topics so producers don't fail with "Unknown Topic".
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err, "failed to dial Kafka for topic creation")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "failed to get Kafka controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, fmt.Sprintf("%d", controller.Port)))
	require.NoError(t, err, "failed to connect to Kafka controller")
	defer controllerConn.Close()

	topicConfigs := make([]kafkago.TopicConfig, len(topics))
	for i, topic := range topics {
		topicConfigs[i] = kafkago.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}
	err = controllerConn.CreateTopics(topicConfigs...)
	require.NoError(t, err, "failed to create Kafka topics")

	// Give Kafka a moment to propagate topic metadata.
	time.Sleep(1 * time.Second)
}
