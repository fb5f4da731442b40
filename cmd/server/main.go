package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagabo/hotel-booking/internal/application"
	"github.com/bagabo/hotel-booking/internal/auth"
	"github.com/bagabo/hotel-booking/internal/config"
	"github.com/bagabo/hotel-booking/internal/database"
	"github.com/bagabo/hotel-booking/internal/events"
	"github.com/bagabo/hotel-booking/internal/handler"
	"github.com/bagabo/hotel-booking/internal/logger"
	"github.com/bagabo/hotel-booking/internal/middleware"
	"github.com/bagabo/hotel-booking/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "hotel-booking")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting hotel-booking",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.UserModel{},
			&repository.HotelModel{},
			&repository.RoomModel{},
			&repository.BookingModel{},
			&repository.BillingModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.URL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWTConfig.Secret, cfg.JWTConfig.AccessTTL)

	// Initialize Kafka producer
	kafkaProducer := events.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize repositories
	userRepo := repository.NewGormUserRepository(db)
	hotelRepo := repository.NewGormHotelRepository(db)
	roomRepo := repository.NewGormRoomRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	billingRepo := repository.NewGormBillingRepository(db)
	uow := repository.NewGormUnitOfWork(db)

	// Seed development data
	if cfg.AppEnv == "development" {
		if err := database.SeedDev(context.Background(), userRepo, hotelRepo, roomRepo, log); err != nil {
			log.Fatal("failed to seed development data", zap.Error(err))
		}
	}

	// Initialize application services
	userService := application.NewUserService(userRepo, jwtManager, log)
	hotelService := application.NewHotelService(hotelRepo, log)
	roomService := application.NewRoomService(roomRepo, hotelRepo, log)
	bookingService := application.NewBookingService(uow, bookingRepo, kafkaProducer, log, nil)
	billingService := application.NewBillingService(billingRepo, nil, log)

	// Initialize and start booking event consumer in a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groupID := cfg.KafkaConfig.GroupPrefix + "billing"
	bookingConsumer := application.NewBookingEventConsumer(
		cfg.KafkaConfig.Brokers,
		groupID,
		billingService,
		log,
	)
	defer func() { _ = bookingConsumer.Close() }()

	go func() {
		log.Info("starting booking event consumer")
		if err := bookingConsumer.Start(ctx); err != nil && err != context.Canceled {
			log.Error("booking event consumer error", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(userService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	roomHandler := handler.NewRoomHandler(roomService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	billingHandler := handler.NewBillingHandler(billingService)
	adminHandler := handler.NewAdminHandler(userService, hotelService, roomService, bookingService)

	// Setup Gin router
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := handler.NewHealthHandler(db)
	healthHandler.RegisterRoutes(&router.RouterGroup)

	// Register routes
	authHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	hotelHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	roomHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	bookingHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	billingHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	adminHandler.RegisterRoutes(&router.RouterGroup, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down hotel-booking...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("hotel-booking stopped")
}
