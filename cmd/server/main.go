package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ridehub/service-rental/internal/adapter"
	"github.com/ridehub/service-rental/internal/application"
	"github.com/ridehub/service-rental/internal/config"
	"github.com/ridehub/service-rental/internal/events"
	"github.com/ridehub/service-rental/internal/handler"
	"github.com/ridehub/service-rental/internal/repository"
	"github.com/ridehub/service-rental/pkg/auth"
	"github.com/ridehub/service-rental/pkg/database"
	"github.com/ridehub/service-rental/pkg/health"
	"github.com/ridehub/service-rental/pkg/kafka"
	"github.com/ridehub/service-rental/pkg/logger"
	"github.com/ridehub/service-rental/pkg/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewNamed(cfg.AppEnv, "service-rental")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting service-rental",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.VehicleModel{},
			&repository.BookingModel{},
			&repository.CouponModel{},
			&repository.ReviewModel{},
			&repository.ContactMessageModel{},
		); err != nil {
			zapLogger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		zapLogger.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), cfg.MigrationsDir, zapLogger); err != nil {
			zapLogger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(
		cfg.JWTConfig.Secret,
		cfg.JWTConfig.AccessTTL,
		cfg.JWTConfig.RefreshTTL,
	)

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, zapLogger)
	defer kafkaProducer.Close()

	eventPublisher := events.NewBookingEventPublisher(kafkaProducer, zapLogger)

	// Initialize Razorpay adapter (mock for development)
	razorpayAdapter := adapter.NewMockRazorpayAdapter(cfg.RazorpayConfig.KeySecret, zapLogger)

	// Initialize repositories
	vehicleRepo := repository.NewGormVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	couponRepo := repository.NewGormCouponRepository(db)
	reviewRepo := repository.NewGormReviewRepository(db)
	contactRepo := repository.NewGormContactRepository(db)

	// Initialize application services
	bookingService := application.NewBookingService(bookingRepo, vehicleRepo, couponRepo, eventPublisher, zapLogger)
	paymentService := application.NewPaymentService(bookingRepo, razorpayAdapter, eventPublisher, zapLogger)
	vehicleService := application.NewVehicleService(vehicleRepo, bookingRepo, zapLogger)
	couponService := application.NewCouponService(couponRepo, zapLogger)
	reviewService := application.NewReviewService(reviewRepo, vehicleRepo, zapLogger)
	contactService := application.NewContactService(contactRepo, zapLogger)

	// Initialize HTTP handlers
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	couponHandler := handler.NewCouponHandler(couponService)
	reviewHandler := handler.NewReviewHandler(reviewService, vehicleService)
	contactHandler := handler.NewContactHandler(contactService)
	adminHandler := handler.NewAdminHandler(bookingService, vehicleService, couponService, contactService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.LoggerMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-rental")
	healthHandler.RegisterRoutes(router)

	// Register API routes
	apiV1 := router.Group("/api/v1")
	vehicleHandler.RegisterRoutes(apiV1)
	reviewHandler.RegisterRoutes(apiV1, jwtManager)
	contactHandler.RegisterRoutes(apiV1)
	bookingHandler.RegisterRoutes(apiV1, jwtManager)
	paymentHandler.RegisterRoutes(apiV1, jwtManager)
	couponHandler.RegisterRoutes(apiV1, jwtManager)
	adminHandler.RegisterRoutes(apiV1, jwtManager)

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
		zapLogger.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down service-rental...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("service-rental stopped")
}
