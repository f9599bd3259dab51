package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"groomly/config"
	"groomly/cron"
	"groomly/database"
	appointmentRepoPkg "groomly/database/repository/appointment"
	catalogRepoPkg "groomly/database/repository/catalog"
	notificationRepoPkg "groomly/database/repository/notification"
	petRepoPkg "groomly/database/repository/pet"
	scheduleRepoPkg "groomly/database/repository/schedule"
	userRepoPkg "groomly/database/repository/user"
	"groomly/handlers"
	"groomly/middleware"
	"groomly/routes"
	"groomly/services/appointment"
	"groomly/services/availability"
	"groomly/services/booking"
	"groomly/services/catalog"
	"groomly/services/notification"
	"groomly/services/pet"
	"groomly/services/storage"
	"groomly/services/stylist"
	"groomly/services/user"
	"groomly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Cloudinary is optional: without credentials, catalog image uploads
	// are disabled but everything else runs.
	storageSvc, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Warnf("main: image storage disabled: %v", err)
		storageSvc = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	petRepo := petRepoPkg.NewMongoPetRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	petService := &pet.DefaultPetService{Repo: petRepo}
	catalogService := &catalog.DefaultCatalogService{
		Repo:       catalogRepo,
		StorageSvc: storageSvc,
	}
	scheduleService := &stylist.DefaultScheduleService{Repo: scheduleRepo}
	notificationService := &notification.DefaultNotificationService{Repo: notificationRepo}
	availabilityService := &availability.DefaultService{
		ScheduleRepo:    scheduleRepo,
		AppointmentRepo: appointmentRepo,
	}
	bookingService := &booking.DefaultBookingSessionService{
		PetRepo:         petRepo,
		CatalogRepo:     catalogRepo,
		UserRepo:        userRepo,
		ScheduleRepo:    scheduleRepo,
		AppointmentRepo: appointmentRepo,
		NotificationSvc: notificationService,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:            appointmentRepo,
		NotificationSvc: notificationService,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		UserRepo:        userRepo,
		UserSvc:         userService,
		PetSvc:          petService,
		CatalogSvc:      catalogService,
		ScheduleSvc:     scheduleService,
		AvailabilitySvc: availabilityService,
		BookingSvc:      bookingService,
		AppointmentSvc:  appointmentService,
		NotificationSvc: notificationService,
	})
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	cron.InitReminderWorker(appointmentRepo, notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
