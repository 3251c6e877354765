// File: barberbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	"barberbook/database/repository/appointment"
	"barberbook/database/repository/blocked"
	"barberbook/database/repository/catalog"
	"barberbook/database/repository/customer"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/routes"
	"barberbook/scheduling"
	"barberbook/services/booking"
	"barberbook/services/dashboard"
	"barberbook/services/notification"
	"barberbook/services/tasks"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitAuthCache()
	authSessions := utils.GetAuthCacheClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepository := catalogRepo.NewMongoServiceRepo(db)
	appointmentRepository := appointmentRepo.NewMongoAppointmentRepo(db)
	blockedRepository := blockedRepo.NewMongoBlockedRepo(db)
	customerRepository := customerRepo.NewMongoCustomerRepo(db)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := catalogRepository.Seed(seedCtx, catalogRepo.DefaultCatalog()); err != nil {
		logger.Sugar().Warnf("main: failed to seed service catalog: %v", err)
	}
	seedCancel()

	// services.
	notificationService := notification.NewLogNotificationService()

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()
	reminderScheduler := &tasks.ReminderScheduler{
		Client: reminderClient,
		Lead:   time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour,
	}
	cron.InitReminderWorker(notificationService)

	schedulingEngine := &booking.DefaultSchedulingEngine{
		Catalog:      catalogRepository,
		Appointments: appointmentRepository,
		Blocked:      blockedRepository,
		Customers:    customerRepository,
		Notifier:     notificationService,
		Reminders:    reminderScheduler,
		Calendar: scheduling.Calendar{
			OpenMinute:    config.AppConfig.OpenMinute,
			CloseMinute:   config.AppConfig.CloseMinute,
			SlotInterval:  config.AppConfig.SlotInterval,
			ClosedWeekday: time.Weekday(config.AppConfig.ClosedWeekday),
		},
		Logger: logger,
	}

	dashboardService := &dashboard.Service{
		Catalog:      catalogRepository,
		Appointments: appointmentRepository,
		Customers:    customerRepository,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Catalog:      handlers.NewCatalogHandler(catalogRepository),
		Appointments: handlers.NewAppointmentHandler(schedulingEngine, appointmentRepository),
		Availability: handlers.NewAvailabilityHandler(schedulingEngine),
		Blocked:      handlers.NewBlockedSlotHandler(schedulingEngine, blockedRepository),
		Customers:    handlers.NewCustomerHandler(customerRepository),
		Auth:         handlers.NewAuthHandler(authSessions),
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
		AuthSessions: authSessions,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
	if err := database.Disconnect(mongoClient); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
