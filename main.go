package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pickbook/config"
	"pickbook/cron"
	"pickbook/database"
	areaRepoPkg "pickbook/database/repository/area"
	bookingRepoPkg "pickbook/database/repository/booking"
	membershipRepoPkg "pickbook/database/repository/membership"
	notificationRepoPkg "pickbook/database/repository/notification"
	userRepoPkg "pickbook/database/repository/user"
	"pickbook/handlers"
	"pickbook/middleware"
	"pickbook/routes"
	areaSvc "pickbook/services/area"
	"pickbook/services/booking"
	"pickbook/services/dashboard"
	"pickbook/services/directions"
	"pickbook/services/notification"
	"pickbook/services/storage"
	"pickbook/services/user"
	"pickbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	cacheClient := utils.GetCacheClient()
	authCacheClient := utils.GetAuthCacheClient()
	sessionCacheClient := utils.GetBookingCacheClient()
	utils.StartHealthMonitor(
		[]*redis.Client{cacheClient, authCacheClient, sessionCacheClient},
		database.MongoClient,
	)

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	areaRepo := areaRepoPkg.NewMongoAreaRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	membershipRepo := membershipRepoPkg.NewMongoMembershipRepo()

	// Queue client for the confirmation-email worker.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	cron.InitEmailWorker(bookingRepo)

	// Services.
	userService := &user.DefaultUserService{Repo: userRepo}

	areaService, err := areaSvc.NewDefaultAreaService(areaRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize area service: %v", err)
	}

	notificationService, err := notification.NewDefaultNotificationService(notificationRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	sessionService := &booking.DefaultBookingSessionService{
		AreaRepo:        areaRepo,
		BookingRepo:     bookingRepo,
		NotificationSvc: notificationService,
		AreaCache:       areaService,
		QueueClient:     queueClient,
	}
	bookingService, err := booking.NewDefaultBookingService(bookingRepo, notificationService, queueClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking service: %v", err)
	}

	dashboardService := &dashboard.DefaultDashboardService{
		BookingRepo:     bookingRepo,
		MembershipRepo:  membershipRepo,
		NotificationSvc: notificationService,
	}

	directionsService := directions.NewDefaultDirectionsService(config.AppConfig.GoogleAPIKey)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		User:       &handlers.UserHandler{UserService: userService},
		Area:       &handlers.AreaHandler{AreaService: areaService},
		Booking:    &handlers.BookingHandler{SessionSvc: sessionService, BookingSvc: bookingService},
		Dashboard:  &handlers.DashboardHandler{DashboardSvc: dashboardService},
		Directions: &handlers.DirectionsHandler{DirectionsSvc: directionsService},
		Storage:    handlers.NewStorageHandler(storageService, areaRepo),
	}

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

	logger.Sugar().Info("main: server stopped gracefully")
}
