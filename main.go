package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"urbanpilgrim/config"
	"urbanpilgrim/database"
	experienceRepo "urbanpilgrim/database/repository/experience"
	userRepoPkg "urbanpilgrim/database/repository/user"
	classRepo "urbanpilgrim/database/repository/wellnessclass"
	"urbanpilgrim/handlers"
	"urbanpilgrim/middleware"
	"urbanpilgrim/routes"
	"urbanpilgrim/services/booking"
	"urbanpilgrim/services/classwizard"
	"urbanpilgrim/services/user"
	"urbanpilgrim/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitSessionCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.WebBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories.
	expRepo := experienceRepo.NewMongoExperienceRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	wellnessClassRepo := classRepo.NewMongoClassRepo()

	// Services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	handlers.SetUserService(userService)

	bookingService := &booking.DefaultSessionService{
		Repo:       expRepo,
		Cache:      utils.GetSessionCacheClient(),
		WebBaseURL: config.AppConfig.WebBaseURL,
	}

	wizardService := &classwizard.DefaultWizardService{
		Classes: wellnessClassRepo,
		Storage: storageService,
		Cache:   utils.GetSessionCacheClient(),
	}

	// Handlers.
	handlerBundle := &routes.HandlerBundle{
		UserRepo:   userRepo,
		Experience: handlers.NewExperienceHandler(expRepo),
		Booking:    handlers.NewBookingHandler(bookingService, logger),
		Wizard:     handlers.NewWizardHandler(wizardService),
		Class:      handlers.NewClassHandler(wellnessClassRepo, storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

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
