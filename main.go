// File: labport/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labport/config"
	"labport/cron"
	"labport/database"
	catalogRepo "labport/database/repository/catalog"
	recordsRepo "labport/database/repository/records"
	"labport/handlers"
	"labport/middleware"
	"labport/routes"
	"labport/services/booking"
	ai "labport/services/intelligence"
	"labport/services/storage"
	"labport/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	recRepo := recordsRepo.NewMongoRecordsRepo()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 15*time.Second)
	if err := catalogRepo.EnsureSeed(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed catalog: %v", err)
	}
	cancelSeed()

	// services.
	bookingService := &booking.DefaultBookingSessionService{
		Catalog: catRepo,
		Records: recRepo,
		Cache:   utils.GetSessionCacheClient(),
		Queue:   cron.NewQueueClient(),
	}
	cron.InitSubmissionWorker(bookingService)

	ctxStore := ai.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	consultService := &ai.DefaultConsultService{
		Generator: ai.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		Store:     ctxStore,
	}

	// handler wiring.
	handlers.CatalogRepo = catRepo
	handlers.RecordsRepo = recRepo
	handlers.BookingService = bookingService
	handlers.ConsultService = consultService
	handlers.Storage = storageService

	routes.RegisterRoutes(router)

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
