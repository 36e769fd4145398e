// File: tripforge/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripforge/config"
	"tripforge/handlers"
	"tripforge/middleware"
	"tripforge/routes"
	"tripforge/services/planner"
	"tripforge/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Gateway and session store.
	gateway, err := planner.NewGeminiGateway(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini gateway: %v", err)
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := planner.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	plannerService := &planner.DefaultPlannerService{
		Gateway: gateway,
		Store:   sessionStore,
	}
	plannerHandler := handlers.NewPlannerHandler(plannerService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateSessionHandler:     plannerHandler.CreateSessionHandler,
		GetSessionHandler:        plannerHandler.GetSessionHandler,
		GenerateItineraryHandler: plannerHandler.GenerateItineraryHandler,
		UpdateCostHandler:        plannerHandler.UpdateCostHandler,
		DismissErrorHandler:      plannerHandler.DismissErrorHandler,
		CurrencyOptionsHandler:   plannerHandler.CurrencyOptionsHandler,
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

	logger.Sugar().Info("main: server stopped gracefully")
}
