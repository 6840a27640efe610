package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/WeatherWire/weather-api-backend/config"
	"github.com/WeatherWire/weather-api-backend/handlers"
	"github.com/WeatherWire/weather-api-backend/logger"
	"github.com/WeatherWire/weather-api-backend/router"
	"github.com/WeatherWire/weather-api-backend/services"
	"github.com/gin-gonic/gin"
)

// @title Weather API
// @version 1.0.0
// @description Queries current weather for any city through the OpenWeatherMap geocoding and current-weather endpoints.
// @BasePath /v1
func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services. Construction fails here, not on the first
	// request, when the provider credential is missing.
	weatherService, err := services.NewWeatherService(&cfg.OpenWeather, nil)
	if err != nil {
		log.Fatalf("Failed to initialize weather service: %v", err)
	}

	// Handlers
	weatherHandler := handlers.NewWeatherHandler(weatherService)
	healthHandler := handlers.NewHealthHandler(cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:         cfg,
		WeatherHandler: weatherHandler,
		HealthHandler:  healthHandler,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("Starting server", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
	}
}
