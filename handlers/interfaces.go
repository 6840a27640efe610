package handlers

import (
	"context"

	"github.com/WeatherWire/weather-api-backend/types"
)

// WeatherServiceInterface defines the service operations the weather handler
// depends on, allowing test doubles to stand in for the real service.
type WeatherServiceInterface interface {
	GetWeather(ctx context.Context, city string) (*types.WeatherReport, error)
}
