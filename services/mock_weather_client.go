package services

import (
	"context"

	"github.com/WeatherWire/weather-api-backend/internal/openweather"
	"github.com/WeatherWire/weather-api-backend/types"
	"github.com/stretchr/testify/mock"
)

// MockWeatherClient is a mock implementation of the openweather.ClientInterface
type MockWeatherClient struct {
	mock.Mock
}

// GetCoordinates mocks the GetCoordinates method
func (m *MockWeatherClient) GetCoordinates(ctx context.Context, city string) (types.Coordinates, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(types.Coordinates), args.Error(1)
}

// GetCurrentWeather mocks the GetCurrentWeather method
func (m *MockWeatherClient) GetCurrentWeather(ctx context.Context, coords types.Coordinates) (*openweather.CurrentWeatherResponse, error) {
	args := m.Called(ctx, coords)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*openweather.CurrentWeatherResponse), args.Error(1)
}
