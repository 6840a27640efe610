package services

import (
	"context"
	"strings"

	"github.com/WeatherWire/weather-api-backend/config"
	apperrors "github.com/WeatherWire/weather-api-backend/errors"
	"github.com/WeatherWire/weather-api-backend/internal/openweather"
	"github.com/WeatherWire/weather-api-backend/logger"
	"github.com/WeatherWire/weather-api-backend/types"
	"go.uber.org/zap"
)

// WeatherService sequences the two provider calls for one request and
// projects the raw payload into the four-field report. It holds no state
// across requests; each call is independent.
type WeatherService struct {
	client openweather.ClientInterface
	logger *zap.SugaredLogger
}

// NewWeatherService creates the weather service, failing fast when the
// provider credential is absent: every request a keyless service handled
// would fail identically, so the check happens once here instead of per
// request. A nil client gets the default OpenWeatherMap client.
func NewWeatherService(cfg *config.OpenWeatherConfig, client openweather.ClientInterface) (*WeatherService, error) {
	if cfg.APIKey == "" {
		return nil, apperrors.ConfigurationFailed("OPENWEATHER_API_KEY is not set")
	}

	if client == nil {
		client = openweather.NewClient(cfg)
	}

	return &WeatherService{
		client: client,
		logger: logger.GetLogger(),
	}, nil
}

// GetWeather resolves a city name to its current weather. The name is
// trimmed of surrounding whitespace; beyond that it flows through to the
// provider unvalidated, and an empty name fails naturally as not-found.
// Failures from either provider call propagate unchanged: no retries, no
// fallback provider.
func (s *WeatherService) GetWeather(ctx context.Context, city string) (*types.WeatherReport, error) {
	city = strings.TrimSpace(city)

	s.logger.Infow("Resolving weather", "city", city)

	coords, err := s.client.GetCoordinates(ctx, city)
	if err != nil {
		return nil, err
	}

	weather, err := s.client.GetCurrentWeather(ctx, coords)
	if err != nil {
		return nil, err
	}

	// Projection: the provider's 2xx contract is not trusted blindly, a
	// payload without the projected sections is classified explicitly
	// instead of panicking on a nil dereference.
	if weather.Main == nil {
		s.logger.Errorw("Weather payload missing main section", "city", city)
		return nil, apperrors.NewBadUpstreamDataError("malformed weather payload", "main section is missing")
	}
	if len(weather.Weather) == 0 {
		s.logger.Errorw("Weather payload has no conditions entries", "city", city)
		return nil, apperrors.NewBadUpstreamDataError("malformed weather payload", "weather list is empty")
	}

	report := &types.WeatherReport{
		City:        city,
		Temperature: weather.Main.Temp,
		Humidity:    weather.Main.Humidity,
		Description: weather.Weather[0].Description,
	}

	s.logger.Infow("Weather resolved",
		"city", city,
		"lat", coords.Lat,
		"lon", coords.Lon,
		"temperature", report.Temperature)

	return report, nil
}
