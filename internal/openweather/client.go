// Package openweather wraps the two OpenWeatherMap calls the application
// depends on: resolving a place name to coordinates and fetching the current
// weather for those coordinates.
package openweather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/WeatherWire/weather-api-backend/config"
	apperrors "github.com/WeatherWire/weather-api-backend/errors"
	"github.com/WeatherWire/weather-api-backend/logger"
	"github.com/WeatherWire/weather-api-backend/types"
)

// ClientInterface defines the provider operations the weather service needs.
type ClientInterface interface {
	GetCoordinates(ctx context.Context, city string) (types.Coordinates, error)
	GetCurrentWeather(ctx context.Context, coords types.Coordinates) (*CurrentWeatherResponse, error)
}

type Client struct {
	cfg        *config.OpenWeatherConfig
	httpClient *http.Client
}

var _ ClientInterface = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a new OpenWeatherMap client. The default HTTP client
// applies the configured timeout independently to each call.
func NewClient(cfg *config.OpenWeatherConfig, opts ...ClientOption) *Client {
	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetCoordinates resolves a place name through the direct geocoding endpoint.
// The provider signals "no match" with an empty array rather than a 404, so
// that case is detected here and classified as not-found. When the provider
// returns several matches only the first is used; provider ordering is
// relied upon, not re-ranked.
func (c *Client) GetCoordinates(ctx context.Context, city string) (types.Coordinates, error) {
	log := logger.GetLogger()

	params := url.Values{}
	params.Add("q", city)
	params.Add("limit", "1")
	params.Add("appid", c.cfg.APIKey)

	log.Debugw("Resolving coordinates", "city", city, "endpoint", c.cfg.GeocodingURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.GeocodingURL+"?"+params.Encode(), nil)
	if err != nil {
		return types.Coordinates{}, apperrors.Wrap(err, apperrors.ServerError, "failed to create geocoding request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorw("Geocoding request failed", "city", city, "error", err)
		return types.Coordinates{}, apperrors.NewTransportError(err, "failed to reach geocoding API")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warnw("Geocoding API returned non-2xx status", "city", city, "status", resp.StatusCode)
		return types.Coordinates{}, apperrors.NewUpstreamError(resp.StatusCode, "geocoding API error")
	}

	var results []geocodingResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Errorw("Failed to decode geocoding response", "city", city, "error", err)
		return types.Coordinates{}, apperrors.NewBadUpstreamDataError("failed to decode geocoding response", err.Error())
	}

	if len(results) == 0 {
		log.Infow("No geocoding match", "city", city)
		return types.Coordinates{}, apperrors.NotFound("City", city)
	}

	coords := types.Coordinates{Lat: results[0].Lat, Lon: results[0].Lon}
	log.Debugw("Coordinates resolved", "city", city, "lat", coords.Lat, "lon", coords.Lon)
	return coords, nil
}

// GetCurrentWeather fetches the current weather for the given coordinates.
// The decoded payload is returned whole; projecting fields out of it is the
// weather service's job.
func (c *Client) GetCurrentWeather(ctx context.Context, coords types.Coordinates) (*CurrentWeatherResponse, error) {
	log := logger.GetLogger()

	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	params.Add("appid", c.cfg.APIKey)
	params.Add("units", c.cfg.Units)
	params.Add("lang", c.cfg.Language)

	log.Debugw("Fetching current weather",
		"lat", coords.Lat,
		"lon", coords.Lon,
		"units", c.cfg.Units,
		"lang", c.cfg.Language,
		"endpoint", c.cfg.WeatherURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.WeatherURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ServerError, "failed to create weather request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorw("Weather request failed", "lat", coords.Lat, "lon", coords.Lon, "error", err)
		return nil, apperrors.NewTransportError(err, "failed to reach weather API")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warnw("Weather API returned non-2xx status", "status", resp.StatusCode)
		return nil, apperrors.NewUpstreamError(resp.StatusCode, "weather API error")
	}

	var weather CurrentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&weather); err != nil {
		log.Errorw("Failed to decode weather response", "error", err)
		return nil, apperrors.NewBadUpstreamDataError("failed to decode weather response", err.Error())
	}

	return &weather, nil
}
