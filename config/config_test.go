package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
	}{
		{
			name: "defaults only",
			// API key absence is not a load failure, the weather service
			// performs its own fail-fast check at construction.
			envVars:     map[string]string{},
			expectError: false,
		},
		{
			name: "full configuration",
			envVars: map[string]string{
				"OPENWEATHER_API_KEY":         "abc123def456",
				"OPENWEATHER_GEOCODING_URL":   "http://geo.example.com/direct",
				"OPENWEATHER_WEATHER_URL":     "http://weather.example.com/current",
				"OPENWEATHER_TIMEOUT_SECONDS": "5",
				"OPENWEATHER_UNITS":           "imperial",
				"OPENWEATHER_LANGUAGE":        "en",
				"PORT":                        "9090",
			},
			expectError: false,
		},
		{
			name: "invalid geocoding URL",
			envVars: map[string]string{
				"OPENWEATHER_GEOCODING_URL": "not-a-url",
			},
			expectError: true,
		},
		{
			name: "non-positive timeout",
			envVars: map[string]string{
				"OPENWEATHER_TIMEOUT_SECONDS": "0",
			},
			expectError: true,
		},
		{
			name: "unknown units",
			envVars: map[string]string{
				"OPENWEATHER_UNITS": "kelvin-ish",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment before each test
			os.Clearenv()

			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := LoadConfig()

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, EnvDevelopment, cfg.Server.Environment)
	assert.Equal(t, "http://api.openweathermap.org/geo/1.0/direct", cfg.OpenWeather.GeocodingURL)
	assert.Equal(t, "http://api.openweathermap.org/data/2.5/weather", cfg.OpenWeather.WeatherURL)
	assert.Equal(t, 10, cfg.OpenWeather.TimeoutSeconds)
	assert.Equal(t, "metric", cfg.OpenWeather.Units)
	assert.Equal(t, "es", cfg.OpenWeather.Language)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestOpenWeatherConfig_Timeout(t *testing.T) {
	cfg := OpenWeatherConfig{TimeoutSeconds: 7}
	assert.Equal(t, 7*time.Second, cfg.Timeout())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("OPENWEATHER_API_KEY", "test-key")
	os.Setenv("OPENWEATHER_LANGUAGE", "en")
	os.Setenv("SERVER_ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.OpenWeather.APIKey)
	assert.Equal(t, "en", cfg.OpenWeather.Language)
	assert.True(t, cfg.IsProduction())
}
