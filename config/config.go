// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/WeatherWire/weather-api-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
}

// OpenWeatherConfig holds credentials and endpoints for the OpenWeatherMap API.
type OpenWeatherConfig struct {
	// APIKey authenticates both the geocoding and the current-weather calls.
	// Its absence is not a config-load failure: the weather service refuses
	// construction instead, so tests can load config without a key.
	APIKey string `mapstructure:"API_KEY" yaml:"api_key"`
	// GeocodingURL is the base address of the direct geocoding endpoint.
	GeocodingURL string `mapstructure:"GEOCODING_URL" yaml:"geocoding_url"`
	// WeatherURL is the base address of the current-weather endpoint.
	WeatherURL string `mapstructure:"WEATHER_URL" yaml:"weather_url"`
	// TimeoutSeconds is applied independently to each outbound call.
	TimeoutSeconds int `mapstructure:"TIMEOUT_SECONDS" yaml:"timeout_seconds"`
	// Units selects the provider's measurement system ("metric" or "imperial").
	Units string `mapstructure:"UNITS" yaml:"units"`
	// Language selects the language of the weather description texts.
	Language string `mapstructure:"LANGUAGE" yaml:"language"`
}

// Timeout returns the per-call timeout as a time.Duration.
func (c *OpenWeatherConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Config aggregates all application configuration sections.
type Config struct {
	Server      ServerConfig      `mapstructure:"SERVER" yaml:"server"`
	OpenWeather OpenWeatherConfig `mapstructure:"OPENWEATHER" yaml:"openweather"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "1.0.0")
	v.SetDefault("OPENWEATHER.GEOCODING_URL", "http://api.openweathermap.org/geo/1.0/direct")
	v.SetDefault("OPENWEATHER.WEATHER_URL", "http://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("OPENWEATHER.TIMEOUT_SECONDS", 10)
	v.SetDefault("OPENWEATHER.UNITS", "metric")
	v.SetDefault("OPENWEATHER.LANGUAGE", "es")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind environment variables
	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		// OpenWeather config
		{"OPENWEATHER.API_KEY", "OPENWEATHER_API_KEY"},
		{"OPENWEATHER.GEOCODING_URL", "OPENWEATHER_GEOCODING_URL"},
		{"OPENWEATHER.WEATHER_URL", "OPENWEATHER_WEATHER_URL"},
		{"OPENWEATHER.TIMEOUT_SECONDS", "OPENWEATHER_TIMEOUT_SECONDS"},
		{"OPENWEATHER.UNITS", "OPENWEATHER_UNITS"},
		{"OPENWEATHER.LANGUAGE", "OPENWEATHER_LANGUAGE"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"geocoding_url", cfg.OpenWeather.GeocodingURL,
		"weather_url", cfg.OpenWeather.WeatherURL,
		"timeout_seconds", cfg.OpenWeather.TimeoutSeconds,
		"units", cfg.OpenWeather.Units,
		"language", cfg.OpenWeather.Language,
		"api_key", logger.MaskAPIKey(cfg.OpenWeather.APIKey),
	)

	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if _, err := url.ParseRequestURI(cfg.OpenWeather.GeocodingURL); err != nil {
		return fmt.Errorf("invalid geocoding URL '%s': %w", cfg.OpenWeather.GeocodingURL, err)
	}
	if _, err := url.ParseRequestURI(cfg.OpenWeather.WeatherURL); err != nil {
		return fmt.Errorf("invalid weather URL '%s': %w", cfg.OpenWeather.WeatherURL, err)
	}

	if cfg.OpenWeather.TimeoutSeconds <= 0 {
		return fmt.Errorf("openweather timeout must be positive, got %d", cfg.OpenWeather.TimeoutSeconds)
	}

	switch cfg.OpenWeather.Units {
	case "standard", "metric", "imperial":
	default:
		return fmt.Errorf("invalid units '%s': must be standard, metric or imperial", cfg.OpenWeather.Units)
	}

	return nil
}
