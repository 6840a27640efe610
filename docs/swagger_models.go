package docs

// This file contains models used by Swagger documentation
// It doesn't affect the actual application logic, just documentation

// WeatherResponse is used for Swagger documentation
// @Description Current weather for a city
type WeatherResponse struct {
	// The city name as requested, trimmed of surrounding whitespace
	City string `json:"city" example:"Bogota"`

	// Current temperature in the configured unit system (Celsius by default)
	Temperature float64 `json:"temperature" example:"18.5"`

	// Relative humidity percentage
	Humidity int `json:"humidity" example:"72"`

	// Weather description in the configured language (Spanish by default)
	Description string `json:"description" example:"nubes dispersas"`
}

// ErrorResponse represents an error response
// @Description Error information
type ErrorResponse struct {
	// Error classification
	Type string `json:"type" example:"NOT_FOUND"`

	// Error message
	Message string `json:"message" example:"City not found"`

	// HTTP status code as string
	Code string `json:"code" example:"404"`

	// Detailed error information
	Details string `json:"details,omitempty" example:"Name: Atlantis"`
}
