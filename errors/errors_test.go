package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ValidationError, "invalid input", "field required")
	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "field required", err.Detail)
	assert.Equal(t, 400, err.HTTPStatus)
}

func TestWrap(t *testing.T) {
	originalErr := fmt.Errorf("original error")
	wrappedErr := Wrap(originalErr, ServerError, "operation failed")

	assert.Equal(t, ServerError, wrappedErr.Type)
	assert.Equal(t, "operation failed", wrappedErr.Message)
	assert.Equal(t, originalErr.Error(), wrappedErr.Detail)
	assert.Equal(t, 500, wrappedErr.HTTPStatus)
	assert.Equal(t, originalErr, wrappedErr.Raw)
}

func TestNotFound(t *testing.T) {
	err := NotFound("City", "Atlantis")
	assert.Equal(t, NotFoundError, err.Type)
	assert.Equal(t, "City not found", err.Message)
	assert.Equal(t, "Name: Atlantis", err.Detail)
	assert.Equal(t, 404, err.HTTPStatus)
}

func TestConfigurationFailed(t *testing.T) {
	err := ConfigurationFailed("OPENWEATHER_API_KEY is not set")
	assert.Equal(t, ConfigurationError, err.Type)
	assert.Equal(t, 500, err.HTTPStatus)
}

func TestNewUpstreamError(t *testing.T) {
	tests := []struct {
		name           string
		upstreamStatus int
		wantHTTPStatus int
	}{
		{name: "carries 4xx status", upstreamStatus: 429, wantHTTPStatus: 429},
		{name: "carries 5xx status", upstreamStatus: 503, wantHTTPStatus: 503},
		{name: "non-error status falls back to 500", upstreamStatus: 302, wantHTTPStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUpstreamError(tt.upstreamStatus, "weather provider error")
			assert.Equal(t, UpstreamError, err.Type)
			assert.Equal(t, fmt.Sprintf("upstream_%d", tt.upstreamStatus), err.Code)
			assert.Equal(t, tt.wantHTTPStatus, err.GetHTTPStatus())
		})
	}
}

func TestNewTransportError(t *testing.T) {
	originalErr := fmt.Errorf("dial tcp: connection refused")
	err := NewTransportError(originalErr, "failed to reach weather provider")

	assert.Equal(t, TransportError, err.Type)
	assert.Equal(t, 502, err.HTTPStatus)
	assert.Equal(t, originalErr, err.Raw)
	assert.ErrorIs(t, err, originalErr)
}

func TestNewBadUpstreamDataError(t *testing.T) {
	err := NewBadUpstreamDataError("malformed weather payload", "weather list is empty")
	assert.Equal(t, BadUpstreamData, err.Type)
	assert.Equal(t, 500, err.HTTPStatus)
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name: "with detail",
			err: &AppError{
				Type:    ValidationError,
				Message: "invalid input",
				Detail:  "field required",
			},
			expected: "VALIDATION_ERROR: invalid input (field required)",
		},
		{
			name: "without detail",
			err: &AppError{
				Type:    NotFoundError,
				Message: "city not found",
			},
			expected: "NOT_FOUND: city not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestGetHTTPStatus_Default(t *testing.T) {
	err := &AppError{Type: NotFoundError}
	assert.Equal(t, 404, err.GetHTTPStatus())
}
