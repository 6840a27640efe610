package errors

import (
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
)

type ErrorType string

const (
	ValidationError    ErrorType = "VALIDATION_ERROR"
	NotFoundError      ErrorType = "NOT_FOUND"
	ConfigurationError ErrorType = "CONFIGURATION_ERROR"
	UpstreamError      ErrorType = "UPSTREAM_ERROR"
	TransportError     ErrorType = "TRANSPORT_ERROR"
	BadUpstreamData    ErrorType = "BAD_UPSTREAM_DATA"
	ServerError        ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying raw error for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status code the error maps to.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// Helper functions for common errors

// NotFound signals that the geocoding provider returned no match for a place.
func NotFound(entity string, name string) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("Name: %s", name),
		HTTPStatus: http.StatusNotFound,
	}
}

func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ConfigurationFailed signals a missing or invalid server-side setting.
// It is raised at construction time, not per request.
func ConfigurationFailed(message string) *AppError {
	return &AppError{
		Type:       ConfigurationError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewUpstreamError signals a non-2xx response from the weather provider.
// The provider's status code is carried through to the caller.
func NewUpstreamError(statusCode int, message string) *AppError {
	httpStatus := statusCode
	if httpStatus < 400 || httpStatus > 599 {
		httpStatus = http.StatusInternalServerError
	}
	return &AppError{
		Type:       UpstreamError,
		Code:       fmt.Sprintf("upstream_%d", statusCode),
		Message:    message,
		Detail:     fmt.Sprintf("upstream status: %d", statusCode),
		HTTPStatus: httpStatus,
	}
}

// NewTransportError signals a timeout or connection failure reaching the
// provider, as opposed to an error response from it. Timeouts map to 504,
// other transport failures to 502.
func NewTransportError(err error, message string) *AppError {
	httpStatus := http.StatusBadGateway
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		httpStatus = http.StatusGatewayTimeout
	}
	return &AppError{
		Type:       TransportError,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: httpStatus,
		Raw:        err,
	}
}

// NewBadUpstreamDataError signals a 2xx provider response whose payload is
// missing the fields the service projects.
func NewBadUpstreamDataError(message string, detail string) *AppError {
	return &AppError{
		Type:       BadUpstreamData,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case TransportError:
		return http.StatusBadGateway
	case ConfigurationError, BadUpstreamData:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
