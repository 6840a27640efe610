package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WeatherWire/weather-api-backend/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupErrorRouter(fail func(c *gin.Context)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", fail)
	return r
}

func performRequest(r *gin.Engine) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestErrorHandler_AppError(t *testing.T) {
	r := setupErrorRouter(func(c *gin.Context) {
		_ = c.Error(errors.NotFound("City", "Atlantis"))
	})

	w, body := performRequest(r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(errors.NotFoundError), body["type"])
	assert.Equal(t, "404", body["code"])
	// Not-found errors surface their detail to the caller.
	assert.Equal(t, "Name: Atlantis", body["details"])
}

func TestErrorHandler_UpstreamStatusCarried(t *testing.T) {
	r := setupErrorRouter(func(c *gin.Context) {
		_ = c.Error(errors.NewUpstreamError(http.StatusServiceUnavailable, "weather API error"))
	})

	w, body := performRequest(r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, string(errors.UpstreamError), body["type"])
}

func TestErrorHandler_UnknownError(t *testing.T) {
	r := setupErrorRouter(func(c *gin.Context) {
		_ = c.Error(assert.AnError)
	})

	w, body := performRequest(r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, string(errors.ServerError), body["type"])
	assert.Equal(t, "An unexpected error occurred", body["message"])
}

func TestErrorHandler_NoError(t *testing.T) {
	r := setupErrorRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w, body := performRequest(r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["ok"])
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("generates an ID when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps an existing ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "upstream-id-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "upstream-id-123", w.Header().Get("X-Request-ID"))
	})
}
