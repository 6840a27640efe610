package handlers

import (
	"net/http"

	"github.com/WeatherWire/weather-api-backend/logger"
	"github.com/gin-gonic/gin"
)

// WeatherHandler handles weather lookup API requests
type WeatherHandler struct {
	weatherService WeatherServiceInterface
}

// NewWeatherHandler creates a new WeatherHandler
func NewWeatherHandler(weatherService WeatherServiceInterface) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
	}
}

// GetWeatherHandler godoc
// @Summary Get current weather for a city
// @Description Resolves the city to coordinates and returns its current temperature, humidity and weather description
// @Tags weather
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} types.WeatherReport "Current weather"
// @Failure 404 {object} docs.ErrorResponse "City not found"
// @Failure 502 {object} docs.ErrorResponse "Weather provider unreachable"
// @Failure 500 {object} docs.ErrorResponse "Internal server error"
// @Router /weather/{city} [get]
func (h *WeatherHandler) GetWeatherHandler(c *gin.Context) {
	log := logger.GetLogger()

	city := c.Param("city")

	report, err := h.weatherService.GetWeather(c.Request.Context(), city)
	if err != nil {
		log.Warnw("GetWeatherHandler: weather lookup failed", "city", city, "error", err)
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, report)
}
