package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	version string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version: version,
	}
}

// Home handles the welcome endpoint, useful as a quick functional check.
func (h *HealthHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Weather API",
		"docs":    "/swagger/index.html",
		"version": h.version,
	})
}

// LivenessCheck handles kubernetes liveness probe. The service holds no
// connections to probe, so process liveness is the whole check.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}
